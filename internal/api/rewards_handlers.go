package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/kideo/kideo/internal/error_values"
	"github.com/kideo/kideo/internal/service"
	"github.com/kideo/kideo/pkg/httputil"
)

type CreateRewardRequest struct {
	Title      string `json:"title"`
	PointsCost int    `json:"points_cost"`
}

type UpdateRewardRequest struct {
	CreateRewardRequest
	IsActive bool `json:"is_active"`
}

type RedemptionRequest struct {
	RewardID uuid.UUID `json:"reward_id"`
	KidID    uuid.UUID `json:"kid_id"`
}

func (s *Server) CreateReward(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create reward error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateRewardRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create reward error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	reward, err := s.rewardsService.CreateReward(ctx, uid, &service.CreateRewardRequest{
		Title:      req.Title,
		PointsCost: req.PointsCost,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrFamilyNotFound):
			logger.Error("create reward error: unexist family")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "family doesn't exist", nil)
		case isValidationError(err):
			logger.Error("create reward error: invalid values")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid reward values", err)
		default:
			logger.Error("create reward error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating reward", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, reward)
	logger.Info("reward created")
}

func (s *Server) GetRewards(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get rewards error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	includeInactive := r.URL.Query().Get("include_inactive") == "true"
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	rewards, err := s.rewardsService.GetRewards(ctx, uid, includeInactive)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFamilyNotFound) {
			logger.Error("get rewards error: unexist family")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "family doesn't exist", nil)
			return
		}
		logger.Error("getting rewards list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting rewards list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"rewards": rewards})
	logger.Info("rewards provided")
}

func (s *Server) UpdateReward(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update reward error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update reward error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid reward id in path value", nil)
		return
	}
	var req UpdateRewardRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update reward error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	reward, err := s.rewardsService.UpdateReward(ctx, uid, id, &service.UpdateRewardRequest{
		CreateRewardRequest: service.CreateRewardRequest{
			Title:      req.Title,
			PointsCost: req.PointsCost,
		},
		IsActive: req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrRewardNotFound):
			logger.Error("update reward error: unexist reward")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "reward doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongFamily):
			logger.Error("update reward error: reward from different family")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "reward doesn't exist", nil)
		case isValidationError(err):
			logger.Error("update reward error: invalid values")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid reward values", err)
		default:
			logger.Error("update reward error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating reward", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reward)
	logger.Info("reward updated")
}

func (s *Server) DeleteReward(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("reward deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("reward deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid reward id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.rewardsService.DeleteReward(ctx, uid, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrRewardNotFound):
			logger.Error("reward deletion error: unexist reward")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "reward doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongFamily):
			logger.Error("reward deletion error: reward from different family")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "reward doesn't exist", nil)
		default:
			logger.Error("reward deletion error: service error")
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting reward", nil)
		}
		return
	}
	logger.Info("reward deleted")
}

func (s *Server) RequestRedemption(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	_, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("request redemption error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req RedemptionRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("request redemption error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	redemption, err := s.rewardsService.RequestRedemption(ctx, &service.RedemptionRequest{
		RewardID: req.RewardID,
		KidID:    req.KidID,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrRewardNotFound):
			logger.Error("request redemption error: unexist reward")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "reward doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrKidNotFound):
			logger.Error("request redemption error: unexist kid")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "kid doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongFamily):
			logger.Error("request redemption error: kid and reward from different families")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "reward doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrInsufficientBalance):
			logger.Error("request redemption error: not enough points")
			httputil.WriteErrorResponse(w, http.StatusConflict, "not enough points", nil)
		case isValidationError(err):
			logger.Error("request redemption error: invalid values")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid redemption values", err)
		default:
			logger.Error("request redemption error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while requesting redemption", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, redemption)
	logger.Info("redemption requested")
}

func (s *Server) GetPendingRedemptions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get pending redemptions error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	redemptions, err := s.rewardsService.ListPendingRedemptions(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFamilyNotFound) {
			logger.Error("get pending redemptions error: unexist family")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "family doesn't exist", nil)
			return
		}
		logger.Error("getting pending redemptions error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting pending redemptions", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"redemptions": redemptions})
	logger.Info("pending redemptions provided")
}

func (s *Server) ApproveRedemption(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("approve redemption error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("approve redemption error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid redemption id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	redemption, err := s.rewardsService.ApproveRedemption(ctx, uid, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrRedemptionNotFound):
			logger.Error("approve redemption error: unexist redemption")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "redemption doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongFamily):
			logger.Error("approve redemption error: redemption from different family")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "redemption doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrRedemptionProcessed):
			logger.Error("approve redemption error: already processed")
			httputil.WriteErrorResponse(w, http.StatusConflict, "redemption already processed", nil)
		case errors.Is(err, errorvalues.ErrInsufficientBalance):
			logger.Error("approve redemption error: balance drained since request")
			httputil.WriteErrorResponse(w, http.StatusConflict, "not enough points", nil)
		default:
			logger.Error("approve redemption error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while approving redemption", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, redemption)
	logger.Info("redemption approved")
}

func (s *Server) RejectRedemption(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("reject redemption error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("reject redemption error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid redemption id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.rewardsService.RejectRedemption(ctx, uid, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrRedemptionNotFound):
			logger.Error("reject redemption error: unexist redemption")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "redemption doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongFamily):
			logger.Error("reject redemption error: redemption from different family")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "redemption doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrRedemptionProcessed):
			logger.Error("reject redemption error: already processed")
			httputil.WriteErrorResponse(w, http.StatusConflict, "redemption already processed", nil)
		default:
			logger.Error("reject redemption error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while rejecting redemption", nil)
		}
		return
	}
	logger.Info("redemption rejected")
}

func (s *Server) FulfillRedemption(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("fulfill redemption error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("fulfill redemption error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid redemption id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.rewardsService.FulfillRedemption(ctx, uid, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrRedemptionNotFound):
			logger.Error("fulfill redemption error: unexist redemption")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "redemption doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongFamily):
			logger.Error("fulfill redemption error: redemption from different family")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "redemption doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrRedemptionProcessed):
			logger.Error("fulfill redemption error: not approved yet")
			httputil.WriteErrorResponse(w, http.StatusConflict, "redemption is not approved", nil)
		default:
			logger.Error("fulfill redemption error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while fulfilling redemption", nil)
		}
		return
	}
	logger.Info("redemption fulfilled")
}
