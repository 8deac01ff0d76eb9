package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/kideo/kideo/internal/error_values"
	"github.com/kideo/kideo/internal/service"
	"github.com/kideo/kideo/pkg/entity"
	"github.com/kideo/kideo/pkg/httputil"
)

type CreateKidRequest struct {
	Name string `json:"name"`
}

type GetKidCompletionsResponse struct {
	KidID       string               `json:"kid_id"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	Completions []*entity.Completion `json:"completions"`
}

func (s *Server) CreateKid(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create kid error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateKidRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create kid error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	kid, err := s.kidsService.CreateKid(ctx, uid, &service.CreateKidRequest{
		Name: req.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrKidNameTaken):
			logger.Error("create kid error: name already taken")
			httputil.WriteErrorResponse(w, http.StatusConflict, "kid with such name already exists", nil)
		case errors.Is(err, errorvalues.ErrFamilyNotFound):
			logger.Error("create kid error: unexist family")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "family doesn't exist", nil)
		case isValidationError(err):
			logger.Error("create kid error: invalid name")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid kid name", err)
		default:
			logger.Error("create kid error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating kid", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, kid)
	logger.Info("kid created")
}

func (s *Server) GetKids(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get kids error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	kids, err := s.kidsService.GetKids(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFamilyNotFound) {
			logger.Error("get kids error: unexist family")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "family doesn't exist", nil)
			return
		}
		logger.Error("get kids error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting kids list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"kids": kids})
	logger.Info("kids provided")
}

func (s *Server) GetKid(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get kid error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get kid error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid kid id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	detail, err := s.kidsService.GetKid(ctx, uid, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrKidNotFound):
			logger.Error("get kid error: unexist kid")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "kid doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongFamily):
			logger.Error("get kid error: kid from different family")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "kid doesn't exist", nil)
		default:
			logger.Error("get kid error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting kid", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, detail)
	logger.Info("kid provided")
}

func (s *Server) DeleteKid(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("kid deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("kid deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid kid id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.kidsService.DeleteKid(ctx, uid, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrKidNotFound):
			logger.Error("kid deletion error: unexist kid")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "kid doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongFamily):
			logger.Error("kid deletion error: kid from different family")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "kid doesn't exist", nil)
		default:
			logger.Error("kid deletion error: service error")
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting kid", nil)
		}
		return
	}
	logger.Info("kid deleted")
}

func (s *Server) GetKidCompletions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get kid completions error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get kid completions error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid kid id in path value", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	completions, err := s.completionsService.ListKidHistory(ctx, uid, id, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrKidNotFound):
			logger.Error("get kid completions error: unexist kid")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "kid doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongFamily):
			logger.Error("get kid completions error: kid from different family")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "kid doesn't exist", nil)
		default:
			logger.Error("getting kid completions error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting completions list", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetKidCompletionsResponse{
		KidID:       id.String(),
		Page:        page,
		Limit:       limit,
		Completions: completions,
	})
	logger.Info("kid completions provided")
}

func (s *Server) GetKidRedemptions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get kid redemptions error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get kid redemptions error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid kid id in path value", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	redemptions, err := s.rewardsService.ListKidRedemptions(ctx, uid, id, limit)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrKidNotFound):
			logger.Error("get kid redemptions error: unexist kid")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "kid doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongFamily):
			logger.Error("get kid redemptions error: kid from different family")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "kid doesn't exist", nil)
		default:
			logger.Error("getting kid redemptions error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting redemptions list", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"redemptions": redemptions})
	logger.Info("kid redemptions provided")
}
