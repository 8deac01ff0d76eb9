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
	"github.com/kideo/kideo/pkg/entity"
	"github.com/kideo/kideo/pkg/httputil"
)

type LogCompletionRequest struct {
	TaskID         uuid.UUID `json:"task_id"`
	KidID          uuid.UUID `json:"kid_id"`
	ElapsedSeconds *int      `json:"elapsed_seconds,omitempty"`
}

type RejectCompletionRequest struct {
	Reason string `json:"reason"`
}

// LogCompletionResponse carries the approval outcome when the task
// auto-approves, nil otherwise.
type LogCompletionResponse struct {
	Completion *entity.Completion      `json:"completion"`
	Approval   *service.ApprovalResult `json:"approval,omitempty"`
}

func (s *Server) LogCompletion(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	_, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("log completion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req LogCompletionRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("log completion error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	completion, approval, err := s.completionsService.LogCompletion(ctx, &service.LogCompletionRequest{
		TaskID:         req.TaskID,
		KidID:          req.KidID,
		ElapsedSeconds: req.ElapsedSeconds,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrTaskNotFound):
			logger.Error("log completion error: unexist task")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "task doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrKidNotFound):
			logger.Error("log completion error: unexist kid")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "kid doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrTaskInactive):
			logger.Error("log completion error: inactive task")
			httputil.WriteErrorResponse(w, http.StatusConflict, "task is not active", nil)
		case errors.Is(err, errorvalues.ErrCompletedToday):
			logger.Error("log completion error: already completed today")
			httputil.WriteErrorResponse(w, http.StatusConflict, "task already completed today", nil)
		case errors.Is(err, errorvalues.ErrWrongFamily):
			logger.Error("log completion error: kid and task from different families")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "task doesn't exist", nil)
		case isValidationError(err):
			logger.Error("log completion error: invalid values")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid completion values", err)
		default:
			logger.Error("log completion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while logging completion", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, LogCompletionResponse{
		Completion: completion,
		Approval:   approval,
	})
	logger.Info("completion logged")
}

func (s *Server) GetPendingCompletions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get pending completions error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	completions, err := s.completionsService.ListPending(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFamilyNotFound) {
			logger.Error("get pending completions error: unexist family")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "family doesn't exist", nil)
			return
		}
		logger.Error("getting pending completions error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting pending completions", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"completions": completions})
	logger.Info("pending completions provided")
}

func (s *Server) ApproveCompletion(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("approve completion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("approve completion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid completion id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	result, err := s.completionsService.Approve(ctx, uid, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrCompletionNotFound):
			logger.Error("approve completion error: unexist completion")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "completion doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongFamily):
			logger.Error("approve completion error: completion from different family")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "completion doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrCompletionProcessed):
			logger.Error("approve completion error: already processed")
			httputil.WriteErrorResponse(w, http.StatusConflict, "completion already processed", nil)
		default:
			logger.Error("approve completion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while approving completion", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("completion approved",
		slog.Int("points_awarded", result.PointsAwarded),
		slog.Int("new_badges", len(result.NewBadges)))
}

func (s *Server) RejectCompletion(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("reject completion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("reject completion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid completion id in path value", nil)
		return
	}
	var req RejectCompletionRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("reject completion error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.completionsService.Reject(ctx, uid, id, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrCompletionNotFound):
			logger.Error("reject completion error: unexist completion")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "completion doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongFamily):
			logger.Error("reject completion error: completion from different family")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "completion doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrCompletionProcessed):
			logger.Error("reject completion error: already processed")
			httputil.WriteErrorResponse(w, http.StatusConflict, "completion already processed", nil)
		default:
			logger.Error("reject completion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while rejecting completion", nil)
		}
		return
	}
	logger.Info("completion rejected")
}
