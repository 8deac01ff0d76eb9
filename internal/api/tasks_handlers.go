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

type CreateTaskRequest struct {
	Title              string `json:"title"`
	Description        string `json:"desc"`
	Category           string `json:"category"`
	Type               string `json:"type"`
	Points             int    `json:"points"`
	BonusPoints        int    `json:"bonus_points"`
	TimerMinutes       *int   `json:"timer_minutes,omitempty"`
	RequiresApproval   bool   `json:"requires_approval"`
	CountsTowardStreak bool   `json:"counts_toward_streak"`
}

type UpdateTaskRequest struct {
	CreateTaskRequest
	IsActive bool `json:"is_active"`
}

func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create task error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateTaskRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create task error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	task, err := s.tasksService.CreateTask(ctx, uid, &service.CreateTaskRequest{
		Title:              req.Title,
		Description:        req.Description,
		Category:           req.Category,
		Type:               req.Type,
		Points:             req.Points,
		BonusPoints:        req.BonusPoints,
		TimerMinutes:       req.TimerMinutes,
		RequiresApproval:   req.RequiresApproval,
		CountsTowardStreak: req.CountsTowardStreak,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrFamilyNotFound):
			logger.Error("create task error: unexist family")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "family doesn't exist", nil)
		case isValidationError(err):
			logger.Error("create task error: invalid task config")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task config", err)
		case errors.Is(err, errorvalues.ErrWrongFamily):
			logger.Error("create task error: wrong family")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "task doesn't exist", nil)
		default:
			// task config failures land here as plain errors
			logger.Error("create task error: rejected config", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, task)
	logger.Info("task created")
}

func (s *Server) GetTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get tasks error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	includeInactive := r.URL.Query().Get("include_inactive") == "true"
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	tasks, err := s.tasksService.GetTasks(ctx, uid, includeInactive)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFamilyNotFound) {
			logger.Error("get tasks error: unexist family")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "family doesn't exist", nil)
			return
		}
		logger.Error("getting tasks list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting tasks list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"tasks": tasks})
	logger.Info("tasks provided")
}

func (s *Server) UpdateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update task error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update task error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	var req UpdateTaskRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update task error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	task, err := s.tasksService.UpdateTask(ctx, uid, id, &service.UpdateTaskRequest{
		CreateTaskRequest: service.CreateTaskRequest{
			Title:              req.Title,
			Description:        req.Description,
			Category:           req.Category,
			Type:               req.Type,
			Points:             req.Points,
			BonusPoints:        req.BonusPoints,
			TimerMinutes:       req.TimerMinutes,
			RequiresApproval:   req.RequiresApproval,
			CountsTowardStreak: req.CountsTowardStreak,
		},
		IsActive: req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrTaskNotFound):
			logger.Error("update task error: unexist task")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "task doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongFamily):
			logger.Error("update task error: task from different family")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "task doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrFamilyNotFound):
			logger.Error("update task error: unexist family")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "family doesn't exist", nil)
		case isValidationError(err):
			logger.Error("update task error: invalid task config")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task config", err)
		default:
			logger.Error("update task error: rejected config", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
	logger.Info("task updated")
}

func (s *Server) DeleteTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("task deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("task deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.tasksService.DeleteTask(ctx, uid, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrTaskNotFound):
			logger.Error("task deletion error: unexist task")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "task doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongFamily):
			logger.Error("task deletion error: task from different family")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "task doesn't exist", nil)
		default:
			logger.Error("task deletion error: service error")
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting task", nil)
		}
		return
	}
	logger.Info("task deleted")
}
