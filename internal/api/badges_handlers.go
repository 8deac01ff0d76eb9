package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/kideo/kideo/internal/error_values"
	"github.com/kideo/kideo/pkg/httputil"
)

func (s *Server) GetBadgeCatalog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	catalog, err := s.badgesService.Catalog(ctx)
	if err != nil {
		logger.Error("getting badge catalog error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting badge catalog", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"badges": catalog})
	logger.Info("badge catalog provided")
}

func (s *Server) GetKidBadges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get kid badges error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get kid badges error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid kid id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	badges, err := s.badgesService.EarnedBadges(ctx, uid, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrKidNotFound):
			logger.Error("get kid badges error: unexist kid")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "kid doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongFamily):
			logger.Error("get kid badges error: kid from different family")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "kid doesn't exist", nil)
		default:
			logger.Error("getting kid badges error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting kid badges", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"badges": badges})
	logger.Info("kid badges provided")
}

func (s *Server) GetKidProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get kid progress error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get kid progress error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid kid id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	progress, err := s.badgesService.Progress(ctx, uid, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrKidNotFound):
			logger.Error("get kid progress error: unexist kid")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "kid doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongFamily):
			logger.Error("get kid progress error: kid from different family")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "kid doesn't exist", nil)
		default:
			logger.Error("getting kid progress error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting kid progress", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, progress)
	logger.Info("kid progress provided")
}
