package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/youthlife/internal/error_values"
	"github.com/limbo/youthlife/internal/llm"
	"github.com/limbo/youthlife/internal/theme"
	"github.com/limbo/youthlife/pkg/entity"
	"github.com/limbo/youthlife/pkg/httputil"
)

const requestTimeout = time.Second * 10

type LoginRequest struct {
	Password string `json:"password"`
}

type ThemeResponse struct {
	Date            string       `json:"date"`
	Theme           theme.Config `json:"theme"`
	Recommendations []string     `json:"recommendations"`
	// Every theme, Monday first
	Week []theme.Config `json:"week"`
}

// writeServiceError maps service sentinels to status codes. Anything
// unknown is logged and reported as an internal error.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(op+" error: invalid request", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request", err)
	case errors.Is(err, errorvalues.ErrTaskNotFound),
		errors.Is(err, errorvalues.ErrGoalNotFound),
		errors.Is(err, errorvalues.ErrReflectionNotFound),
		errors.Is(err, errorvalues.ErrDayPlanNotFound),
		errors.Is(err, errorvalues.ErrMemoNotFound):
		logger.Error(op+" error: not found", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, errorvalues.ErrWrongOwner):
		// Foreign resources are reported as missing
		logger.Error(op + " error: resource has different owner")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "resource doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrCoachUnavailable):
		logger.Error(op + " error: coach is not configured")
		httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, err.Error(), nil)
	case errors.Is(err, llm.ErrTruncated):
		logger.Error(op + " error: coach reply was truncated")
		httputil.WriteErrorResponse(w, http.StatusBadGateway, err.Error(), nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
	}
}

// dateOrToday parses a YYYY-MM-DD value, falling back to today for an empty one.
func (s *Server) dateOrToday(value string) (time.Time, error) {
	if value == "" {
		return s.clock.Today(), nil
	}
	return entity.ParseDate(value)
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	uid, err := s.authService.Login(ctx, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid password", nil)
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
		}
		return
	}
	token, err := s.jwtService.GenerateToken(uid)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   uid.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) GetTheme(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date, err := s.dateOrToday(r.URL.Query().Get("date"))
	if err != nil {
		logger.Error("get theme error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	cfg := theme.Resolve(date)
	httputil.WriteJSONResponse(w, http.StatusOK, ThemeResponse{
		Date:            date.Format(time.DateOnly),
		Theme:           cfg,
		Recommendations: theme.Recommendations(cfg.Type),
		Week:            theme.All(),
	})
}
