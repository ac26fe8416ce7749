package api

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/youthlife/pkg/entity"
	"github.com/limbo/youthlife/pkg/httputil"
)

// DayRequest selects the calendar day of day-scoped actions. Empty date means today.
type DayRequest struct {
	Date string `json:"date"`
}

type MorningCoachResponse struct {
	Date    string `json:"date"`
	Message string `json:"message"`
}

type BreakdownResponse struct {
	Tasks []*entity.Task `json:"tasks"`
	Count int            `json:"count"`
}

// decodeDay reads an optional DayRequest body. An empty body selects today.
func (s *Server) decodeDay(r *http.Request) (time.Time, error) {
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return time.Time{}, err
	}
	var req DayRequest
	if len(bytes.TrimSpace(body)) > 0 {
		if err = sonic.Unmarshal(body, &req); err != nil {
			return time.Time{}, err
		}
	}
	return s.dateOrToday(req.Date)
}

func (s *Server) InitDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("day init error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date, err := s.decodeDay(r)
	if err != nil {
		logger.Error("day init error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body, expected date as YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	plan, err := s.dayPlanService.InitDay(ctx, uid, date)
	if err != nil {
		writeServiceError(w, logger, "day init", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plan)
	logger.Info("day initialized")
}

func (s *Server) MorningCoach(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("morning coach error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date, err := s.decodeDay(r)
	if err != nil {
		logger.Error("morning coach error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	// Language model calls are slow
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout*3)
	defer cancel()
	start := time.Now()
	message, err := s.coachService.MorningCoach(ctx, uid, date)
	s.metrics.ObserveCoach("morning", err, time.Since(start))
	if err != nil {
		writeServiceError(w, logger, "morning coach", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, MorningCoachResponse{
		Date:    date.Format(time.DateOnly),
		Message: message,
	})
	logger.Info("morning coach message provided")
}

func (s *Server) EveningCoach(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("evening coach error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date, err := s.decodeDay(r)
	if err != nil {
		logger.Error("evening coach error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout*3)
	defer cancel()
	start := time.Now()
	feedback, err := s.coachService.EveningCoach(ctx, uid, date)
	s.metrics.ObserveCoach("evening", err, time.Since(start))
	if err != nil {
		writeServiceError(w, logger, "evening coach", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, feedback)
	logger.Info("evening feedback provided")
}

func (s *Server) BreakdownGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("goal breakdown error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("goal breakdown error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout*3)
	defer cancel()
	start := time.Now()
	tasks, err := s.coachService.BreakdownGoal(ctx, uid, id)
	s.metrics.ObserveCoach("breakdown", err, time.Since(start))
	if err != nil {
		writeServiceError(w, logger, "goal breakdown", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, BreakdownResponse{
		Tasks: tasks,
		Count: len(tasks),
	})
	logger.Info("goal broken down", slog.String("goal_id", id.String()), slog.Int("tasks", len(tasks)))
}
