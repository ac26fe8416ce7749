package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/youthlife/internal/service"
	"github.com/limbo/youthlife/pkg/entity"
	"github.com/limbo/youthlife/pkg/httputil"
)

type SaveReflectionRequest struct {
	Date    string                   `json:"date"`
	Mood    string                   `json:"mood"`
	Energy  int                      `json:"energy"`
	Answers entity.ReflectionAnswers `json:"answers"`
}

type AddFinanceEntryRequest struct {
	Date     string             `json:"date"`
	Type     entity.FinanceType `json:"type"`
	Amount   int64              `json:"amount"`
	Category string             `json:"category"`
	Tag      string             `json:"tag"`
	Note     string             `json:"note"`
}

type CreateGoalRequest struct {
	Level       entity.GoalLevel `json:"level"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	PeriodStart string           `json:"period_start"`
	PeriodEnd   string           `json:"period_end"`
}

type UpdateGoalRequest struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Progress    *int               `json:"progress"`
	Status      *entity.GoalStatus `json:"status"`
}

type GetFinanceResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
	*service.FinanceSummary
}

type GetGoalsResponse struct {
	Goals []*entity.Goal `json:"goals"`
}

func (s *Server) SaveReflection(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("save reflection error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SaveReflectionRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("save reflection error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	date, err := s.dateOrToday(req.Date)
	if err != nil {
		logger.Error("save reflection error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	reflection, err := s.reflectionsService.SaveReflection(ctx, uid, &service.SaveReflectionRequest{
		Date:    date,
		Mood:    req.Mood,
		Energy:  req.Energy,
		Answers: req.Answers,
	})
	if err != nil {
		writeServiceError(w, logger, "reflection saving", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reflection)
	logger.Info("reflection saved", slog.String("date", date.Format(time.DateOnly)))
}

func (s *Server) GetReflection(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get reflection error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date, err := entity.ParseDate(r.PathValue("date"))
	if err != nil {
		logger.Error("get reflection error: invalid date in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date in path value, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	reflection, err := s.reflectionsService.GetReflection(ctx, uid, date)
	if err != nil {
		writeServiceError(w, logger, "reflection getting", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reflection)
}

func (s *Server) AddFinanceEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("add finance entry error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req AddFinanceEntryRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("add finance entry error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	date, err := s.dateOrToday(req.Date)
	if err != nil {
		logger.Error("add finance entry error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	entry, err := s.financeService.AddEntry(ctx, uid, &service.AddFinanceEntryRequest{
		Date:     date,
		Type:     req.Type,
		Amount:   req.Amount,
		Category: req.Category,
		Tag:      req.Tag,
		Note:     req.Note,
	})
	if err != nil {
		writeServiceError(w, logger, "finance entry creation", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, entry)
	logger.Info("finance entry added", slog.String("entry_id", entry.ID.String()))
}

// ListFinanceEntries defaults to the current month up to today.
func (s *Server) ListFinanceEntries(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get finance entries error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	to, err := s.dateOrToday(r.URL.Query().Get("to"))
	if err != nil {
		logger.Error("get finance entries error: invalid range end")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid 'to' date, expected YYYY-MM-DD", nil)
		return
	}
	from := to.AddDate(0, 0, 1-to.Day())
	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err = entity.ParseDate(raw)
		if err != nil {
			logger.Error("get finance entries error: invalid range start")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid 'from' date, expected YYYY-MM-DD", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	summary, err := s.financeService.ListEntries(ctx, uid, from, to)
	if err != nil {
		writeServiceError(w, logger, "finance entries listing", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetFinanceResponse{
		From:           from.Format(time.DateOnly),
		To:             to.Format(time.DateOnly),
		FinanceSummary: summary,
	})
	logger.Info("finance entries provided")
}

func (s *Server) CreateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create goal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateGoalRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create goal error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	start, errStart := entity.ParseDate(req.PeriodStart)
	end, errEnd := entity.ParseDate(req.PeriodEnd)
	if err = errors.Join(errStart, errEnd); err != nil {
		logger.Error("create goal error: invalid period")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid period, expected YYYY-MM-DD dates", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	goal, err := s.goalsService.CreateGoal(ctx, uid, &service.CreateGoalRequest{
		Level:       req.Level,
		Title:       req.Title,
		Description: req.Description,
		PeriodStart: start,
		PeriodEnd:   end,
	})
	if err != nil {
		writeServiceError(w, logger, "goal creation", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, goal)
	logger.Info("goal created", slog.String("goal_id", goal.ID.String()))
}

func (s *Server) ListGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get goals error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	goals, err := s.goalsService.ListActiveGoals(ctx, uid)
	if err != nil {
		logger.Error("getting goals list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting goals list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetGoalsResponse{Goals: goals})
	logger.Info("goals provided")
}

func (s *Server) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("goal update error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("goal update error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id in path value", nil)
		return
	}
	var req UpdateGoalRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("goal update error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	goal, err := s.goalsService.UpdateGoal(ctx, uid, id, &service.UpdateGoalRequest{
		Title:       req.Title,
		Description: req.Description,
		Progress:    req.Progress,
		Status:      req.Status,
	})
	if err != nil {
		writeServiceError(w, logger, "goal update", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goal)
	logger.Info("goal updated", slog.String("goal_id", id.String()))
}
