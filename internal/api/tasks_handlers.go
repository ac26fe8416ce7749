package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/youthlife/internal/service"
	"github.com/limbo/youthlife/pkg/entity"
	"github.com/limbo/youthlife/pkg/httputil"
)

type CreateTaskRequest struct {
	GoalID      *uuid.UUID   `json:"goal_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Tags        []string     `json:"tags"`
	Theme       entity.Theme `json:"theme"`
	Priority    int          `json:"priority"`
	PlannedAt   *time.Time   `json:"planned_at"`
	DurationMin int          `json:"duration_min"`
}

type UpdateTaskRequest struct {
	GoalID            *uuid.UUID         `json:"goal_id"`
	Title             *string            `json:"title"`
	Description       *string            `json:"description"`
	Tags              []string           `json:"tags"`
	Theme             *entity.Theme      `json:"theme"`
	Priority          *int               `json:"priority"`
	Status            *entity.TaskStatus `json:"status"`
	PlannedAt         *time.Time         `json:"planned_at"`
	DurationMin       *int               `json:"duration_min"`
	ActualDurationMin *int               `json:"actual_duration_min"`
}

type GetTasksResponse struct {
	Date  string         `json:"date,omitempty"`
	Tasks []*entity.Task `json:"tasks"`
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
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	task, err := s.tasksService.CreateTask(ctx, uid, &service.CreateTaskRequest{
		GoalID:      req.GoalID,
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Theme:       req.Theme,
		Priority:    req.Priority,
		PlannedAt:   req.PlannedAt,
		DurationMin: req.DurationMin,
	})
	if err != nil {
		writeServiceError(w, logger, "task creation", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, task)
	logger.Info("task created", slog.String("task_id", task.ID.String()))
}

func (s *Server) ListTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get tasks error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req service.ListTasksRequest
	resp := GetTasksResponse{}
	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := entity.ParseDate(raw)
		if err != nil {
			logger.Error("get tasks error: invalid date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
			return
		}
		req.Date = &date
		resp.Date = raw
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := entity.TaskStatus(raw)
		req.Status = &status
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	tasks, err := s.tasksService.ListTasks(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "tasks listing", err)
		return
	}
	resp.Tasks = tasks
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	logger.Info("tasks provided")
}

// UpdateTask applies a partial update. Moving the task into completed
// answers with the reward granted by the progression pipeline.
func (s *Server) UpdateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("task update error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("task update error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	var req UpdateTaskRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("task update error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	result, err := s.tasksService.UpdateTask(ctx, uid, id, &service.UpdateTaskRequest{
		GoalID:            req.GoalID,
		Title:             req.Title,
		Description:       req.Description,
		Tags:              req.Tags,
		Theme:             req.Theme,
		Priority:          req.Priority,
		Status:            req.Status,
		PlannedAt:         req.PlannedAt,
		DurationMin:       req.DurationMin,
		ActualDurationMin: req.ActualDurationMin,
	})
	if err != nil {
		writeServiceError(w, logger, "task update", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	if result.Reward != nil {
		s.metrics.ObserveReward(string(result.Task.Theme), result.Reward.ExpGain, result.Reward.LevelUp)
		logger.Info("task completed",
			slog.String("task_id", id.String()),
			slog.Int("exp_gain", result.Reward.ExpGain),
			slog.Bool("level_up", result.Reward.LevelUp),
		)
		return
	}
	logger.Info("task updated", slog.String("task_id", id.String()))
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
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	err = s.tasksService.DeleteTask(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "task deletion", err)
		return
	}
	httputil.WriteNoContent(w, http.StatusNoContent)
	logger.Info("task deleted", slog.String("task_id", id.String()))
}
