package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/youthlife/internal/error_values"
	"github.com/limbo/youthlife/internal/progression"
	"github.com/limbo/youthlife/internal/repository"
	"github.com/limbo/youthlife/internal/theme"
	"github.com/limbo/youthlife/pkg/entity"
)

// TaskMetric is the streak metric advanced by the first completion of a day.
const TaskMetric = "task_completion"

type TasksService struct {
	tasksRepo repository.TasksRepositoryI
	stats     *StatsService
	streaks   *StreaksService
	clock     Clock
	logger    *slog.Logger
}

func NewTasksService(tasksRepo repository.TasksRepositoryI, stats *StatsService, streaks *StreaksService, clock Clock, logger *slog.Logger) *TasksService {
	if tasksRepo == nil || stats == nil || streaks == nil {
		log.Fatal("on tasks service provided nil dependencies")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TasksService{
		tasksRepo: tasksRepo,
		stats:     stats,
		streaks:   streaks,
		clock:     clock,
		logger:    logger,
	}
}

func (serv *TasksService) CreateTask(ctx context.Context, uid uuid.UUID, req *CreateTaskRequest) (*entity.Task, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	plannedAt := serv.clock.Now()
	if req.PlannedAt != nil {
		plannedAt = *req.PlannedAt
	}
	taskTheme := req.Theme
	if taskTheme == "" {
		taskTheme = theme.Resolve(entity.CivilDate(plannedAt, serv.clock.Loc)).Type
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	task := &entity.Task{
		UserID:      uid,
		GoalID:      req.GoalID,
		Title:       req.Title,
		Description: req.Description,
		Tags:        tags,
		Theme:       taskTheme,
		Priority:    req.Priority,
		Status:      entity.TaskPending,
		PlannedAt:   plannedAt,
		DurationMin: req.DurationMin,
	}
	err := serv.tasksRepo.Create(ctx, task)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return task, nil
}

func (serv *TasksService) ListTasks(ctx context.Context, uid uuid.UUID, req *ListTasksRequest) ([]*entity.Task, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	filter := repository.TaskFilter{Status: req.Status}
	if req.Date != nil {
		from, to := serv.clock.DayRange(*req.Date)
		filter.From, filter.To = &from, &to
	}
	tasks, err := serv.tasksRepo.ListByUser(ctx, uid, filter)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return tasks, nil
}

func (serv *TasksService) getOwned(ctx context.Context, uid, id uuid.UUID) (*entity.Task, error) {
	task, err := serv.tasksRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if task.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return task, nil
}

func (serv *TasksService) DeleteTask(ctx context.Context, uid, id uuid.UUID) error {
	if _, err := serv.getOwned(ctx, uid, id); err != nil {
		return err
	}
	err := serv.tasksRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (serv *TasksService) UpdateTask(ctx context.Context, uid, id uuid.UUID, req *UpdateTaskRequest) (*CompletionResult, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	task, err := serv.getOwned(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	before := *task
	applyTaskPatch(task, req)

	result := &CompletionResult{Task: task}
	entering := before.Status != entity.TaskCompleted && task.Status == entity.TaskCompleted
	switch {
	case entering:
		now := serv.clock.Now()
		task.CompletedAt = &now
		if !before.Rewarded {
			// Gains come from the task as it stood before this update
			reward, err := serv.reward(ctx, uid, &before)
			if err != nil {
				return nil, err
			}
			task.Rewarded = true
			result.Reward = reward
		}
	case task.Status != entity.TaskCompleted:
		task.CompletedAt = nil
	}

	err = serv.tasksRepo.Update(ctx, task)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) || errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if entering {
		if err = serv.streaks.RecordEvent(ctx, uid, TaskMetric, serv.clock.Today()); err != nil {
			serv.logger.Error("recording completion streak failed", slog.String("task_id", id.String()), slog.String("error", err.Error()))
		}
	}
	return result, nil
}

// reward runs the stat and exp part of the completion pipeline and persists today's stats.
func (serv *TasksService) reward(ctx context.Context, uid uuid.UUID, task *entity.Task) (*Reward, error) {
	gain := progression.ComputeStatGain(task)
	exp := progression.ComputeExpGain(task)

	stats, err := serv.stats.fetchOrCreate(ctx, uid, serv.clock.Today())
	if err != nil {
		return nil, err
	}
	prevLevel := stats.Level
	updated := progression.ApplyStatGain(*stats, gain)
	updated.TotalExp += exp
	info := progression.ComputeLevel(updated.TotalExp)
	updated.Level = info.Level

	if err = serv.stats.statsRepo.Update(ctx, &updated); err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return &Reward{
		StatGain:  gain,
		ExpGain:   exp,
		Stats:     &updated,
		LevelInfo: info,
		LevelUp:   info.Level > prevLevel,
	}, nil
}

func applyTaskPatch(task *entity.Task, req *UpdateTaskRequest) {
	if req.GoalID != nil {
		task.GoalID = req.GoalID
	}
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Tags != nil {
		task.Tags = req.Tags
	}
	if req.Theme != nil {
		task.Theme = *req.Theme
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.PlannedAt != nil {
		task.PlannedAt = *req.PlannedAt
	}
	if req.DurationMin != nil {
		task.DurationMin = *req.DurationMin
	}
	if req.ActualDurationMin != nil {
		actual := *req.ActualDurationMin
		task.ActualDurationMin = &actual
	}
}
