package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/youthlife/internal/error_values"
	"github.com/limbo/youthlife/internal/repository"
	"github.com/limbo/youthlife/pkg/entity"
)

const activeGoalsLimit = 20

type GoalsService struct {
	goalsRepo repository.GoalsRepositoryI
}

func NewGoalsService(goalsRepo repository.GoalsRepositoryI) *GoalsService {
	if goalsRepo == nil {
		log.Fatal("on goals service provided nil repo")
	}
	return &GoalsService{
		goalsRepo: goalsRepo,
	}
}

func (serv *GoalsService) CreateGoal(ctx context.Context, uid uuid.UUID, req *CreateGoalRequest) (*entity.Goal, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	start, end := entity.CivilDate(req.PeriodStart, time.UTC), entity.CivilDate(req.PeriodEnd, time.UTC)
	if end.Before(start) {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("period end is before its start"))
	}
	goal := &entity.Goal{
		UserID:      uid,
		Level:       req.Level,
		Title:       req.Title,
		Description: req.Description,
		PeriodStart: start,
		PeriodEnd:   end,
		Status:      entity.GoalActive,
	}
	if err := serv.goalsRepo.Create(ctx, goal); err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return goal, nil
}

func (serv *GoalsService) ListActiveGoals(ctx context.Context, uid uuid.UUID) ([]*entity.Goal, error) {
	goals, err := serv.goalsRepo.ListActive(ctx, uid, activeGoalsLimit)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return goals, nil
}

func (serv *GoalsService) UpdateGoal(ctx context.Context, uid, id uuid.UUID, req *UpdateGoalRequest) (*entity.Goal, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	goal, err := serv.goalsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if goal.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.Progress != nil {
		goal.Progress = *req.Progress
	}
	if req.Status != nil {
		goal.Status = *req.Status
	}
	err = serv.goalsRepo.Update(ctx, goal)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return goal, nil
}
