package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/youthlife/internal/repository"
	"github.com/limbo/youthlife/internal/theme"
	"github.com/limbo/youthlife/pkg/entity"
)

type DayPlanService struct {
	plansRepo repository.DayPlansRepositoryI
}

func NewDayPlanService(plansRepo repository.DayPlansRepositoryI) *DayPlanService {
	if plansRepo == nil {
		log.Fatal("on day plan service provided nil repo")
	}
	return &DayPlanService{
		plansRepo: plansRepo,
	}
}

// InitDay stores the date's theme and its recommendations. A coach message
// already attached to the day is kept.
func (serv *DayPlanService) InitDay(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.DayPlan, error) {
	date = entity.CivilDate(date, time.UTC)
	cfg := theme.Resolve(date)
	plan := &entity.DayPlan{
		UserID:          uid,
		Date:            date,
		Theme:           cfg.Type,
		Recommendations: theme.Recommendations(cfg.Type),
	}
	if err := serv.plansRepo.Upsert(ctx, plan); err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return plan, nil
}
