package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/youthlife/internal/error_values"
	"github.com/limbo/youthlife/internal/progression"
	"github.com/limbo/youthlife/internal/repository"
)

type StreaksService struct {
	streaksRepo repository.StreaksRepositoryI
}

func NewStreaksService(streaksRepo repository.StreaksRepositoryI) *StreaksService {
	if streaksRepo == nil {
		log.Fatal("on streaks service provided nil repo")
	}
	return &StreaksService{
		streaksRepo: streaksRepo,
	}
}

// RecordEvent advances the metric's streak for a qualifying event on date.
// Repeating an event on the streak's last date changes nothing.
func (serv *StreaksService) RecordEvent(ctx context.Context, uid uuid.UUID, metric string, date time.Time) error {
	prev, err := serv.streaksRepo.Get(ctx, uid, metric)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrStreakNotFound) {
			return errors.New("repository error: " + err.Error())
		}
		prev = nil
	}
	next, changed := progression.AdvanceStreak(prev, date)
	if !changed {
		return nil
	}
	next.UserID, next.Metric = uid, metric
	if prev == nil {
		err = serv.streaksRepo.Create(ctx, &next)
	} else {
		err = serv.streaksRepo.Update(ctx, &next)
	}
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	return nil
}
