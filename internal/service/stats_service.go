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
	"github.com/limbo/youthlife/pkg/entity"
)

type StatsService struct {
	statsRepo repository.StatsRepositoryI
	clock     Clock
}

func NewStatsService(statsRepo repository.StatsRepositoryI, clock Clock) *StatsService {
	if statsRepo == nil {
		log.Fatal("on stats service provided nil repo")
	}
	return &StatsService{
		statsRepo: statsRepo,
		clock:     clock,
	}
}

// Today returns today's stats row, or the latest earlier one when nothing was
// completed today yet. A user without any history gets zero stats at level 1.
func (serv *StatsService) Today(ctx context.Context, uid uuid.UUID) (*StatsSnapshot, error) {
	today := serv.clock.Today()
	stats, err := serv.statsRepo.GetByDate(ctx, uid, today)
	if errors.Is(err, errorvalues.ErrStatsNotFound) {
		stats, err = serv.statsRepo.GetLatest(ctx, uid)
		if errors.Is(err, errorvalues.ErrStatsNotFound) {
			stats, err = &entity.Stats{UserID: uid, Date: today, Level: 1}, nil
		}
	}
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return &StatsSnapshot{
		Stats:     stats,
		LevelInfo: progression.ComputeLevel(stats.TotalExp),
	}, nil
}

// fetchOrCreate returns the stats row of date, creating it from the latest
// earlier row so attributes and experience carry over between days.
func (serv *StatsService) fetchOrCreate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.Stats, error) {
	stats, err := serv.statsRepo.GetByDate(ctx, uid, date)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, errorvalues.ErrStatsNotFound) {
		return nil, errors.New("repository error: " + err.Error())
	}
	seed := entity.Stats{UserID: uid, Date: date, Level: 1}
	latest, err := serv.statsRepo.GetLatest(ctx, uid)
	switch {
	case err == nil:
		seed.Str, seed.Int, seed.Wis, seed.Cha, seed.Grt = latest.Str, latest.Int, latest.Wis, latest.Cha, latest.Grt
		seed.TotalExp = latest.TotalExp
		seed.Level = progression.ComputeLevel(latest.TotalExp).Level
	case !errors.Is(err, errorvalues.ErrStatsNotFound):
		return nil, errors.New("repository error: " + err.Error())
	}
	err = serv.statsRepo.Create(ctx, &seed)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStatsExist) {
			// Created concurrently
			return serv.statsRepo.GetByDate(ctx, uid, date)
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return &seed, nil
}
