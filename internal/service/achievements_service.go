package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"
	"github.com/limbo/youthlife/internal/achievement"
	errorvalues "github.com/limbo/youthlife/internal/error_values"
	"github.com/limbo/youthlife/internal/repository"
)

type AchievementsService struct {
	tasksRepo   repository.TasksRepositoryI
	statsRepo   repository.StatsRepositoryI
	streaksRepo repository.StreaksRepositoryI
	financeRepo repository.FinanceRepositoryI
	clock       Clock
	logger      *slog.Logger
}

func NewAchievementsService(
	tasksRepo repository.TasksRepositoryI,
	statsRepo repository.StatsRepositoryI,
	streaksRepo repository.StreaksRepositoryI,
	financeRepo repository.FinanceRepositoryI,
	clock Clock,
	logger *slog.Logger,
) *AchievementsService {
	if tasksRepo == nil || statsRepo == nil || streaksRepo == nil || financeRepo == nil {
		log.Fatal("on achievements service provided nil repos")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AchievementsService{
		tasksRepo:   tasksRepo,
		statsRepo:   statsRepo,
		streaksRepo: streaksRepo,
		financeRepo: financeRepo,
		clock:       clock,
		logger:      logger,
	}
}

// EvaluateAll evaluates every registered achievement. A kind whose data
// cannot be read is logged and reported locked; the others are unaffected.
func (serv *AchievementsService) EvaluateAll(ctx context.Context, uid uuid.UUID) []achievement.Achievement {
	defs := achievement.Registry()
	result := make([]achievement.Achievement, 0, len(defs))
	for _, def := range defs {
		data, err := serv.fetch(ctx, uid, def.Kind)
		if err != nil {
			serv.logger.Error("achievement evaluation failed",
				slog.String("achievement", def.ID),
				slog.String("uid", uid.String()),
				slog.String("error", err.Error()),
			)
			result = append(result, def.Result(false))
			continue
		}
		result = append(result, def.Result(achievement.Evaluate(def.Kind, data)))
	}
	return result
}

func (serv *AchievementsService) fetch(ctx context.Context, uid uuid.UUID, kind achievement.Kind) (achievement.Data, error) {
	var data achievement.Data
	now := serv.clock.Now()
	switch kind {
	case achievement.ReflectionStreak:
		streak, err := serv.streaksRepo.Get(ctx, uid, achievement.ReflectionMetric)
		if err != nil && !errors.Is(err, errorvalues.ErrStreakNotFound) {
			return data, err
		}
		data.Streak = streak
	case achievement.DeepWorkWeek:
		tasks, err := serv.tasksRepo.ListCompletedSince(ctx, uid, now.Add(-achievement.WeekWindow))
		if err != nil {
			return data, err
		}
		data.CompletedTasks = tasks
	case achievement.TaskMastery:
		tasks, err := serv.tasksRepo.ListCompletedSince(ctx, uid, now.Add(-achievement.MonthWindow))
		if err != nil {
			return data, err
		}
		data.CompletedTasks = tasks
	case achievement.NoEmotionalSpending:
		since := serv.clock.Today().Add(-achievement.MonthWindow)
		count, err := serv.financeRepo.CountEmotionalSince(ctx, uid, since)
		if err != nil {
			return data, err
		}
		data.EmotionalCount = count
	case achievement.LevelTen, achievement.AllRounder:
		stats, err := serv.statsRepo.GetLatest(ctx, uid)
		if err != nil && !errors.Is(err, errorvalues.ErrStatsNotFound) {
			return data, err
		}
		data.LatestStats = stats
	}
	return data, nil
}
