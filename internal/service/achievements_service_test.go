package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/youthlife/internal/achievement"
	errorvalues "github.com/limbo/youthlife/internal/error_values"
	"github.com/limbo/youthlife/internal/repository/mocks"
	"github.com/limbo/youthlife/internal/service"
	"github.com/limbo/youthlife/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unlockedByID(list []achievement.Achievement) map[string]bool {
	out := make(map[string]bool, len(list))
	for _, a := range list {
		out[a.ID] = a.Unlocked
	}
	return out
}

func deepWorkTasks(n, minutes int) []*entity.Task {
	tasks := make([]*entity.Task, n)
	for i := range tasks {
		tasks[i] = &entity.Task{
			ID:          uuid.New(),
			Tags:        []string{achievement.DeepWorkTag},
			Status:      entity.TaskCompleted,
			DurationMin: minutes,
		}
	}
	return tasks
}

func TestEvaluateAll(t *testing.T) {
	userID := uuid.New()
	ctx := context.Background()
	weekAgo := testNow.Add(-achievement.WeekWindow)
	monthAgo := testNow.Add(-achievement.MonthWindow)
	emotionalSince := testToday.Add(-achievement.MonthWindow)

	type repos struct {
		tasks   *mocks.MockTasksRepositoryI
		stats   *mocks.MockStatsRepositoryI
		streaks *mocks.MockStreaksRepositoryI
		finance *mocks.MockFinanceRepositoryI
	}
	setup := func(t *testing.T) (repos, *service.AchievementsService) {
		ctrl := gomock.NewController(t)
		r := repos{
			tasks:   mocks.NewMockTasksRepositoryI(ctrl),
			stats:   mocks.NewMockStatsRepositoryI(ctrl),
			streaks: mocks.NewMockStreaksRepositoryI(ctrl),
			finance: mocks.NewMockFinanceRepositoryI(ctrl),
		}
		serv := service.NewAchievementsService(r.tasks, r.stats, r.streaks, r.finance, testClock(), discardLogger())
		return r, serv
	}

	t.Run("evaluates every kind", func(t *testing.T) {
		r, serv := setup(t)
		r.streaks.EXPECT().Get(gomock.Any(), userID, achievement.ReflectionMetric).
			Return(&entity.Streak{Count: 7, BestStreak: 7, LastDate: testToday}, nil)
		r.tasks.EXPECT().ListCompletedSince(gomock.Any(), userID, weekAgo).Return(deepWorkTasks(5, 120), nil)
		r.finance.EXPECT().CountEmotionalSince(gomock.Any(), userID, emotionalSince).Return(2, nil)
		r.tasks.EXPECT().ListCompletedSince(gomock.Any(), userID, monthAgo).Return(deepWorkTasks(30, 10), nil)
		r.stats.EXPECT().GetLatest(gomock.Any(), userID).
			Return(&entity.Stats{Str: 50, Int: 80, Wis: 50, Cha: 51, Grt: 49, Level: 10}, nil).Times(2)

		list := serv.EvaluateAll(ctx, userID)
		require.Len(t, list, len(achievement.Registry()))
		assert.Equal(t, map[string]bool{
			"reflection_7_days":     true,
			"deep_work_10h":         true,
			"no_emotional_spending": false,
			"level_10":              true,
			"tasks_30":              true,
			"all_stats_50":          false,
		}, unlockedByID(list))
	})

	t.Run("new user", func(t *testing.T) {
		r, serv := setup(t)
		r.streaks.EXPECT().Get(gomock.Any(), userID, achievement.ReflectionMetric).Return(nil, errorvalues.ErrStreakNotFound)
		r.tasks.EXPECT().ListCompletedSince(gomock.Any(), userID, gomock.Any()).Return([]*entity.Task{}, nil).Times(2)
		r.finance.EXPECT().CountEmotionalSince(gomock.Any(), userID, emotionalSince).Return(0, nil)
		r.stats.EXPECT().GetLatest(gomock.Any(), userID).Return(nil, errorvalues.ErrStatsNotFound).Times(2)

		got := unlockedByID(serv.EvaluateAll(ctx, userID))
		assert.True(t, got["no_emotional_spending"])
		delete(got, "no_emotional_spending")
		for id, unlocked := range got {
			assert.False(t, unlocked, id)
		}
	})

	t.Run("failed fetch locks only its achievement", func(t *testing.T) {
		r, serv := setup(t)
		r.streaks.EXPECT().Get(gomock.Any(), userID, achievement.ReflectionMetric).
			Return(&entity.Streak{Count: 9, BestStreak: 9, LastDate: testToday}, nil)
		r.tasks.EXPECT().ListCompletedSince(gomock.Any(), userID, weekAgo).Return(nil, errors.New("db error"))
		r.finance.EXPECT().CountEmotionalSince(gomock.Any(), userID, emotionalSince).Return(0, nil)
		r.tasks.EXPECT().ListCompletedSince(gomock.Any(), userID, monthAgo).Return(deepWorkTasks(2, 30), nil)
		r.stats.EXPECT().GetLatest(gomock.Any(), userID).Return(&entity.Stats{Level: 11}, nil).Times(2)

		got := unlockedByID(serv.EvaluateAll(ctx, userID))
		assert.False(t, got["deep_work_10h"])
		assert.True(t, got["reflection_7_days"])
		assert.True(t, got["no_emotional_spending"])
		assert.True(t, got["level_10"])
	})
}
