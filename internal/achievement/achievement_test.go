package achievement_test

import (
	"testing"

	"github.com/limbo/youthlife/internal/achievement"
	"github.com/limbo/youthlife/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func deepWorkTask(minutes int, actual *int) *entity.Task {
	return &entity.Task{
		Tags:              []string{"deep-work"},
		DurationMin:       minutes,
		ActualDurationMin: actual,
		Status:            entity.TaskCompleted,
	}
}

func TestEvaluate(t *testing.T) {
	actual := 400
	zero := 0
	testCases := []struct {
		Desc     string
		Kind     achievement.Kind
		Data     achievement.Data
		Unlocked bool
	}{
		{
			Desc:     "reflection streak reached",
			Kind:     achievement.ReflectionStreak,
			Data:     achievement.Data{Streak: &entity.Streak{Count: 7}},
			Unlocked: true,
		},
		{
			Desc:     "reflection streak short",
			Kind:     achievement.ReflectionStreak,
			Data:     achievement.Data{Streak: &entity.Streak{Count: 6, BestStreak: 20}},
			Unlocked: false,
		},
		{
			Desc:     "reflection streak absent",
			Kind:     achievement.ReflectionStreak,
			Unlocked: false,
		},
		{
			Desc: "deep work uses actual duration when present",
			Kind: achievement.DeepWorkWeek,
			Data: achievement.Data{CompletedTasks: []*entity.Task{
				deepWorkTask(60, &actual),
				deepWorkTask(200, nil),
			}},
			Unlocked: true,
		},
		{
			Desc: "deep work falls back to planned duration on zero actual",
			Kind: achievement.DeepWorkWeek,
			Data: achievement.Data{CompletedTasks: []*entity.Task{
				deepWorkTask(600, &zero),
			}},
			Unlocked: true,
		},
		{
			Desc: "deep work ignores untagged tasks",
			Kind: achievement.DeepWorkWeek,
			Data: achievement.Data{CompletedTasks: []*entity.Task{
				deepWorkTask(300, nil),
				{Tags: []string{"coding"}, DurationMin: 500},
			}},
			Unlocked: false,
		},
		{
			Desc:     "no emotional spending",
			Kind:     achievement.NoEmotionalSpending,
			Data:     achievement.Data{EmotionalCount: 0},
			Unlocked: true,
		},
		{
			Desc:     "emotional spending present",
			Kind:     achievement.NoEmotionalSpending,
			Data:     achievement.Data{EmotionalCount: 1},
			Unlocked: false,
		},
		{
			Desc:     "level 10",
			Kind:     achievement.LevelTen,
			Data:     achievement.Data{LatestStats: &entity.Stats{Level: 10}},
			Unlocked: true,
		},
		{
			Desc:     "level 9",
			Kind:     achievement.LevelTen,
			Data:     achievement.Data{LatestStats: &entity.Stats{Level: 9}},
			Unlocked: false,
		},
		{
			Desc:     "level without stats",
			Kind:     achievement.LevelTen,
			Unlocked: false,
		},
		{
			Desc:     "task mastery",
			Kind:     achievement.TaskMastery,
			Data:     achievement.Data{CompletedTasks: make([]*entity.Task, 30)},
			Unlocked: true,
		},
		{
			Desc:     "task mastery short",
			Kind:     achievement.TaskMastery,
			Data:     achievement.Data{CompletedTasks: make([]*entity.Task, 29)},
			Unlocked: false,
		},
		{
			Desc:     "all-rounder",
			Kind:     achievement.AllRounder,
			Data:     achievement.Data{LatestStats: &entity.Stats{Str: 50, Int: 51, Wis: 80, Cha: 50, Grt: 200}},
			Unlocked: true,
		},
		{
			Desc:     "all-rounder one stat short",
			Kind:     achievement.AllRounder,
			Data:     achievement.Data{LatestStats: &entity.Stats{Str: 50, Int: 51, Wis: 80, Cha: 49, Grt: 200}},
			Unlocked: false,
		},
		{
			Desc:     "unknown kind",
			Kind:     achievement.Kind(99),
			Unlocked: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Unlocked, achievement.Evaluate(tc.Kind, tc.Data))
		})
	}
}

func TestRegistry(t *testing.T) {
	defs := achievement.Registry()
	assert.Len(t, defs, 6)
	seen := map[string]bool{}
	for _, d := range defs {
		assert.False(t, seen[d.ID], d.ID)
		seen[d.ID] = true
		res := d.Result(true)
		assert.Equal(t, d.ID, res.ID)
		assert.True(t, res.Unlocked)
	}
}
