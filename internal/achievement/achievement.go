// Package achievement holds the fixed achievement registry. Each kind is a pure
// predicate over a Data snapshot; fetching the snapshot is the caller's job.
package achievement

import (
	"time"

	"github.com/limbo/youthlife/pkg/entity"
)

type Kind int

const (
	ReflectionStreak Kind = iota
	DeepWorkWeek
	NoEmotionalSpending
	LevelTen
	TaskMastery
	AllRounder
)

const (
	ReflectionMetric     = "reflection"
	DeepWorkTag          = "deep-work"
	reflectionStreakDays = 7
	deepWorkWeekMinutes  = 600
	levelTarget          = 10
	taskMasteryCount     = 30
	allRounderMin        = 50
)

const (
	WeekWindow  = 7 * 24 * time.Hour
	MonthWindow = 30 * 24 * time.Hour
)

type Definition struct {
	Kind        Kind
	ID          string
	Title       string
	Description string
	Icon        string
}

// Data is the read-only snapshot a predicate is evaluated against.
// Only the fields relevant to the evaluated kind need to be filled.
type Data struct {
	Streak         *entity.Streak
	CompletedTasks []*entity.Task
	EmotionalCount int
	LatestStats    *entity.Stats
}

type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Unlocked    bool   `json:"unlocked"`
}

var registry = []Definition{
	{
		Kind:        ReflectionStreak,
		ID:          "reflection_7_days",
		Icon:        "🔥",
		Title:       "7-day reflection streak",
		Description: "Write the evening reflection 7 days in a row",
	},
	{
		Kind:        DeepWorkWeek,
		ID:          "deep_work_10h",
		Icon:        "🧠",
		Title:       "Deep work master",
		Description: "Log 10 hours of deep work within a week",
	},
	{
		Kind:        NoEmotionalSpending,
		ID:          "no_emotional_spending",
		Icon:        "💰",
		Title:       "Zero emotional spending",
		Description: "No emotional spending for a month",
	},
	{
		Kind:        LevelTen,
		ID:          "level_10",
		Icon:        "⚡",
		Title:       "Level 10",
		Description: "Reach level 10",
	},
	{
		Kind:        TaskMastery,
		ID:          "tasks_30",
		Icon:        "✅",
		Title:       "Task master",
		Description: "Complete 30 tasks within a month",
	},
	{
		Kind:        AllRounder,
		ID:          "all_stats_50",
		Icon:        "🏆",
		Title:       "All-rounder",
		Description: "Bring every stat to 50 or more",
	},
}

// Registry returns the achievement definitions in display order.
func Registry() []Definition {
	out := make([]Definition, len(registry))
	copy(out, registry)
	return out
}

// Evaluate reports whether kind is unlocked for data. Unknown kinds are locked.
func Evaluate(kind Kind, data Data) bool {
	switch kind {
	case ReflectionStreak:
		return data.Streak != nil && data.Streak.Count >= reflectionStreakDays
	case DeepWorkWeek:
		total := 0
		for _, t := range data.CompletedTasks {
			if t.HasTag(DeepWorkTag) {
				total += t.EffectiveDuration()
			}
		}
		return total >= deepWorkWeekMinutes
	case NoEmotionalSpending:
		return data.EmotionalCount == 0
	case LevelTen:
		return data.LatestStats != nil && data.LatestStats.Level >= levelTarget
	case TaskMastery:
		return len(data.CompletedTasks) >= taskMasteryCount
	case AllRounder:
		s := data.LatestStats
		return s != nil &&
			s.Str >= allRounderMin &&
			s.Int >= allRounderMin &&
			s.Wis >= allRounderMin &&
			s.Cha >= allRounderMin &&
			s.Grt >= allRounderMin
	default:
		return false
	}
}

// Result pairs a definition with its evaluated status.
func (d Definition) Result(unlocked bool) Achievement {
	return Achievement{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Icon:        d.Icon,
		Unlocked:    unlocked,
	}
}
