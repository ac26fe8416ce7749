package entity

import (
	"time"

	"github.com/google/uuid"
)

type Theme string

const (
	ThemeExecute  Theme = "EXECUTE"
	ThemeFocus    Theme = "FOCUS"
	ThemeOrganize Theme = "ORGANIZE"
	ThemeExpand   Theme = "EXPAND"
	ThemeWrap     Theme = "WRAP"
	ThemeRecover  Theme = "RECOVER"
	ThemeReflect  Theme = "REFLECT"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

// Task is a planned unit of work. CompletedAt is set if and only if Status is TaskCompleted.
// Rewarded records that completion stats/exp were already granted for this task.
type Task struct {
	ID                uuid.UUID  `json:"id"`
	UserID            uuid.UUID  `json:"user_id"`
	GoalID            *uuid.UUID `json:"goal_id,omitempty"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Tags              []string   `json:"tags"`
	Theme             Theme      `json:"theme"`
	Priority          int        `json:"priority"`
	Status            TaskStatus `json:"status"`
	PlannedAt         time.Time  `json:"planned_at"`
	DurationMin       int        `json:"duration_min"`
	ActualDurationMin *int       `json:"actual_duration_min,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	Rewarded          bool       `json:"rewarded"`
	CreatedAt         time.Time  `json:"created_at"`
}

// HasTag reports whether the task carries tag.
func (t *Task) HasTag(tag string) bool {
	for _, tg := range t.Tags {
		if tg == tag {
			return true
		}
	}
	return false
}

// EffectiveDuration prefers the actual duration when a positive one was recorded.
func (t *Task) EffectiveDuration() int {
	if t.ActualDurationMin != nil && *t.ActualDurationMin > 0 {
		return *t.ActualDurationMin
	}
	return t.DurationMin
}

// Stats is one row per user per calendar date.
type Stats struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Date     time.Time `json:"date"`
	Str      int       `json:"str"`
	Int      int       `json:"int"`
	Wis      int       `json:"wis"`
	Cha      int       `json:"cha"`
	Grt      int       `json:"grt"`
	TotalExp int       `json:"total_exp"`
	Level    int       `json:"level"`
}

type Streak struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Metric     string    `json:"metric"`
	Count      int       `json:"count"`
	LastDate   time.Time `json:"last_date"`
	BestStreak int       `json:"best_streak"`
}

type FinanceType string

const (
	FinanceIncome  FinanceType = "income"
	FinanceExpense FinanceType = "expense"
)

type FinanceEntry struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"user_id"`
	Date        time.Time   `json:"date"`
	Type        FinanceType `json:"type"`
	Amount      int64       `json:"amount"`
	Category    string      `json:"category"`
	Tag         string      `json:"tag"`
	IsEmotional bool        `json:"is_emotional"`
	Note        string      `json:"note,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

type GoalLevel string

const (
	GoalMonthly GoalLevel = "MONTHLY"
	GoalWeekly  GoalLevel = "WEEKLY"
	GoalDaily   GoalLevel = "DAILY"
)

type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalArchived  GoalStatus = "archived"
)

type Goal struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Level       GoalLevel  `json:"level"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	PeriodStart time.Time  `json:"period_start"`
	PeriodEnd   time.Time  `json:"period_end"`
	Progress    int        `json:"progress"`
	Status      GoalStatus `json:"status"`
}

// ReflectionAnswers holds the five evening questions.
type ReflectionAnswers struct {
	BestThing   string `json:"q1"`
	Blocker     string `json:"q2"`
	Improvement string `json:"q3"`
	Spending    string `json:"q4"`
	Summary     string `json:"q5"`
}

type Reflection struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"user_id"`
	Date      time.Time         `json:"date"`
	Mood      string            `json:"mood"`
	Energy    int               `json:"energy"`
	Answers   ReflectionAnswers `json:"answers"`
	CreatedAt time.Time         `json:"created_at"`

	// Filled by the evening coach.
	CoachPraise        string   `json:"coach_praise,omitempty"`
	CoachImprovement   string   `json:"coach_improvement,omitempty"`
	TomorrowPriorities []string `json:"tomorrow_priorities,omitempty"`
}

type DayPlan struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Date            time.Time `json:"date"`
	Theme           Theme     `json:"theme"`
	Recommendations []string  `json:"recommendations"`
	MorningCoach    string    `json:"morning_coach,omitempty"`
	// EveningCoach is the JSON encoded evening feedback for days without a reflection.
	EveningCoach string `json:"evening_coach,omitempty"`
}

type CalendarMemo struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Date      time.Time `json:"date"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Color     string    `json:"color"`
	AllDay    bool      `json:"all_day"`
	StartTime *string   `json:"start_time,omitempty"`
	EndTime   *string   `json:"end_time,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
