package service

//go:generate mockgen -source=interfaces.go -destination=mocks/service_mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/youthlife/internal/achievement"
	"github.com/limbo/youthlife/internal/progression"
	"github.com/limbo/youthlife/pkg/entity"
)

type CreateTaskRequest struct {
	GoalID      *uuid.UUID
	Title       string       `validate:"required,max=200"`
	Description string       `validate:"max=2000"`
	Tags        []string     `validate:"max=20,dive,required,max=50,tag_name"`
	Theme       entity.Theme `validate:"omitempty,oneof=EXECUTE FOCUS ORGANIZE EXPAND WRAP RECOVER REFLECT"`
	Priority    int          `validate:"oneof=1 2 3"`
	// Defaults to now
	PlannedAt   *time.Time
	DurationMin int `validate:"min=0,max=1440"`
}

// UpdateTaskRequest is a patch: nil fields stay unchanged.
type UpdateTaskRequest struct {
	GoalID            *uuid.UUID
	Title             *string            `validate:"omitnil,min=1,max=200"`
	Description       *string            `validate:"omitnil,max=2000"`
	Tags              []string           `validate:"omitempty,max=20,dive,required,max=50,tag_name"`
	Theme             *entity.Theme      `validate:"omitnil,oneof=EXECUTE FOCUS ORGANIZE EXPAND WRAP RECOVER REFLECT"`
	Priority          *int               `validate:"omitnil,oneof=1 2 3"`
	Status            *entity.TaskStatus `validate:"omitnil,oneof=pending in_progress completed"`
	PlannedAt         *time.Time
	DurationMin       *int `validate:"omitnil,min=0,max=1440"`
	ActualDurationMin *int `validate:"omitnil,min=0,max=1440"`
}

type ListTasksRequest struct {
	Date   *time.Time
	Status *entity.TaskStatus `validate:"omitnil,oneof=pending in_progress completed"`
}

// Reward is what a first completion granted.
type Reward struct {
	StatGain  progression.StatGain  `json:"stat_gain"`
	ExpGain   int                   `json:"exp_gain"`
	Stats     *entity.Stats         `json:"stats"`
	LevelInfo progression.LevelInfo `json:"level_info"`
	LevelUp   bool                  `json:"level_up"`
}

// CompletionResult is the outcome of a task update. Reward is nil unless
// the update moved the task into completed for the first time.
type CompletionResult struct {
	Task   *entity.Task `json:"task"`
	Reward *Reward      `json:"reward,omitempty"`
}

type StatsSnapshot struct {
	Stats     *entity.Stats         `json:"stats"`
	LevelInfo progression.LevelInfo `json:"level_info"`
}

type SaveReflectionRequest struct {
	Date    time.Time `validate:"required"`
	Mood    string    `validate:"max=50"`
	Energy  int       `validate:"min=0,max=10"`
	Answers entity.ReflectionAnswers
}

type AddFinanceEntryRequest struct {
	Date     time.Time          `validate:"required"`
	Type     entity.FinanceType `validate:"oneof=income expense"`
	Amount   int64              `validate:"gt=0"`
	Category string             `validate:"required,max=100"`
	Tag      string             `validate:"omitempty,oneof=fixed variable emotional"`
	Note     string             `validate:"max=500"`
}

type FinanceSummary struct {
	Entries      []*entity.FinanceEntry `json:"entries"`
	TotalIncome  int64                  `json:"total_income"`
	TotalExpense int64                  `json:"total_expense"`
	Emotional    int64                  `json:"emotional_expense"`
}

type CreateGoalRequest struct {
	Level       entity.GoalLevel `validate:"oneof=MONTHLY WEEKLY DAILY"`
	Title       string           `validate:"required,max=200"`
	Description string           `validate:"max=2000"`
	PeriodStart time.Time        `validate:"required"`
	PeriodEnd   time.Time        `validate:"required"`
}

type UpdateGoalRequest struct {
	Title       *string            `validate:"omitnil,min=1,max=200"`
	Description *string            `validate:"omitnil,max=2000"`
	Progress    *int               `validate:"omitnil,min=0,max=100"`
	Status      *entity.GoalStatus `validate:"omitnil,oneof=active completed archived"`
}

type CreateMemoRequest struct {
	Date      time.Time `validate:"required"`
	Title     string    `validate:"required,max=200"`
	Content   string    `validate:"max=5000"`
	Color     string    `validate:"omitempty,oneof=blue green red yellow purple pink gray"`
	AllDay    *bool
	StartTime *string `validate:"omitnil,datetime=15:04"`
	EndTime   *string `validate:"omitnil,datetime=15:04"`
}

// UpdateMemoRequest is a patch: nil fields stay unchanged.
type UpdateMemoRequest struct {
	Date      *time.Time
	Title     *string `validate:"omitnil,min=1,max=200"`
	Content   *string `validate:"omitnil,max=5000"`
	Color     *string `validate:"omitnil,oneof=blue green red yellow purple pink gray"`
	AllDay    *bool
	StartTime *string `validate:"omitnil,datetime=15:04"`
	EndTime   *string `validate:"omitnil,datetime=15:04"`
}

// ListMemosRequest filters by month only when both fields are set.
type ListMemosRequest struct {
	Year  int `validate:"omitempty,min=1970,max=9999"`
	Month int `validate:"omitempty,min=1,max=12"`
}

type EveningFeedback struct {
	Praise             string   `json:"praise"`
	Improvement        string   `json:"improvement"`
	TomorrowPriorities []string `json:"tomorrow_priorities"`
}

type TasksServiceI interface {
	CreateTask(ctx context.Context, uid uuid.UUID, req *CreateTaskRequest) (*entity.Task, error)
	ListTasks(ctx context.Context, uid uuid.UUID, req *ListTasksRequest) ([]*entity.Task, error)
	// Applies the patch. Moving into completed runs the progression pipeline once per task
	UpdateTask(ctx context.Context, uid, id uuid.UUID, req *UpdateTaskRequest) (*CompletionResult, error)
	DeleteTask(ctx context.Context, uid, id uuid.UUID) error
}

type StatsServiceI interface {
	Today(ctx context.Context, uid uuid.UUID) (*StatsSnapshot, error)
}

type AchievementsServiceI interface {
	EvaluateAll(ctx context.Context, uid uuid.UUID) []achievement.Achievement
}

type ReflectionsServiceI interface {
	SaveReflection(ctx context.Context, uid uuid.UUID, req *SaveReflectionRequest) (*entity.Reflection, error)
	GetReflection(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.Reflection, error)
}

type FinanceServiceI interface {
	AddEntry(ctx context.Context, uid uuid.UUID, req *AddFinanceEntryRequest) (*entity.FinanceEntry, error)
	ListEntries(ctx context.Context, uid uuid.UUID, from, to time.Time) (*FinanceSummary, error)
}

type GoalsServiceI interface {
	CreateGoal(ctx context.Context, uid uuid.UUID, req *CreateGoalRequest) (*entity.Goal, error)
	ListActiveGoals(ctx context.Context, uid uuid.UUID) ([]*entity.Goal, error)
	UpdateGoal(ctx context.Context, uid, id uuid.UUID, req *UpdateGoalRequest) (*entity.Goal, error)
}

type DayPlanServiceI interface {
	InitDay(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.DayPlan, error)
}

type CoachServiceI interface {
	MorningCoach(ctx context.Context, uid uuid.UUID, date time.Time) (string, error)
	EveningCoach(ctx context.Context, uid uuid.UUID, date time.Time) (*EveningFeedback, error)
	// Creates coach-proposed tasks linked to the goal
	BreakdownGoal(ctx context.Context, uid, goalID uuid.UUID) ([]*entity.Task, error)
}

type CalendarServiceI interface {
	CreateMemo(ctx context.Context, uid uuid.UUID, req *CreateMemoRequest) (*entity.CalendarMemo, error)
	// Zero year and month list every memo
	ListMemos(ctx context.Context, uid uuid.UUID, req *ListMemosRequest) ([]*entity.CalendarMemo, error)
	UpdateMemo(ctx context.Context, uid, id uuid.UUID, req *UpdateMemoRequest) (*entity.CalendarMemo, error)
	DeleteMemo(ctx context.Context, uid, id uuid.UUID) error
}

type AuthServiceI interface {
	// Compares password with the owner's hash. Returns owner's uid
	Login(ctx context.Context, password string) (uuid.UUID, error)
	// Reports whether uid is the configured owner
	IsOwner(uid uuid.UUID) bool
}
