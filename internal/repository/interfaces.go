package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/repository_mocks.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/youthlife/pkg/entity"
)

type TaskFilter struct {
	// Planned window [From, To). Both nil means no date filter
	From   *time.Time
	To     *time.Time
	Status *entity.TaskStatus
}

type TasksRepositoryI interface {
	// Creates new task. ID and CreatedAt are filled in place
	Create(ctx context.Context, task *entity.Task) error
	// Searches task with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	// Lists user's tasks ordered by priority
	ListByUser(ctx context.Context, uid uuid.UUID, filter TaskFilter) ([]*entity.Task, error)
	// Overwrites every mutable field of the task with given ID
	Update(ctx context.Context, task *entity.Task) error
	// Deletes task with id
	Delete(ctx context.Context, id uuid.UUID) error
	// Lists tasks completed at or after since
	ListCompletedSince(ctx context.Context, uid uuid.UUID, since time.Time) ([]*entity.Task, error)
}

type StatsRepositoryI interface {
	// Returns stats row of the date. ErrStatsNotFound if there is none
	GetByDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.Stats, error)
	// Returns the most recent stats row. ErrStatsNotFound if user has none
	GetLatest(ctx context.Context, uid uuid.UUID) (*entity.Stats, error)
	Create(ctx context.Context, stats *entity.Stats) error
	Update(ctx context.Context, stats *entity.Stats) error
}

type StreaksRepositoryI interface {
	// ErrStreakNotFound if metric was never recorded
	Get(ctx context.Context, uid uuid.UUID, metric string) (*entity.Streak, error)
	Create(ctx context.Context, streak *entity.Streak) error
	Update(ctx context.Context, streak *entity.Streak) error
}

type FinanceRepositoryI interface {
	Create(ctx context.Context, entry *entity.FinanceEntry) error
	// Entries with from <= date <= to, oldest first
	ListByRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.FinanceEntry, error)
	// Counts emotional entries dated since or later
	CountEmotionalSince(ctx context.Context, uid uuid.UUID, since time.Time) (int, error)
}

type GoalsRepositoryI interface {
	Create(ctx context.Context, goal *entity.Goal) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)
	ListActive(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.Goal, error)
	Update(ctx context.Context, goal *entity.Goal) error
}

type ReflectionsRepositoryI interface {
	// Inserts or replaces the reflection of reflection.Date
	Upsert(ctx context.Context, reflection *entity.Reflection) error
	GetByDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.Reflection, error)
	// Stores evening coach feedback on the reflection with reflection.ID
	SetCoachFeedback(ctx context.Context, reflection *entity.Reflection) error
}

type DayPlansRepositoryI interface {
	// Inserts the plan or refreshes theme and recommendations of an existing one
	Upsert(ctx context.Context, plan *entity.DayPlan) error
	// Stores morning coach message, creating the plan when missing
	SetMorningCoach(ctx context.Context, plan *entity.DayPlan) error
	// Stores evening coach feedback, creating the plan when missing
	SetEveningCoach(ctx context.Context, plan *entity.DayPlan) error
	GetByDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.DayPlan, error)
}

type CalendarRepositoryI interface {
	Create(ctx context.Context, memo *entity.CalendarMemo) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CalendarMemo, error)
	// Memos with from <= date <= to ordered by date and start time
	ListByRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.CalendarMemo, error)
	// Lists every memo of the user
	ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.CalendarMemo, error)
	Update(ctx context.Context, memo *entity.CalendarMemo) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
