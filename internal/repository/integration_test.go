package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/youthlife/internal/error_values"
	"github.com/limbo/youthlife/internal/repository"
	"github.com/limbo/youthlife/pkg/entity"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func TestProgressionIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	cfg := setupTestDB(t)
	tasksRepo := repository.NewTasksRepo(cfg)
	statsRepo := repository.NewStatsRepo(cfg)
	streaksRepo := repository.NewStreaksRepo(cfg)
	goalsRepo := repository.NewGoalsRepo(cfg)
	ctx := context.Background()
	day := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)

	goal := &entity.Goal{
		UserID:      userID,
		Level:       entity.GoalWeekly,
		Title:       "release",
		PeriodStart: day,
		PeriodEnd:   day.AddDate(0, 0, 6),
		Status:      entity.GoalActive,
	}
	require.NoError(t, goalsRepo.Create(ctx, goal))

	task := &entity.Task{
		UserID:      userID,
		GoalID:      &goal.ID,
		Title:       "deep work",
		Tags:        []string{"coding", "deep-work"},
		Theme:       entity.ThemeFocus,
		Priority:    1,
		Status:      entity.TaskPending,
		PlannedAt:   day.Add(9 * time.Hour),
		DurationMin: 120,
	}
	t.Run("tasks", func(t *testing.T) {
		t.Run("create", func(t *testing.T) {
			require.NoError(t, tasksRepo.Create(ctx, task))
			assert.NotEqual(t, uuid.Nil, task.ID)
		})
		t.Run("create with unknown goal", func(t *testing.T) {
			unknown := uuid.New()
			err := tasksRepo.Create(ctx, &entity.Task{
				UserID:    userID,
				GoalID:    &unknown,
				Title:     "x",
				Theme:     entity.ThemeFocus,
				Priority:  2,
				Status:    entity.TaskPending,
				PlannedAt: day,
			})
			assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
		})
		t.Run("list by day", func(t *testing.T) {
			to := day.AddDate(0, 0, 1)
			result, err := tasksRepo.ListByUser(ctx, userID, repository.TaskFilter{From: &day, To: &to})
			require.NoError(t, err)
			require.Len(t, result, 1)
			assert.Equal(t, task.Tags, result[0].Tags)
		})
		t.Run("complete", func(t *testing.T) {
			now := time.Now().UTC()
			task.Status = entity.TaskCompleted
			task.CompletedAt = &now
			task.Rewarded = true
			require.NoError(t, tasksRepo.Update(ctx, task))
			done, err := tasksRepo.ListCompletedSince(ctx, userID, now.Add(-time.Minute))
			require.NoError(t, err)
			require.Len(t, done, 1)
			assert.True(t, done[0].Rewarded)
		})
		t.Run("delete", func(t *testing.T) {
			require.NoError(t, tasksRepo.Delete(ctx, task.ID))
			_, err := tasksRepo.GetByID(ctx, task.ID)
			assert.ErrorIs(t, err, errorvalues.ErrTaskNotFound)
		})
	})
	t.Run("stats", func(t *testing.T) {
		_, err := statsRepo.GetLatest(ctx, userID)
		assert.ErrorIs(t, err, errorvalues.ErrStatsNotFound)
		for i, exp := range []int{280, 400} {
			s := &entity.Stats{UserID: userID, Date: day.AddDate(0, 0, i), TotalExp: exp, Level: 2}
			require.NoError(t, statsRepo.Create(ctx, s))
		}
		dup := &entity.Stats{UserID: userID, Date: day, Level: 1}
		assert.ErrorIs(t, statsRepo.Create(ctx, dup), errorvalues.ErrStatsExist)
		latest, err := statsRepo.GetLatest(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 400, latest.TotalExp)
		assert.True(t, latest.Date.Equal(day.AddDate(0, 0, 1)))
	})
	t.Run("streaks", func(t *testing.T) {
		s := &entity.Streak{UserID: userID, Metric: "reflection", Count: 1, LastDate: day, BestStreak: 1}
		require.NoError(t, streaksRepo.Create(ctx, s))
		s.Count, s.BestStreak, s.LastDate = 2, 2, day.AddDate(0, 0, 1)
		require.NoError(t, streaksRepo.Update(ctx, s))
		got, err := streaksRepo.Get(ctx, userID, "reflection")
		require.NoError(t, err)
		assert.Equal(t, 2, got.Count)
		assert.Equal(t, 2, got.BestStreak)
	})
}

func TestJournalIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	cfg := setupTestDB(t)
	reflectionsRepo := repository.NewReflectionsRepo(cfg)
	plansRepo := repository.NewDayPlansRepo(cfg)
	calendarRepo := repository.NewCalendarRepo(cfg)
	ctx := context.Background()
	day := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)

	t.Run("reflection feedback survives resubmit", func(t *testing.T) {
		r := &entity.Reflection{UserID: userID, Date: day, Mood: "ok", Energy: 5}
		require.NoError(t, reflectionsRepo.Upsert(ctx, r))
		r.CoachPraise, r.CoachImprovement, r.TomorrowPriorities = "nice", "rest", []string{"gym"}
		require.NoError(t, reflectionsRepo.SetCoachFeedback(ctx, r))
		r.Mood = "great"
		require.NoError(t, reflectionsRepo.Upsert(ctx, r))
		got, err := reflectionsRepo.GetByDate(ctx, userID, day)
		require.NoError(t, err)
		assert.Equal(t, "great", got.Mood)
		assert.Equal(t, "nice", got.CoachPraise)
		assert.Equal(t, []string{"gym"}, got.TomorrowPriorities)
	})
	t.Run("evening coach creates plan", func(t *testing.T) {
		plan := &entity.DayPlan{UserID: userID, Date: day, Theme: entity.ThemeFocus, Recommendations: []string{}, EveningCoach: `{"praise":"nice"}`}
		require.NoError(t, plansRepo.SetEveningCoach(ctx, plan))
		got, err := plansRepo.GetByDate(ctx, userID, day)
		require.NoError(t, err)
		assert.Equal(t, plan.ID, got.ID)
		assert.Equal(t, `{"praise":"nice"}`, got.EveningCoach)
	})
	t.Run("calendar", func(t *testing.T) {
		start := "18:00"
		memos := []*entity.CalendarMemo{
			{UserID: userID, Date: day.AddDate(0, 0, 2), Title: "dinner", Color: "green", StartTime: &start},
			{UserID: userID, Date: day, Title: "payday", Color: "blue", AllDay: true},
			{UserID: userID, Date: day.AddDate(0, 1, 0), Title: "next month", Color: "blue", AllDay: true},
		}
		for _, m := range memos {
			require.NoError(t, calendarRepo.Create(ctx, m))
		}
		march, err := calendarRepo.ListByRange(ctx, userID, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.Len(t, march, 2)
		assert.Equal(t, "payday", march[0].Title)
		assert.Equal(t, "18:00", *march[1].StartTime)

		memos[0].Title = "late dinner"
		require.NoError(t, calendarRepo.Update(ctx, memos[0]))
		got, err := calendarRepo.GetByID(ctx, memos[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "late dinner", got.Title)

		require.NoError(t, calendarRepo.Delete(ctx, memos[0].ID))
		all, err := calendarRepo.ListByUser(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}

func setupTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("youthlife"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}
	conn.Close()
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	return &testPGConfig{
		connStr: connStr,
	}
}
