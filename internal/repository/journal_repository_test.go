package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/youthlife/internal/error_values"
	"github.com/limbo/youthlife/internal/repository"
	"github.com/limbo/youthlife/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func TestFinanceRepository(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewFinanceRepoWithConn(mock)
	day := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	entry := entity.FinanceEntry{
		UserID:      userID,
		Date:        day,
		Type:        entity.FinanceExpense,
		Amount:      1500,
		Category:    "food",
		Tag:         "emotional",
		IsEmotional: true,
	}
	ctx := context.Background()
	t.Run("create", func(t *testing.T) {
		id, created := uuid.New(), time.Now()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO finance_entries (user_id, entry_date, type, amount, category, tag, is_emotional, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at;`)).
			WithArgs(entry.UserID, entry.Date, entry.Type, entry.Amount, entry.Category, entry.Tag, entry.IsEmotional, entry.Note).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, created))
		assert.NoError(t, repo.Create(ctx, &entry))
		assert.Equal(t, id, entry.ID)
	})
	t.Run("list by range", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, entry_date, type, amount, category, tag, is_emotional, note, created_at
		FROM finance_entries WHERE user_id = $1 AND entry_date >= $2 AND entry_date <= $3 ORDER BY entry_date ASC, created_at ASC;`)).
			WithArgs(userID, day, day).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "entry_date", "type", "amount", "category", "tag", "is_emotional", "note", "created_at"}).
				AddRow(entry.ID, entry.UserID, entry.Date, entry.Type, entry.Amount, entry.Category, entry.Tag, entry.IsEmotional, entry.Note, entry.CreatedAt))
		result, err := repo.ListByRange(ctx, userID, day, day)
		assert.NoError(t, err)
		assert.Equal(t, []*entity.FinanceEntry{&entry}, result)
	})
	count := regexp.QuoteMeta(`SELECT COUNT(*) FROM finance_entries WHERE user_id = $1 AND is_emotional AND entry_date >= $2;`)
	t.Run("count emotional", func(t *testing.T) {
		mock.ExpectQuery(count).WithArgs(userID, day).WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))
		n, err := repo.CountEmotionalSince(ctx, userID, day)
		assert.NoError(t, err)
		assert.Equal(t, 2, n)
	})
	t.Run("count db error", func(t *testing.T) {
		mock.ExpectQuery(count).WithArgs(userID, day).WillReturnError(errors.New("db error"))
		_, err := repo.CountEmotionalSince(ctx, userID, day)
		assert.Error(t, err)
	})
}

func TestGoalsRepository(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewGoalsRepoWithConn(mock)
	goal := entity.Goal{
		ID:          uuid.New(),
		UserID:      userID,
		Level:       entity.GoalWeekly,
		Title:       "ship the release",
		PeriodStart: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
		Progress:    40,
		Status:      entity.GoalActive,
	}
	getQuery := regexp.QuoteMeta(`SELECT user_id, level, title, description, period_start, period_end, progress, status FROM goals WHERE id = $1;`)
	ctx := context.Background()
	t.Run("get", func(t *testing.T) {
		mock.ExpectQuery(getQuery).
			WithArgs(goal.ID).
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "level", "title", "description", "period_start", "period_end", "progress", "status"}).
				AddRow(goal.UserID, goal.Level, goal.Title, goal.Description, goal.PeriodStart, goal.PeriodEnd, goal.Progress, goal.Status))
		result, err := repo.GetByID(ctx, goal.ID)
		assert.NoError(t, err)
		assert.Equal(t, goal, *result)
	})
	t.Run("get not found", func(t *testing.T) {
		mock.ExpectQuery(getQuery).WithArgs(goal.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, goal.ID)
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
	})
	t.Run("list active", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, level, title, description, period_start, period_end, progress, status
		FROM goals WHERE user_id = $1 AND status = 'active' ORDER BY period_start ASC LIMIT $2;`)).
			WithArgs(userID, 5).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "level", "title", "description", "period_start", "period_end", "progress", "status"}).
				AddRow(goal.ID, goal.UserID, goal.Level, goal.Title, goal.Description, goal.PeriodStart, goal.PeriodEnd, goal.Progress, goal.Status))
		result, err := repo.ListActive(ctx, userID, 5)
		assert.NoError(t, err)
		assert.Equal(t, []*entity.Goal{&goal}, result)
	})
	t.Run("update not found", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE goals SET title = $1, description = $2, period_start = $3, period_end = $4, progress = $5, status = $6 WHERE id = $7;`)).
			WithArgs(goal.Title, goal.Description, goal.PeriodStart, goal.PeriodEnd, goal.Progress, goal.Status, goal.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.Update(ctx, &goal), errorvalues.ErrGoalNotFound)
	})
}

func TestReflectionsRepository(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewReflectionsRepoWithConn(mock)
	day := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	reflection := entity.Reflection{
		UserID: userID,
		Date:   day,
		Mood:   "calm",
		Energy: 7,
		Answers: entity.ReflectionAnswers{
			BestThing: "finished the draft",
			Summary:   "good day",
		},
	}
	answers := `{"q1":"finished the draft","q2":"","q3":"","q4":"","q5":"good day"}`
	ctx := context.Background()
	t.Run("upsert", func(t *testing.T) {
		id, created := uuid.New(), time.Now()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO reflections (user_id, date, mood, energy, answers) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, date) DO UPDATE SET mood = EXCLUDED.mood, energy = EXCLUDED.energy, answers = EXCLUDED.answers
		RETURNING id, created_at;`)).
			WithArgs(userID, day, reflection.Mood, reflection.Energy, answers).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, created))
		assert.NoError(t, repo.Upsert(ctx, &reflection))
		assert.Equal(t, id, reflection.ID)
	})
	getQuery := regexp.QuoteMeta(`SELECT id, mood, energy, answers, created_at, coach_praise, coach_improvement, tomorrow_priorities
		FROM reflections WHERE user_id = $1 AND date = $2;`)
	t.Run("get", func(t *testing.T) {
		expected := reflection
		expected.CoachPraise = "steady work"
		expected.TomorrowPriorities = []string{"gym", "report"}
		mock.ExpectQuery(getQuery).
			WithArgs(userID, day).
			WillReturnRows(pgxmock.NewRows([]string{"id", "mood", "energy", "answers", "created_at", "coach_praise", "coach_improvement", "tomorrow_priorities"}).
				AddRow(reflection.ID, reflection.Mood, reflection.Energy, answers, reflection.CreatedAt, "steady work", "", []string{"gym", "report"}))
		result, err := repo.GetByDate(ctx, userID, day)
		assert.NoError(t, err)
		assert.Equal(t, expected, *result)
	})
	feedbackQuery := regexp.QuoteMeta(`UPDATE reflections SET coach_praise = $1, coach_improvement = $2, tomorrow_priorities = $3 WHERE id = $4;`)
	t.Run("set coach feedback", func(t *testing.T) {
		withFeedback := reflection
		withFeedback.CoachPraise = "steady work"
		withFeedback.CoachImprovement = "sleep earlier"
		mock.ExpectExec(feedbackQuery).
			WithArgs("steady work", "sleep earlier", []string{}, reflection.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.SetCoachFeedback(ctx, &withFeedback))
	})
	t.Run("set coach feedback not found", func(t *testing.T) {
		mock.ExpectExec(feedbackQuery).
			WithArgs("", "", []string{}, reflection.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.SetCoachFeedback(ctx, &reflection), errorvalues.ErrReflectionNotFound)
	})
	t.Run("get not found", func(t *testing.T) {
		mock.ExpectQuery(getQuery).WithArgs(userID, day).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByDate(ctx, userID, day)
		assert.ErrorIs(t, err, errorvalues.ErrReflectionNotFound)
	})
}

func TestDayPlansRepository(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewDayPlansRepoWithConn(mock)
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	plan := entity.DayPlan{
		UserID:          userID,
		Date:            day,
		Theme:           entity.ThemeExecute,
		Recommendations: []string{"a", "b", "c"},
	}
	ctx := context.Background()
	t.Run("upsert keeps coach message", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO day_plans (user_id, date, theme, recommendations) VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, date) DO UPDATE SET theme = EXCLUDED.theme, recommendations = EXCLUDED.recommendations
		RETURNING id, morning_coach, evening_coach;`)).
			WithArgs(userID, day, plan.Theme, plan.Recommendations).
			WillReturnRows(pgxmock.NewRows([]string{"id", "morning_coach", "evening_coach"}).AddRow(id, "go!", ""))
		assert.NoError(t, repo.Upsert(ctx, &plan))
		assert.Equal(t, id, plan.ID)
		assert.Equal(t, "go!", plan.MorningCoach)
	})
	t.Run("set evening coach", func(t *testing.T) {
		id := uuid.New()
		withFeedback := plan
		withFeedback.EveningCoach = `{"praise":"ok"}`
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO day_plans (user_id, date, theme, recommendations, evening_coach) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, date) DO UPDATE SET evening_coach = EXCLUDED.evening_coach
		RETURNING id;`)).
			WithArgs(userID, day, plan.Theme, plan.Recommendations, withFeedback.EveningCoach).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
		assert.NoError(t, repo.SetEveningCoach(ctx, &withFeedback))
		assert.Equal(t, id, withFeedback.ID)
	})
	getQuery := regexp.QuoteMeta(`SELECT id, theme, recommendations, morning_coach, evening_coach FROM day_plans WHERE user_id = $1 AND date = $2;`)
	t.Run("get", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery(getQuery).
			WithArgs(userID, day).
			WillReturnRows(pgxmock.NewRows([]string{"id", "theme", "recommendations", "morning_coach", "evening_coach"}).
				AddRow(id, plan.Theme, plan.Recommendations, "go!", `{"praise":"ok"}`))
		result, err := repo.GetByDate(ctx, userID, day)
		assert.NoError(t, err)
		assert.Equal(t, id, result.ID)
		assert.Equal(t, `{"praise":"ok"}`, result.EveningCoach)
	})
	t.Run("get not found", func(t *testing.T) {
		mock.ExpectQuery(getQuery).
			WithArgs(userID, day).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByDate(ctx, userID, day)
		assert.ErrorIs(t, err, errorvalues.ErrDayPlanNotFound)
	})
}
