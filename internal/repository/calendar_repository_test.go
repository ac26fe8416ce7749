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

var memoColumnNames = []string{"id", "user_id", "date", "title", "content", "color", "all_day", "start_time", "end_time", "created_at"}

const memoColumns = `id, user_id, date, title, content, color, all_day, start_time, end_time, created_at`

func TestCalendarRepository(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCalendarRepoWithConn(mock)
	start, end := "09:00", "10:30"
	memo := entity.CalendarMemo{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Title:     "dentist",
		Color:     "red",
		StartTime: &start,
		EndTime:   &end,
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	addMemoRow := func(rows *pgxmock.Rows, m entity.CalendarMemo) *pgxmock.Rows {
		return rows.AddRow(m.ID, m.UserID, m.Date, m.Title, m.Content, m.Color, m.AllDay, m.StartTime, m.EndTime, m.CreatedAt)
	}
	ctx := context.Background()
	t.Run("create", func(t *testing.T) {
		created := memo
		id, createdAt := uuid.New(), time.Now()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO calendar_memos (user_id, date, title, content, color, all_day, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at;`)).
			WithArgs(memo.UserID, memo.Date, memo.Title, memo.Content, memo.Color, memo.AllDay, memo.StartTime, memo.EndTime).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, createdAt))
		assert.NoError(t, repo.Create(ctx, &created))
		assert.Equal(t, id, created.ID)
		assert.Equal(t, createdAt, created.CreatedAt)
	})
	getQuery := regexp.QuoteMeta(`SELECT ` + memoColumns + ` FROM calendar_memos WHERE id = $1;`)
	t.Run("get", func(t *testing.T) {
		mock.ExpectQuery(getQuery).
			WithArgs(memo.ID).
			WillReturnRows(addMemoRow(pgxmock.NewRows(memoColumnNames), memo))
		result, err := repo.GetByID(ctx, memo.ID)
		assert.NoError(t, err)
		assert.Equal(t, memo, *result)
	})
	t.Run("get not found", func(t *testing.T) {
		mock.ExpectQuery(getQuery).WithArgs(memo.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, memo.ID)
		assert.ErrorIs(t, err, errorvalues.ErrMemoNotFound)
	})
	rangeQuery := regexp.QuoteMeta(`SELECT ` + memoColumns + ` FROM calendar_memos
		WHERE user_id = $1 AND date >= $2 AND date <= $3 ORDER BY date ASC, start_time ASC NULLS FIRST;`)
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	t.Run("list by range", func(t *testing.T) {
		mock.ExpectQuery(rangeQuery).
			WithArgs(userID, from, to).
			WillReturnRows(addMemoRow(pgxmock.NewRows(memoColumnNames), memo))
		result, err := repo.ListByRange(ctx, userID, from, to)
		assert.NoError(t, err)
		assert.Equal(t, []*entity.CalendarMemo{&memo}, result)
	})
	t.Run("list by range db error", func(t *testing.T) {
		mock.ExpectQuery(rangeQuery).WithArgs(userID, from, to).WillReturnError(errors.New("db error"))
		_, err := repo.ListByRange(ctx, userID, from, to)
		assert.Error(t, err)
	})
	t.Run("list by user empty", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + memoColumns + ` FROM calendar_memos
		WHERE user_id = $1 ORDER BY date ASC, start_time ASC NULLS FIRST;`)).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows(memoColumnNames))
		result, err := repo.ListByUser(ctx, userID)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
	updateQuery := regexp.QuoteMeta(`UPDATE calendar_memos SET date = $1, title = $2, content = $3, color = $4, all_day = $5, start_time = $6, end_time = $7 WHERE id = $8;`)
	t.Run("update", func(t *testing.T) {
		mock.ExpectExec(updateQuery).
			WithArgs(memo.Date, memo.Title, memo.Content, memo.Color, memo.AllDay, memo.StartTime, memo.EndTime, memo.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.Update(ctx, &memo))
	})
	t.Run("update not found", func(t *testing.T) {
		mock.ExpectExec(updateQuery).
			WithArgs(memo.Date, memo.Title, memo.Content, memo.Color, memo.AllDay, memo.StartTime, memo.EndTime, memo.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.Update(ctx, &memo), errorvalues.ErrMemoNotFound)
	})
	deleteQuery := regexp.QuoteMeta(`DELETE FROM calendar_memos WHERE id = $1;`)
	t.Run("delete", func(t *testing.T) {
		mock.ExpectExec(deleteQuery).WithArgs(memo.ID).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.Delete(ctx, memo.ID))
	})
	t.Run("delete not found", func(t *testing.T) {
		mock.ExpectExec(deleteQuery).WithArgs(memo.ID).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.Delete(ctx, memo.ID), errorvalues.ErrMemoNotFound)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
