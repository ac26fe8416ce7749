package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/youthlife/internal/error_values"
	"github.com/limbo/youthlife/pkg/entity"
)

const memoColumns = `id, user_id, date, title, content, color, all_day, start_time, end_time, created_at`

type CalendarRepository struct {
	conn PgConnection
}

func NewCalendarRepo(cfg DBConfig) *CalendarRepository {
	return &CalendarRepository{
		conn: NewPool(cfg),
	}
}

func NewCalendarRepoWithConn(conn PgConnection) *CalendarRepository {
	mustPing(conn, "calendarRepo")
	return &CalendarRepository{
		conn: conn,
	}
}

func scanMemo(row pgx.Row) (*entity.CalendarMemo, error) {
	var m entity.CalendarMemo
	err := row.Scan(&m.ID, &m.UserID, &m.Date, &m.Title, &m.Content, &m.Color, &m.AllDay, &m.StartTime, &m.EndTime, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (cr *CalendarRepository) Create(ctx context.Context, memo *entity.CalendarMemo) error {
	row := cr.conn.QueryRow(ctx, `INSERT INTO calendar_memos (user_id, date, title, content, color, all_day, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at;`,
		memo.UserID, memo.Date, memo.Title, memo.Content, memo.Color, memo.AllDay, memo.StartTime, memo.EndTime,
	)
	if err := row.Scan(&memo.ID, &memo.CreatedAt); err != nil {
		return errors.New("creating memo error: " + err.Error())
	}
	return nil
}

func (cr *CalendarRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CalendarMemo, error) {
	row := cr.conn.QueryRow(ctx, `SELECT `+memoColumns+` FROM calendar_memos WHERE id = $1;`, id)
	memo, err := scanMemo(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrMemoNotFound
		}
		return nil, errors.New("getting memo by id error: " + err.Error())
	}
	return memo, nil
}

func (cr *CalendarRepository) ListByRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.CalendarMemo, error) {
	rows, err := cr.conn.Query(ctx, `SELECT `+memoColumns+` FROM calendar_memos
		WHERE user_id = $1 AND date >= $2 AND date <= $3 ORDER BY date ASC, start_time ASC NULLS FIRST;`, uid, from, to)
	if err != nil {
		return nil, errors.New("listing memos error: " + err.Error())
	}
	return collectMemos(rows)
}

func (cr *CalendarRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.CalendarMemo, error) {
	rows, err := cr.conn.Query(ctx, `SELECT `+memoColumns+` FROM calendar_memos
		WHERE user_id = $1 ORDER BY date ASC, start_time ASC NULLS FIRST;`, uid)
	if err != nil {
		return nil, errors.New("listing memos error: " + err.Error())
	}
	return collectMemos(rows)
}

func collectMemos(rows pgx.Rows) ([]*entity.CalendarMemo, error) {
	defer rows.Close()
	memos := make([]*entity.CalendarMemo, 0)
	for rows.Next() {
		memo, err := scanMemo(rows)
		if err != nil {
			return nil, errors.New("unmarshalling memo error: " + err.Error())
		}
		memos = append(memos, memo)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning memos: " + err.Error())
	}
	return memos, nil
}

func (cr *CalendarRepository) Update(ctx context.Context, memo *entity.CalendarMemo) error {
	ct, err := cr.conn.Exec(ctx, `UPDATE calendar_memos SET date = $1, title = $2, content = $3, color = $4, all_day = $5, start_time = $6, end_time = $7 WHERE id = $8;`,
		memo.Date, memo.Title, memo.Content, memo.Color, memo.AllDay, memo.StartTime, memo.EndTime, memo.ID,
	)
	if err != nil {
		return errors.New("updating memo error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMemoNotFound
	}
	return nil
}

func (cr *CalendarRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := cr.conn.Exec(ctx, `DELETE FROM calendar_memos WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting memo error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMemoNotFound
	}
	return nil
}
