package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/youthlife/pkg/entity"
)

type FinanceRepository struct {
	conn PgConnection
}

func NewFinanceRepo(cfg DBConfig) *FinanceRepository {
	return &FinanceRepository{
		conn: NewPool(cfg),
	}
}

func NewFinanceRepoWithConn(conn PgConnection) *FinanceRepository {
	mustPing(conn, "financeRepo")
	return &FinanceRepository{
		conn: conn,
	}
}

func (fr *FinanceRepository) Create(ctx context.Context, entry *entity.FinanceEntry) error {
	row := fr.conn.QueryRow(ctx, `INSERT INTO finance_entries (user_id, entry_date, type, amount, category, tag, is_emotional, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at;`,
		entry.UserID, entry.Date, entry.Type, entry.Amount, entry.Category, entry.Tag, entry.IsEmotional, entry.Note,
	)
	if err := row.Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return errors.New("creating finance entry error: " + err.Error())
	}
	return nil
}

func (fr *FinanceRepository) ListByRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.FinanceEntry, error) {
	rows, err := fr.conn.Query(ctx, `SELECT id, user_id, entry_date, type, amount, category, tag, is_emotional, note, created_at
		FROM finance_entries WHERE user_id = $1 AND entry_date >= $2 AND entry_date <= $3 ORDER BY entry_date ASC, created_at ASC;`,
		uid, from, to,
	)
	if err != nil {
		return nil, errors.New("listing finance entries error: " + err.Error())
	}
	defer rows.Close()
	entries := make([]*entity.FinanceEntry, 0)
	for rows.Next() {
		var e entity.FinanceEntry
		err = rows.Scan(&e.ID, &e.UserID, &e.Date, &e.Type, &e.Amount, &e.Category, &e.Tag, &e.IsEmotional, &e.Note, &e.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling finance entry error: " + err.Error())
		}
		entries = append(entries, &e)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning finance entries: " + err.Error())
	}
	return entries, nil
}

func (fr *FinanceRepository) CountEmotionalSince(ctx context.Context, uid uuid.UUID, since time.Time) (int, error) {
	var count int
	err := fr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM finance_entries WHERE user_id = $1 AND is_emotional AND entry_date >= $2;`, uid, since).
		Scan(&count)
	if err != nil {
		return 0, errors.New("counting emotional entries error: " + err.Error())
	}
	return count, nil
}
