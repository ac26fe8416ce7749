package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/youthlife/internal/error_values"
	"github.com/limbo/youthlife/pkg/entity"
)

type StreaksRepository struct {
	conn PgConnection
}

func NewStreaksRepo(cfg DBConfig) *StreaksRepository {
	return &StreaksRepository{
		conn: NewPool(cfg),
	}
}

func NewStreaksRepoWithConn(conn PgConnection) *StreaksRepository {
	mustPing(conn, "streaksRepo")
	return &StreaksRepository{
		conn: conn,
	}
}

func (sr *StreaksRepository) Get(ctx context.Context, uid uuid.UUID, metric string) (*entity.Streak, error) {
	row := sr.conn.QueryRow(ctx, `SELECT id, count, last_date, best_streak FROM streaks WHERE user_id = $1 AND metric = $2;`, uid, metric)
	streak := entity.Streak{
		UserID: uid,
		Metric: metric,
	}
	err := row.Scan(&streak.ID, &streak.Count, &streak.LastDate, &streak.BestStreak)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrStreakNotFound
		}
		return nil, errors.New("getting streak error: " + err.Error())
	}
	return &streak, nil
}

func (sr *StreaksRepository) Create(ctx context.Context, streak *entity.Streak) error {
	row := sr.conn.QueryRow(ctx, `INSERT INTO streaks (user_id, metric, count, last_date, best_streak) VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		streak.UserID, streak.Metric, streak.Count, streak.LastDate, streak.BestStreak,
	)
	if err := row.Scan(&streak.ID); err != nil {
		if pgErrCode(err) == codeUniqueViolation {
			return errorvalues.ErrStreakExist
		}
		return errors.New("creating streak error: " + err.Error())
	}
	return nil
}

func (sr *StreaksRepository) Update(ctx context.Context, streak *entity.Streak) error {
	ct, err := sr.conn.Exec(ctx, `UPDATE streaks SET count = $1, last_date = $2, best_streak = $3 WHERE user_id = $4 AND metric = $5;`,
		streak.Count, streak.LastDate, streak.BestStreak, streak.UserID, streak.Metric,
	)
	if err != nil {
		return errors.New("updating streak error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrStreakNotFound
	}
	return nil
}
