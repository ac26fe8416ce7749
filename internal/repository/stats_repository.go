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

const statsColumns = `id, user_id, date, strength, intelligence, wisdom, charisma, grit, total_exp, level`

type StatsRepository struct {
	conn PgConnection
}

func NewStatsRepo(cfg DBConfig) *StatsRepository {
	return &StatsRepository{
		conn: NewPool(cfg),
	}
}

func NewStatsRepoWithConn(conn PgConnection) *StatsRepository {
	mustPing(conn, "statsRepo")
	return &StatsRepository{
		conn: conn,
	}
}

func scanStats(row pgx.Row) (*entity.Stats, error) {
	var s entity.Stats
	err := row.Scan(&s.ID, &s.UserID, &s.Date, &s.Str, &s.Int, &s.Wis, &s.Cha, &s.Grt, &s.TotalExp, &s.Level)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrStatsNotFound
		}
		return nil, errors.New("scanning stats error: " + err.Error())
	}
	return &s, nil
}

func (sr *StatsRepository) GetByDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.Stats, error) {
	row := sr.conn.QueryRow(ctx, `SELECT `+statsColumns+` FROM stats WHERE user_id = $1 AND date = $2;`, uid, date)
	return scanStats(row)
}

func (sr *StatsRepository) GetLatest(ctx context.Context, uid uuid.UUID) (*entity.Stats, error) {
	row := sr.conn.QueryRow(ctx, `SELECT `+statsColumns+` FROM stats WHERE user_id = $1 ORDER BY date DESC LIMIT 1;`, uid)
	return scanStats(row)
}

func (sr *StatsRepository) Create(ctx context.Context, stats *entity.Stats) error {
	row := sr.conn.QueryRow(ctx, `INSERT INTO stats (user_id, date, strength, intelligence, wisdom, charisma, grit, total_exp, level)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id;`,
		stats.UserID, stats.Date, stats.Str, stats.Int, stats.Wis, stats.Cha, stats.Grt, stats.TotalExp, stats.Level,
	)
	if err := row.Scan(&stats.ID); err != nil {
		if pgErrCode(err) == codeUniqueViolation {
			return errorvalues.ErrStatsExist
		}
		return errors.New("creating stats error: " + err.Error())
	}
	return nil
}

func (sr *StatsRepository) Update(ctx context.Context, stats *entity.Stats) error {
	ct, err := sr.conn.Exec(ctx, `UPDATE stats SET strength = $1, intelligence = $2, wisdom = $3, charisma = $4, grit = $5, total_exp = $6, level = $7 WHERE id = $8;`,
		stats.Str, stats.Int, stats.Wis, stats.Cha, stats.Grt, stats.TotalExp, stats.Level, stats.ID,
	)
	if err != nil {
		return errors.New("updating stats error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrStatsNotFound
	}
	return nil
}
