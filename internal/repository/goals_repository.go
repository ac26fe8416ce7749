package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/youthlife/internal/error_values"
	"github.com/limbo/youthlife/pkg/entity"
)

type GoalsRepository struct {
	conn PgConnection
}

func NewGoalsRepo(cfg DBConfig) *GoalsRepository {
	return &GoalsRepository{
		conn: NewPool(cfg),
	}
}

func NewGoalsRepoWithConn(conn PgConnection) *GoalsRepository {
	mustPing(conn, "goalsRepo")
	return &GoalsRepository{
		conn: conn,
	}
}

func (gr *GoalsRepository) Create(ctx context.Context, goal *entity.Goal) error {
	row := gr.conn.QueryRow(ctx, `INSERT INTO goals (user_id, level, title, description, period_start, period_end, progress, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;`,
		goal.UserID, goal.Level, goal.Title, goal.Description, goal.PeriodStart, goal.PeriodEnd, goal.Progress, goal.Status,
	)
	if err := row.Scan(&goal.ID); err != nil {
		return errors.New("creating goal error: " + err.Error())
	}
	return nil
}

func (gr *GoalsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	row := gr.conn.QueryRow(ctx, `SELECT user_id, level, title, description, period_start, period_end, progress, status FROM goals WHERE id = $1;`, id)
	goal := entity.Goal{ID: id}
	err := row.Scan(&goal.UserID, &goal.Level, &goal.Title, &goal.Description, &goal.PeriodStart, &goal.PeriodEnd, &goal.Progress, &goal.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGoalNotFound
		}
		return nil, errors.New("getting goal by id error: " + err.Error())
	}
	return &goal, nil
}

func (gr *GoalsRepository) ListActive(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.Goal, error) {
	rows, err := gr.conn.Query(ctx, `SELECT id, user_id, level, title, description, period_start, period_end, progress, status
		FROM goals WHERE user_id = $1 AND status = 'active' ORDER BY period_start ASC LIMIT $2;`, uid, limit)
	if err != nil {
		return nil, errors.New("listing goals error: " + err.Error())
	}
	defer rows.Close()
	goals := make([]*entity.Goal, 0)
	for rows.Next() {
		var g entity.Goal
		err = rows.Scan(&g.ID, &g.UserID, &g.Level, &g.Title, &g.Description, &g.PeriodStart, &g.PeriodEnd, &g.Progress, &g.Status)
		if err != nil {
			return nil, errors.New("unmarshalling goal error: " + err.Error())
		}
		goals = append(goals, &g)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning goals: " + err.Error())
	}
	return goals, nil
}

func (gr *GoalsRepository) Update(ctx context.Context, goal *entity.Goal) error {
	ct, err := gr.conn.Exec(ctx, `UPDATE goals SET title = $1, description = $2, period_start = $3, period_end = $4, progress = $5, status = $6 WHERE id = $7;`,
		goal.Title, goal.Description, goal.PeriodStart, goal.PeriodEnd, goal.Progress, goal.Status, goal.ID,
	)
	if err != nil {
		return errors.New("updating goal error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrGoalNotFound
	}
	return nil
}
