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

const taskColumns = `id, user_id, goal_id, title, description, tags, theme, priority, status, planned_at, duration_min, actual_duration_min, completed_at, rewarded, created_at`

type TasksRepository struct {
	conn PgConnection
}

func NewTasksRepo(cfg DBConfig) *TasksRepository {
	return &TasksRepository{
		conn: NewPool(cfg),
	}
}

func NewTasksRepoWithConn(conn PgConnection) *TasksRepository {
	mustPing(conn, "tasksRepo")
	return &TasksRepository{
		conn: conn,
	}
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	var t entity.Task
	err := row.Scan(
		&t.ID, &t.UserID, &t.GoalID, &t.Title, &t.Description, &t.Tags, &t.Theme, &t.Priority,
		&t.Status, &t.PlannedAt, &t.DurationMin, &t.ActualDurationMin, &t.CompletedAt, &t.Rewarded, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (tr *TasksRepository) Create(ctx context.Context, task *entity.Task) error {
	row := tr.conn.QueryRow(ctx, `INSERT INTO tasks (user_id, goal_id, title, description, tags, theme, priority, status, planned_at, duration_min, actual_duration_min)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id, created_at;`,
		task.UserID,
		task.GoalID,
		task.Title,
		task.Description,
		task.Tags,
		task.Theme,
		task.Priority,
		task.Status,
		task.PlannedAt,
		task.DurationMin,
		task.ActualDurationMin,
	)
	if err := row.Scan(&task.ID, &task.CreatedAt); err != nil {
		switch pgErrCode(err) {
		// FK violation: unknown goal
		case codeFKViolation:
			return errorvalues.ErrGoalNotFound
		}
		return errors.New("creating task db error: " + err.Error())
	}
	return nil
}

func (tr *TasksRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	row := tr.conn.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1;`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, errors.New("getting task by id error: " + err.Error())
	}
	return task, nil
}

func (tr *TasksRepository) ListByUser(ctx context.Context, uid uuid.UUID, filter TaskFilter) ([]*entity.Task, error) {
	rows, err := tr.conn.Query(ctx, `SELECT `+taskColumns+` FROM tasks
		WHERE user_id = $1 AND ($2::timestamptz IS NULL OR planned_at >= $2) AND ($3::timestamptz IS NULL OR planned_at < $3) AND ($4::text IS NULL OR status = $4)
		ORDER BY priority ASC, planned_at ASC;`,
		uid, filter.From, filter.To, filter.Status,
	)
	if err != nil {
		return nil, errors.New("listing tasks error: " + err.Error())
	}
	return collectTasks(rows)
}

func (tr *TasksRepository) ListCompletedSince(ctx context.Context, uid uuid.UUID, since time.Time) ([]*entity.Task, error) {
	rows, err := tr.conn.Query(ctx, `SELECT `+taskColumns+` FROM tasks WHERE user_id = $1 AND status = 'completed' AND completed_at >= $2;`,
		uid, since,
	)
	if err != nil {
		return nil, errors.New("listing completed tasks error: " + err.Error())
	}
	return collectTasks(rows)
}

func collectTasks(rows pgx.Rows) ([]*entity.Task, error) {
	defer rows.Close()
	tasks := make([]*entity.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, errors.New("unmarshalling task error: " + err.Error())
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning tasks: " + err.Error())
	}
	return tasks, nil
}

func (tr *TasksRepository) Update(ctx context.Context, task *entity.Task) error {
	ct, err := tr.conn.Exec(ctx, `UPDATE tasks SET goal_id = $1, title = $2, description = $3, tags = $4, theme = $5, priority = $6, status = $7,
		planned_at = $8, duration_min = $9, actual_duration_min = $10, completed_at = $11, rewarded = $12 WHERE id = $13;`,
		task.GoalID,
		task.Title,
		task.Description,
		task.Tags,
		task.Theme,
		task.Priority,
		task.Status,
		task.PlannedAt,
		task.DurationMin,
		task.ActualDurationMin,
		task.CompletedAt,
		task.Rewarded,
		task.ID,
	)
	if err != nil {
		if pgErrCode(err) == codeFKViolation {
			return errorvalues.ErrGoalNotFound
		}
		return errors.New("error updating task: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}

func (tr *TasksRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM tasks WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting task: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}
