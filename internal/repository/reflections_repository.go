package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/youthlife/internal/error_values"
	"github.com/limbo/youthlife/pkg/entity"
)

type ReflectionsRepository struct {
	conn PgConnection
}

func NewReflectionsRepo(cfg DBConfig) *ReflectionsRepository {
	return &ReflectionsRepository{
		conn: NewPool(cfg),
	}
}

func NewReflectionsRepoWithConn(conn PgConnection) *ReflectionsRepository {
	mustPing(conn, "reflectionsRepo")
	return &ReflectionsRepository{
		conn: conn,
	}
}

func (rr *ReflectionsRepository) Upsert(ctx context.Context, reflection *entity.Reflection) error {
	answers, err := sonic.Marshal(reflection.Answers)
	if err != nil {
		return errors.New("marshalling answers error: " + err.Error())
	}
	row := rr.conn.QueryRow(ctx, `INSERT INTO reflections (user_id, date, mood, energy, answers) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, date) DO UPDATE SET mood = EXCLUDED.mood, energy = EXCLUDED.energy, answers = EXCLUDED.answers
		RETURNING id, created_at;`,
		reflection.UserID, reflection.Date, reflection.Mood, reflection.Energy, string(answers),
	)
	if err = row.Scan(&reflection.ID, &reflection.CreatedAt); err != nil {
		return errors.New("saving reflection error: " + err.Error())
	}
	return nil
}

func (rr *ReflectionsRepository) GetByDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.Reflection, error) {
	row := rr.conn.QueryRow(ctx, `SELECT id, mood, energy, answers, created_at, coach_praise, coach_improvement, tomorrow_priorities
		FROM reflections WHERE user_id = $1 AND date = $2;`, uid, date)
	reflection := entity.Reflection{
		UserID: uid,
		Date:   date,
	}
	var answers string
	err := row.Scan(&reflection.ID, &reflection.Mood, &reflection.Energy, &answers, &reflection.CreatedAt,
		&reflection.CoachPraise, &reflection.CoachImprovement, &reflection.TomorrowPriorities)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrReflectionNotFound
		}
		return nil, errors.New("getting reflection error: " + err.Error())
	}
	if err = sonic.UnmarshalString(answers, &reflection.Answers); err != nil {
		return nil, errors.New("unmarshalling answers error: " + err.Error())
	}
	return &reflection, nil
}

func (rr *ReflectionsRepository) SetCoachFeedback(ctx context.Context, reflection *entity.Reflection) error {
	priorities := reflection.TomorrowPriorities
	if priorities == nil {
		priorities = []string{}
	}
	ct, err := rr.conn.Exec(ctx, `UPDATE reflections SET coach_praise = $1, coach_improvement = $2, tomorrow_priorities = $3 WHERE id = $4;`,
		reflection.CoachPraise, reflection.CoachImprovement, priorities, reflection.ID,
	)
	if err != nil {
		return errors.New("saving coach feedback error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrReflectionNotFound
	}
	return nil
}
