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

type DayPlansRepository struct {
	conn PgConnection
}

func NewDayPlansRepo(cfg DBConfig) *DayPlansRepository {
	return &DayPlansRepository{
		conn: NewPool(cfg),
	}
}

func NewDayPlansRepoWithConn(conn PgConnection) *DayPlansRepository {
	mustPing(conn, "dayPlansRepo")
	return &DayPlansRepository{
		conn: conn,
	}
}

func (dr *DayPlansRepository) Upsert(ctx context.Context, plan *entity.DayPlan) error {
	row := dr.conn.QueryRow(ctx, `INSERT INTO day_plans (user_id, date, theme, recommendations) VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, date) DO UPDATE SET theme = EXCLUDED.theme, recommendations = EXCLUDED.recommendations
		RETURNING id, morning_coach, evening_coach;`,
		plan.UserID, plan.Date, plan.Theme, plan.Recommendations,
	)
	if err := row.Scan(&plan.ID, &plan.MorningCoach, &plan.EveningCoach); err != nil {
		return errors.New("saving day plan error: " + err.Error())
	}
	return nil
}

func (dr *DayPlansRepository) SetMorningCoach(ctx context.Context, plan *entity.DayPlan) error {
	row := dr.conn.QueryRow(ctx, `INSERT INTO day_plans (user_id, date, theme, recommendations, morning_coach) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, date) DO UPDATE SET morning_coach = EXCLUDED.morning_coach
		RETURNING id;`,
		plan.UserID, plan.Date, plan.Theme, plan.Recommendations, plan.MorningCoach,
	)
	if err := row.Scan(&plan.ID); err != nil {
		return errors.New("saving morning coach error: " + err.Error())
	}
	return nil
}

func (dr *DayPlansRepository) SetEveningCoach(ctx context.Context, plan *entity.DayPlan) error {
	row := dr.conn.QueryRow(ctx, `INSERT INTO day_plans (user_id, date, theme, recommendations, evening_coach) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, date) DO UPDATE SET evening_coach = EXCLUDED.evening_coach
		RETURNING id;`,
		plan.UserID, plan.Date, plan.Theme, plan.Recommendations, plan.EveningCoach,
	)
	if err := row.Scan(&plan.ID); err != nil {
		return errors.New("saving evening coach error: " + err.Error())
	}
	return nil
}

func (dr *DayPlansRepository) GetByDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.DayPlan, error) {
	row := dr.conn.QueryRow(ctx, `SELECT id, theme, recommendations, morning_coach, evening_coach FROM day_plans WHERE user_id = $1 AND date = $2;`, uid, date)
	plan := entity.DayPlan{
		UserID: uid,
		Date:   date,
	}
	err := row.Scan(&plan.ID, &plan.Theme, &plan.Recommendations, &plan.MorningCoach, &plan.EveningCoach)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrDayPlanNotFound
		}
		return nil, errors.New("getting day plan error: " + err.Error())
	}
	return &plan, nil
}
