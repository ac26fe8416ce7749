package scheduler_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/youthlife/internal/error_values"
	"github.com/limbo/youthlife/internal/scheduler"
	"github.com/limbo/youthlife/internal/service"
	"github.com/limbo/youthlife/internal/service/mocks"
	"github.com/limbo/youthlife/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ownerID = uuid.New()
	// Saturday, late evening in UTC is already Sunday in Tokyo
	testNow = time.Date(2025, 3, 8, 20, 0, 0, 0, time.UTC)
)

func tokyoClock(t *testing.T) service.Clock {
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	return service.Clock{
		Now: func() time.Time { return testNow },
		Loc: loc,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew(t *testing.T) {
	testCases := []struct {
		Desc         string
		Cfg          scheduler.Config
		ExpectedJobs int
		ExpectErr    bool
	}{
		{Desc: "both jobs", Cfg: scheduler.Config{DayInitSpec: "5 0 * * *", MorningCoachSpec: "0 7 * * 1-5"}, ExpectedJobs: 2},
		{Desc: "disabled", Cfg: scheduler.Config{}, ExpectedJobs: 0},
		{Desc: "invalid day init", Cfg: scheduler.Config{DayInitSpec: "every morning"}, ExpectErr: true},
		{Desc: "seconds field is rejected", Cfg: scheduler.Config{MorningCoachSpec: "0 0 7 * * *"}, ExpectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			s, err := scheduler.New(tc.Cfg, ownerID, nil, nil, tokyoClock(t), nil, discardLogger())
			if tc.ExpectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.ExpectedJobs, s.Jobs())
		})
	}
}

func TestRunDayInit(t *testing.T) {
	ctrl := gomock.NewController(t)
	plans := mocks.NewMockDayPlanServiceI(ctrl)
	s, err := scheduler.New(scheduler.Config{}, ownerID, plans, nil, tokyoClock(t), nil, discardLogger())
	require.NoError(t, err)
	sunday := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	plans.EXPECT().InitDay(gomock.Any(), ownerID, sunday).Return(&entity.DayPlan{Date: sunday, Theme: entity.ThemeReflect}, nil)
	assert.NoError(t, s.RunDayInit(context.Background()))

	plans.EXPECT().InitDay(gomock.Any(), ownerID, sunday).Return(nil, errors.New("repository error: conn closed"))
	assert.Error(t, s.RunDayInit(context.Background()))
}

func TestRunMorningCoach(t *testing.T) {
	ctrl := gomock.NewController(t)
	coach := mocks.NewMockCoachServiceI(ctrl)
	s, err := scheduler.New(scheduler.Config{}, ownerID, nil, coach, tokyoClock(t), nil, discardLogger())
	require.NoError(t, err)

	testCases := []struct {
		Desc      string
		Err       error
		ExpectErr bool
	}{
		{Desc: "prepared"},
		{Desc: "provider not configured", Err: errorvalues.ErrCoachUnavailable},
		{Desc: "provider failure", Err: errors.New("llm error: timeout"), ExpectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			coach.EXPECT().MorningCoach(gomock.Any(), ownerID, gomock.Any()).Return("", tc.Err)
			err := s.RunMorningCoach(context.Background())
			if tc.ExpectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
