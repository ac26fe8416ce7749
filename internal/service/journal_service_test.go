package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/youthlife/internal/error_values"
	"github.com/limbo/youthlife/internal/repository/mocks"
	"github.com/limbo/youthlife/internal/service"
	"github.com/limbo/youthlife/internal/theme"
	"github.com/limbo/youthlife/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFinanceEntry(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	financeRepo := mocks.NewMockFinanceRepositoryI(ctrl)
	serv := service.NewFinanceService(financeRepo)
	userID := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		Req          *service.AddFinanceEntryRequest
		Emotional    bool
		MockPrepFunc func()
	}{
		{
			Desc:      "emotional expense",
			Req:       &service.AddFinanceEntryRequest{Date: testNow, Type: entity.FinanceExpense, Amount: 15000, Category: "food", Tag: "emotional"},
			Emotional: true,
			MockPrepFunc: func() {
				financeRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			Desc: "income",
			Req:  &service.AddFinanceEntryRequest{Date: testNow, Type: entity.FinanceIncome, Amount: 3000000, Category: "salary"},
			MockPrepFunc: func() {
				financeRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			Desc:         "zero amount",
			Error:        errorvalues.ErrValidation,
			Req:          &service.AddFinanceEntryRequest{Date: testNow, Type: entity.FinanceExpense, Category: "food"},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "unknown type",
			Error:        errorvalues.ErrValidation,
			Req:          &service.AddFinanceEntryRequest{Date: testNow, Type: "refund", Amount: 10, Category: "food"},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "unknown tag",
			Error:        errorvalues.ErrValidation,
			Req:          &service.AddFinanceEntryRequest{Date: testNow, Type: entity.FinanceExpense, Amount: 10, Category: "food", Tag: "impulse"},
			MockPrepFunc: func() {},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		tc.MockPrepFunc()
		entry, err := serv.AddEntry(ctx, userID, tc.Req)
		assert.ErrorIs(t, err, tc.Error, tc.Desc)
		if tc.Error == nil && assert.NotNil(t, entry, tc.Desc) {
			assert.Equal(t, tc.Emotional, entry.IsEmotional, tc.Desc)
			assert.Equal(t, testToday, entry.Date, tc.Desc)
		}
	}
}

func TestListFinanceEntries(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	financeRepo := mocks.NewMockFinanceRepositoryI(ctrl)
	serv := service.NewFinanceService(financeRepo)
	userID := uuid.New()
	from, to := testToday.AddDate(0, 0, -6), testToday
	ctx := context.Background()

	t.Run("totals", func(t *testing.T) {
		financeRepo.EXPECT().ListByRange(gomock.Any(), userID, from, to).Return([]*entity.FinanceEntry{
			{Type: entity.FinanceIncome, Amount: 500000},
			{Type: entity.FinanceExpense, Amount: 12000, Tag: "fixed"},
			{Type: entity.FinanceExpense, Amount: 8000, Tag: "emotional", IsEmotional: true},
		}, nil)
		sum, err := serv.ListEntries(ctx, userID, from, to)
		require.NoError(t, err)
		assert.Len(t, sum.Entries, 3)
		assert.Equal(t, int64(500000), sum.TotalIncome)
		assert.Equal(t, int64(20000), sum.TotalExpense)
		assert.Equal(t, int64(8000), sum.Emotional)
	})
	t.Run("reversed range", func(t *testing.T) {
		_, err := serv.ListEntries(ctx, userID, to, from)
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("db error", func(t *testing.T) {
		financeRepo.EXPECT().ListByRange(gomock.Any(), userID, from, to).Return(nil, errors.New("db error"))
		_, err := serv.ListEntries(ctx, userID, from, to)
		assert.Error(t, err)
	})
}

func TestGoals(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	goalsRepo := mocks.NewMockGoalsRepositoryI(ctrl)
	serv := service.NewGoalsService(goalsRepo)
	userID := uuid.New()
	goalID := uuid.New()
	ctx := context.Background()
	march := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("create", func(t *testing.T) {
		goalsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		g, err := serv.CreateGoal(ctx, userID, &service.CreateGoalRequest{
			Level:       entity.GoalMonthly,
			Title:       "ship the side project",
			PeriodStart: march,
			PeriodEnd:   march.AddDate(0, 1, -1),
		})
		require.NoError(t, err)
		assert.Equal(t, entity.GoalActive, g.Status)
		assert.Zero(t, g.Progress)
	})
	t.Run("period end before start", func(t *testing.T) {
		_, err := serv.CreateGoal(ctx, userID, &service.CreateGoalRequest{
			Level:       entity.GoalWeekly,
			Title:       "x",
			PeriodStart: march,
			PeriodEnd:   march.AddDate(0, 0, -1),
		})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("unknown level", func(t *testing.T) {
		_, err := serv.CreateGoal(ctx, userID, &service.CreateGoalRequest{Level: "YEARLY", Title: "x", PeriodStart: march, PeriodEnd: march})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("list active", func(t *testing.T) {
		goalsRepo.EXPECT().ListActive(gomock.Any(), userID, 20).Return([]*entity.Goal{{ID: goalID}}, nil)
		goals, err := serv.ListActiveGoals(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, goals, 1)
	})

	progress := 60
	done := entity.GoalCompleted
	tooMuch := 101
	testCases := []struct {
		Desc         string
		Error        error
		Req          *service.UpdateGoalRequest
		MockPrepFunc func()
	}{
		{
			Desc: "update progress",
			Req:  &service.UpdateGoalRequest{Progress: &progress, Status: &done},
			MockPrepFunc: func() {
				goalsRepo.EXPECT().GetByID(gomock.Any(), goalID).Return(&entity.Goal{ID: goalID, UserID: userID, Status: entity.GoalActive}, nil)
				goalsRepo.EXPECT().Update(gomock.Any(), &entity.Goal{ID: goalID, UserID: userID, Status: entity.GoalCompleted, Progress: 60}).Return(nil)
			},
		},
		{
			Desc:         "progress over 100",
			Error:        errorvalues.ErrValidation,
			Req:          &service.UpdateGoalRequest{Progress: &tooMuch},
			MockPrepFunc: func() {},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrGoalNotFound,
			Req:   &service.UpdateGoalRequest{Progress: &progress},
			MockPrepFunc: func() {
				goalsRepo.EXPECT().GetByID(gomock.Any(), goalID).Return(nil, errorvalues.ErrGoalNotFound)
			},
		},
		{
			Desc:  "wrong owner",
			Error: errorvalues.ErrWrongOwner,
			Req:   &service.UpdateGoalRequest{Progress: &progress},
			MockPrepFunc: func() {
				goalsRepo.EXPECT().GetByID(gomock.Any(), goalID).Return(&entity.Goal{ID: goalID, UserID: uuid.New()}, nil)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			_, err := serv.UpdateGoal(ctx, userID, goalID, tc.Req)
			assert.ErrorIs(t, err, tc.Error)
		})
	}
}

func TestInitDay(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	plansRepo := mocks.NewMockDayPlansRepositoryI(ctrl)
	serv := service.NewDayPlanService(plansRepo)
	userID := uuid.New()
	saturday := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)

	plansRepo.EXPECT().Upsert(gomock.Any(), &entity.DayPlan{
		UserID:          userID,
		Date:            saturday,
		Theme:           entity.ThemeRecover,
		Recommendations: theme.Recommendations(entity.ThemeRecover),
	}).Return(nil)
	plan, err := serv.InitDay(context.Background(), userID, saturday)
	require.NoError(t, err)
	assert.Equal(t, entity.ThemeRecover, plan.Theme)
	assert.Len(t, plan.Recommendations, 3)
}
