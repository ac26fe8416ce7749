package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/youthlife/internal/error_values"
	"github.com/limbo/youthlife/internal/repository"
	"github.com/limbo/youthlife/pkg/entity"
)

const (
	defaultMemoColor = "blue"
	memoTimeLayout   = "15:04"
)

type CalendarService struct {
	calendarRepo repository.CalendarRepositoryI
}

func NewCalendarService(calendarRepo repository.CalendarRepositoryI) *CalendarService {
	if calendarRepo == nil {
		log.Fatal("on calendar service provided nil repo")
	}
	return &CalendarService{
		calendarRepo: calendarRepo,
	}
}

func (serv *CalendarService) CreateMemo(ctx context.Context, uid uuid.UUID, req *CreateMemoRequest) (*entity.CalendarMemo, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	memo := &entity.CalendarMemo{
		UserID:  uid,
		Date:    entity.CivilDate(req.Date, time.UTC),
		Title:   req.Title,
		Content: req.Content,
		Color:   req.Color,
		AllDay:  true,
	}
	if memo.Color == "" {
		memo.Color = defaultMemoColor
	}
	if req.AllDay != nil {
		memo.AllDay = *req.AllDay
	}
	memo.StartTime, memo.EndTime = normalizeMemoTime(req.StartTime), normalizeMemoTime(req.EndTime)
	if err := checkMemoTimes(memo); err != nil {
		return nil, err
	}
	if err := serv.calendarRepo.Create(ctx, memo); err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return memo, nil
}

func (serv *CalendarService) ListMemos(ctx context.Context, uid uuid.UUID, req *ListMemosRequest) ([]*entity.CalendarMemo, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	var (
		memos []*entity.CalendarMemo
		err   error
	)
	if req.Year != 0 && req.Month != 0 {
		from := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
		memos, err = serv.calendarRepo.ListByRange(ctx, uid, from, from.AddDate(0, 1, -1))
	} else {
		memos, err = serv.calendarRepo.ListByUser(ctx, uid)
	}
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return memos, nil
}

func (serv *CalendarService) getOwned(ctx context.Context, uid, id uuid.UUID) (*entity.CalendarMemo, error) {
	memo, err := serv.calendarRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMemoNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if memo.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return memo, nil
}

func (serv *CalendarService) UpdateMemo(ctx context.Context, uid, id uuid.UUID, req *UpdateMemoRequest) (*entity.CalendarMemo, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	memo, err := serv.getOwned(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	if req.Date != nil {
		memo.Date = entity.CivilDate(*req.Date, time.UTC)
	}
	if req.Title != nil {
		memo.Title = *req.Title
	}
	if req.Content != nil {
		memo.Content = *req.Content
	}
	if req.Color != nil {
		memo.Color = *req.Color
	}
	if req.AllDay != nil {
		memo.AllDay = *req.AllDay
	}
	if req.StartTime != nil {
		memo.StartTime = normalizeMemoTime(req.StartTime)
	}
	if req.EndTime != nil {
		memo.EndTime = normalizeMemoTime(req.EndTime)
	}
	if err = checkMemoTimes(memo); err != nil {
		return nil, err
	}
	if err = serv.calendarRepo.Update(ctx, memo); err != nil {
		if errors.Is(err, errorvalues.ErrMemoNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return memo, nil
}

func (serv *CalendarService) DeleteMemo(ctx context.Context, uid, id uuid.UUID) error {
	if _, err := serv.getOwned(ctx, uid, id); err != nil {
		return err
	}
	if err := serv.calendarRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, errorvalues.ErrMemoNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

// normalizeMemoTime rewrites a validated clock time as zero padded HH:MM.
func normalizeMemoTime(value *string) *string {
	if value == nil {
		return nil
	}
	t, err := time.Parse(memoTimeLayout, *value)
	if err != nil {
		return value
	}
	out := t.Format(memoTimeLayout)
	return &out
}

func checkMemoTimes(memo *entity.CalendarMemo) error {
	if memo.StartTime != nil && memo.EndTime != nil && *memo.EndTime < *memo.StartTime {
		return errors.Join(errorvalues.ErrValidation, errors.New("end time is before start time"))
	}
	return nil
}
