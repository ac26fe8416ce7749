package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/youthlife/internal/achievement"
	errorvalues "github.com/limbo/youthlife/internal/error_values"
	"github.com/limbo/youthlife/internal/repository"
	"github.com/limbo/youthlife/pkg/entity"
)

type ReflectionsService struct {
	reflectionsRepo repository.ReflectionsRepositoryI
	streaks         *StreaksService
}

func NewReflectionsService(reflectionsRepo repository.ReflectionsRepositoryI, streaks *StreaksService) *ReflectionsService {
	if reflectionsRepo == nil || streaks == nil {
		log.Fatal("on reflections service provided nil dependencies")
	}
	return &ReflectionsService{
		reflectionsRepo: reflectionsRepo,
		streaks:         streaks,
	}
}

// SaveReflection stores the day's reflection and advances the reflection streak.
func (serv *ReflectionsService) SaveReflection(ctx context.Context, uid uuid.UUID, req *SaveReflectionRequest) (*entity.Reflection, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	date := entity.CivilDate(req.Date, time.UTC)
	reflection := &entity.Reflection{
		UserID:  uid,
		Date:    date,
		Mood:    req.Mood,
		Energy:  req.Energy,
		Answers: req.Answers,
	}
	if err := serv.reflectionsRepo.Upsert(ctx, reflection); err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if err := serv.streaks.RecordEvent(ctx, uid, achievement.ReflectionMetric, date); err != nil {
		return nil, err
	}
	return reflection, nil
}

func (serv *ReflectionsService) GetReflection(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.Reflection, error) {
	reflection, err := serv.reflectionsRepo.GetByDate(ctx, uid, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrReflectionNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return reflection, nil
}
