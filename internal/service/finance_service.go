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

const emotionalTag = "emotional"

type FinanceService struct {
	financeRepo repository.FinanceRepositoryI
}

func NewFinanceService(financeRepo repository.FinanceRepositoryI) *FinanceService {
	if financeRepo == nil {
		log.Fatal("on finance service provided nil repo")
	}
	return &FinanceService{
		financeRepo: financeRepo,
	}
}

func (serv *FinanceService) AddEntry(ctx context.Context, uid uuid.UUID, req *AddFinanceEntryRequest) (*entity.FinanceEntry, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	entry := &entity.FinanceEntry{
		UserID:      uid,
		Date:        entity.CivilDate(req.Date, time.UTC),
		Type:        req.Type,
		Amount:      req.Amount,
		Category:    req.Category,
		Tag:         req.Tag,
		IsEmotional: req.Tag == emotionalTag,
		Note:        req.Note,
	}
	if err := serv.financeRepo.Create(ctx, entry); err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return entry, nil
}

// ListEntries returns entries dated within [from, to] with their totals.
func (serv *FinanceService) ListEntries(ctx context.Context, uid uuid.UUID, from, to time.Time) (*FinanceSummary, error) {
	if to.Before(from) {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("range end is before its start"))
	}
	entries, err := serv.financeRepo.ListByRange(ctx, uid, from, to)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	summary := &FinanceSummary{Entries: entries}
	for _, e := range entries {
		switch e.Type {
		case entity.FinanceIncome:
			summary.TotalIncome += e.Amount
		case entity.FinanceExpense:
			summary.TotalExpense += e.Amount
			if e.IsEmotional {
				summary.Emotional += e.Amount
			}
		}
	}
	return summary, nil
}
