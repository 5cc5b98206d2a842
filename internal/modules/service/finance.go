package service

import (
	"context"
	"errors"

	"github.com/studiodesk-io/studiodesk/internal/modules/model"
	"github.com/studiodesk-io/studiodesk/internal/modules/repo"
)

type FinanceService interface {
	Create(ctx context.Context, t *model.Transaction) error
	List(ctx context.Context) ([]model.Transaction, error)
}

type financeService struct{ r repo.FinanceRepo }

func NewFinanceService(r repo.FinanceRepo) FinanceService {
	return &financeService{r: r}
}

func (s *financeService) Create(ctx context.Context, t *model.Transaction) error {
	if t.Type == "" {
		return errors.New("transaction type is empty")
	}
	return s.r.Create(ctx, t)
}

func (s *financeService) List(ctx context.Context) ([]model.Transaction, error) {
	return s.r.List(ctx)
}
