package repo

import (
	"context"
	"time"

	"github.com/studiodesk-io/studiodesk/internal/modules/model"
	"gorm.io/gorm"
)

type FinanceRepo interface {
	Create(ctx context.Context, t *model.Transaction) error
	List(ctx context.Context) ([]model.Transaction, error)
}

type financeRepo struct{ db *gorm.DB }

func NewFinanceRepo(db *gorm.DB) FinanceRepo {
	return &financeRepo{db: db}
}

func (r *financeRepo) Create(ctx context.Context, t *model.Transaction) error {
	// transaction date defaults to the moment of booking
	if t.Date.IsZero() {
		t.Date = time.Now()
	}
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *financeRepo) List(ctx context.Context) ([]model.Transaction, error) {
	var items []model.Transaction
	return items, r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&items).Error
}
