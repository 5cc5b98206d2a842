package repo

import (
	"context"

	"github.com/studiodesk-io/studiodesk/internal/modules/model"
	"gorm.io/gorm"
)

type ClientRepo interface {
	Create(ctx context.Context, c *model.Client) error
	List(ctx context.Context) ([]model.Client, error)
	Delete(ctx context.Context, id uint) error
	SumIncome(ctx context.Context, clientID uint) (float64, error)
}

type clientRepo struct{ db *gorm.DB }

func NewClientRepo(db *gorm.DB) ClientRepo {
	return &clientRepo{db: db}
}

func (r *clientRepo) Create(ctx context.Context, c *model.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clientRepo) List(ctx context.Context) ([]model.Client, error) {
	var items []model.Client
	return items, r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&items).Error
}

// Delete removes the client; the store clears client_id on the client's
// projects (SET NULL) rather than deleting them.
func (r *clientRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Client{}, id).Error
}

// SumIncome totals income transactions across all projects of one client.
// No matching rows yields 0, not NULL.
func (r *clientRepo) SumIncome(ctx context.Context, clientID uint) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Joins("JOIN projects ON projects.id = transactions.project_id").
		Where("projects.client_id = ? AND transactions.type = ?", clientID, model.TransactionTypeIncome).
		Select("COALESCE(SUM(transactions.amount), 0)").
		Scan(&total).Error
	return total, err
}
