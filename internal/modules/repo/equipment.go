package repo

import (
	"context"
	"time"

	"github.com/studiodesk-io/studiodesk/internal/modules/model"
	"gorm.io/gorm"
)

type EquipmentRepo interface {
	Create(ctx context.Context, e *model.Equipment) error
	List(ctx context.Context) ([]model.Equipment, error)
	Checkout(ctx context.Context, id uint, memberID uint, when time.Time) error
	Checkin(ctx context.Context, id uint) error
	StatusCounts(ctx context.Context) (map[string]int64, error)
}

type equipmentRepo struct{ db *gorm.DB }

func NewEquipmentRepo(db *gorm.DB) EquipmentRepo {
	return &equipmentRepo{db: db}
}

func (r *equipmentRepo) Create(ctx context.Context, e *model.Equipment) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *equipmentRepo) List(ctx context.Context) ([]model.Equipment, error) {
	var items []model.Equipment
	return items, r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&items).Error
}

// Checkout hands the item to a team member: status, holder and date move
// together in one statement.
func (r *equipmentRepo) Checkout(ctx context.Context, id uint, memberID uint, when time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.Equipment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":           model.EquipmentStatusInUse,
			"checked_out_to":   memberID,
			"checked_out_date": when,
		}).Error
}

// Checkin returns the item to the shelf and clears the checkout columns.
func (r *equipmentRepo) Checkin(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&model.Equipment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":           model.EquipmentStatusAvailable,
			"checked_out_to":   nil,
			"checked_out_date": nil,
		}).Error
}

// StatusCounts reports how many items sit in each status. Statuses with no
// items are absent from the map.
func (r *equipmentRepo) StatusCounts(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Equipment{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
