package repo

import (
	"context"

	"github.com/studiodesk-io/studiodesk/internal/modules/model"
	"gorm.io/gorm"
)

type CalendarRepo interface {
	Create(ctx context.Context, e *model.CalendarEvent) error
	List(ctx context.Context) ([]model.CalendarEvent, error)
}

type calendarRepo struct{ db *gorm.DB }

func NewCalendarRepo(db *gorm.DB) CalendarRepo {
	return &calendarRepo{db: db}
}

func (r *calendarRepo) Create(ctx context.Context, e *model.CalendarEvent) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *calendarRepo) List(ctx context.Context) ([]model.CalendarEvent, error) {
	var items []model.CalendarEvent
	return items, r.db.WithContext(ctx).Order("start ASC, id ASC").Find(&items).Error
}
