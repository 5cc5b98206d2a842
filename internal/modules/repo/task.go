package repo

import (
	"context"

	"github.com/studiodesk-io/studiodesk/internal/modules/model"
	"gorm.io/gorm"
)

type TaskRepo interface {
	Create(ctx context.Context, t *model.ProjectTask) error
	// List returns all tasks when projectID is nil, otherwise only the
	// project's tasks. Ordered oldest first (kanban board order).
	List(ctx context.Context, projectID *uint) ([]model.ProjectTask, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error

	CreateItem(ctx context.Context, item *model.ChecklistItem) error
	ListItems(ctx context.Context, taskID uint) ([]model.ChecklistItem, error)
	SetItemCompleted(ctx context.Context, id uint, done bool) error
}

type taskRepo struct{ db *gorm.DB }

func NewTaskRepo(db *gorm.DB) TaskRepo {
	return &taskRepo{db: db}
}

func (r *taskRepo) Create(ctx context.Context, t *model.ProjectTask) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *taskRepo) List(ctx context.Context, projectID *uint) ([]model.ProjectTask, error) {
	q := r.db.WithContext(ctx).Order("created_at ASC, id ASC")
	if projectID != nil {
		q = q.Where("project_id = ?", *projectID)
	}
	var items []model.ProjectTask
	return items, q.Find(&items).Error
}

// UpdateStatus changes exactly the status column of exactly one row. A
// missing id affects zero rows and still succeeds; the caller cannot tell
// the two apart at this contract level.
func (r *taskRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.ProjectTask{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Delete removes the task; the store cascades its checklist items away.
func (r *taskRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.ProjectTask{}, id).Error
}

func (r *taskRepo) CreateItem(ctx context.Context, item *model.ChecklistItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *taskRepo) ListItems(ctx context.Context, taskID uint) ([]model.ChecklistItem, error) {
	var items []model.ChecklistItem
	return items, r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at ASC, id ASC").
		Find(&items).Error
}

// SetItemCompleted carries the same permissive zero-rows contract as
// UpdateStatus.
func (r *taskRepo) SetItemCompleted(ctx context.Context, id uint, done bool) error {
	return r.db.WithContext(ctx).
		Model(&model.ChecklistItem{}).
		Where("id = ?", id).
		Update("is_completed", done).Error
}
