package service

import (
	"context"
	"errors"

	"github.com/studiodesk-io/studiodesk/internal/modules/model"
	"github.com/studiodesk-io/studiodesk/internal/modules/repo"
)

type TaskService interface {
	Create(ctx context.Context, t *model.ProjectTask) error
	List(ctx context.Context, projectID *uint) ([]model.ProjectTask, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error

	CreateItem(ctx context.Context, item *model.ChecklistItem) error
	ListItems(ctx context.Context, taskID uint) ([]model.ChecklistItem, error)
	SetItemCompleted(ctx context.Context, id uint, done bool) error
}

type taskService struct{ r repo.TaskRepo }

func NewTaskService(r repo.TaskRepo) TaskService {
	return &taskService{r: r}
}

func (s *taskService) Create(ctx context.Context, t *model.ProjectTask) error {
	if t.ProjectID == 0 {
		return errors.New("task project id is empty")
	}
	if t.Title == "" {
		return errors.New("task title is empty")
	}
	if t.Status == "" {
		t.Status = model.TaskStatusTodo
	}
	return s.r.Create(ctx, t)
}

func (s *taskService) List(ctx context.Context, projectID *uint) ([]model.ProjectTask, error) {
	return s.r.List(ctx, projectID)
}

func (s *taskService) UpdateStatus(ctx context.Context, id uint, status string) error {
	if id == 0 {
		return errors.New("task id is empty")
	}
	return s.r.UpdateStatus(ctx, id, status)
}

func (s *taskService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("task id is empty")
	}
	return s.r.Delete(ctx, id)
}

func (s *taskService) CreateItem(ctx context.Context, item *model.ChecklistItem) error {
	if item.TaskID == 0 {
		return errors.New("checklist task id is empty")
	}
	if item.Text == "" {
		return errors.New("checklist text is empty")
	}
	return s.r.CreateItem(ctx, item)
}

func (s *taskService) ListItems(ctx context.Context, taskID uint) ([]model.ChecklistItem, error) {
	if taskID == 0 {
		return nil, errors.New("task id is empty")
	}
	return s.r.ListItems(ctx, taskID)
}

func (s *taskService) SetItemCompleted(ctx context.Context, id uint, done bool) error {
	if id == 0 {
		return errors.New("checklist item id is empty")
	}
	return s.r.SetItemCompleted(ctx, id, done)
}
