package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/studiodesk-io/studiodesk/internal/modules/model"
)

// MockTaskRepo is a mock implementation of TaskRepo
type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) Create(ctx context.Context, t *model.ProjectTask) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepo) List(ctx context.Context, projectID *uint) ([]model.ProjectTask, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProjectTask), args.Error(1)
}

func (m *MockTaskRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockTaskRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskRepo) CreateItem(ctx context.Context, item *model.ChecklistItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockTaskRepo) ListItems(ctx context.Context, taskID uint) ([]model.ChecklistItem, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChecklistItem), args.Error(1)
}

func (m *MockTaskRepo) SetItemCompleted(ctx context.Context, id uint, done bool) error {
	args := m.Called(ctx, id, done)
	return args.Error(0)
}

func TestTaskCreateDefaultsStatus(t *testing.T) {
	r := new(MockTaskRepo)
	s := NewTaskService(r)

	r.On("Create", mock.Anything, mock.MatchedBy(func(task *model.ProjectTask) bool {
		return task.Status == model.TaskStatusTodo
	})).Return(nil)

	require.NoError(t, s.Create(context.Background(), &model.ProjectTask{ProjectID: 1, Title: "Cull"}))
	r.AssertExpectations(t)
}

func TestTaskCreateRequiresProjectAndTitle(t *testing.T) {
	r := new(MockTaskRepo)
	s := NewTaskService(r)
	ctx := context.Background()

	assert.Error(t, s.Create(ctx, &model.ProjectTask{Title: "no project"}))
	assert.Error(t, s.Create(ctx, &model.ProjectTask{ProjectID: 1}))
	r.AssertNotCalled(t, "Create")
}

func TestTaskUpdateStatusRejectsEmptyID(t *testing.T) {
	r := new(MockTaskRepo)
	s := NewTaskService(r)

	assert.Error(t, s.UpdateStatus(context.Background(), 0, model.TaskStatusCompleted))
	r.AssertNotCalled(t, "UpdateStatus")
}

func TestChecklistCreateValidation(t *testing.T) {
	r := new(MockTaskRepo)
	s := NewTaskService(r)
	ctx := context.Background()

	assert.Error(t, s.CreateItem(ctx, &model.ChecklistItem{Text: "unowned"}))
	assert.Error(t, s.CreateItem(ctx, &model.ChecklistItem{TaskID: 1}))
	r.AssertNotCalled(t, "CreateItem")
}
