package handler

import (
	"context"
	"time"

	"github.com/studiodesk-io/studiodesk/internal/dispatch"
	"github.com/studiodesk-io/studiodesk/internal/modules/model"
	"github.com/studiodesk-io/studiodesk/internal/modules/service"
)

type TaskHandler struct {
	svc service.TaskService
}

func NewTaskHandler(s service.TaskService) *TaskHandler {
	return &TaskHandler{svc: s}
}

func (h *TaskHandler) Register(d *dispatch.Dispatcher) {
	d.Register(dispatch.OpGetTasks, h.GetTasks)
	d.Register(dispatch.OpCreateTask, h.CreateTask)
	d.Register(dispatch.OpUpdateTaskStatus, h.UpdateTaskStatus)
	d.Register(dispatch.OpDeleteTask, h.DeleteTask)
	d.Register(dispatch.OpGetChecklist, h.GetChecklist)
	d.Register(dispatch.OpCreateChecklistItem, h.CreateChecklistItem)
	d.Register(dispatch.OpToggleChecklistItem, h.ToggleChecklistItem)
}

type GetTasksReq struct {
	ProjectID *uint `json:"project_id"`
}

type CreateTaskReq struct {
	ProjectID uint       `json:"project_id"`
	Title     string     `json:"title"`
	Status    string     `json:"status"`
	DueTime   *time.Time `json:"due_time"`
}

type UpdateTaskStatusReq struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

type TaskIDReq struct {
	ID uint `json:"id"`
}

type GetChecklistReq struct {
	TaskID uint `json:"task_id"`
}

type CreateChecklistItemReq struct {
	TaskID uint   `json:"task_id"`
	Text   string `json:"text"`
}

type ToggleChecklistItemReq struct {
	ID          uint `json:"id"`
	IsCompleted bool `json:"is_completed"`
}

// GetTasks returns every task across all projects when project_id is
// omitted, otherwise only the named project's tasks.
func (h *TaskHandler) GetTasks(ctx context.Context, payload []byte) (interface{}, error) {
	req := GetTasksReq{}
	if err := dispatch.Bind(payload, &req); err != nil {
		return nil, err
	}
	return h.svc.List(ctx, req.ProjectID)
}

func (h *TaskHandler) CreateTask(ctx context.Context, payload []byte) (interface{}, error) {
	req := CreateTaskReq{}
	if err := dispatch.Bind(payload, &req); err != nil {
		return nil, err
	}
	t := model.ProjectTask{
		ProjectID: req.ProjectID,
		Title:     req.Title,
		Status:    req.Status,
		DueTime:   req.DueTime,
	}
	if err := h.svc.Create(ctx, &t); err != nil {
		return nil, err
	}
	return t, nil
}

func (h *TaskHandler) UpdateTaskStatus(ctx context.Context, payload []byte) (interface{}, error) {
	req := UpdateTaskStatusReq{}
	if err := dispatch.Bind(payload, &req); err != nil {
		return nil, err
	}
	if err := h.svc.UpdateStatus(ctx, req.ID, req.Status); err != nil {
		return nil, err
	}
	return SuccessRes{Success: true}, nil
}

func (h *TaskHandler) DeleteTask(ctx context.Context, payload []byte) (interface{}, error) {
	req := TaskIDReq{}
	if err := dispatch.Bind(payload, &req); err != nil {
		return nil, err
	}
	if err := h.svc.Delete(ctx, req.ID); err != nil {
		return nil, err
	}
	return SuccessRes{Success: true}, nil
}

func (h *TaskHandler) GetChecklist(ctx context.Context, payload []byte) (interface{}, error) {
	req := GetChecklistReq{}
	if err := dispatch.Bind(payload, &req); err != nil {
		return nil, err
	}
	return h.svc.ListItems(ctx, req.TaskID)
}

func (h *TaskHandler) CreateChecklistItem(ctx context.Context, payload []byte) (interface{}, error) {
	req := CreateChecklistItemReq{}
	if err := dispatch.Bind(payload, &req); err != nil {
		return nil, err
	}
	item := model.ChecklistItem{
		TaskID: req.TaskID,
		Text:   req.Text,
	}
	if err := h.svc.CreateItem(ctx, &item); err != nil {
		return nil, err
	}
	return item, nil
}

func (h *TaskHandler) ToggleChecklistItem(ctx context.Context, payload []byte) (interface{}, error) {
	req := ToggleChecklistItemReq{}
	if err := dispatch.Bind(payload, &req); err != nil {
		return nil, err
	}
	if err := h.svc.SetItemCompleted(ctx, req.ID, req.IsCompleted); err != nil {
		return nil, err
	}
	return SuccessRes{Success: true}, nil
}
