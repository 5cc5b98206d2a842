package handler

import (
	"context"
	"time"

	"github.com/studiodesk-io/studiodesk/internal/dispatch"
	"github.com/studiodesk-io/studiodesk/internal/modules/model"
	"github.com/studiodesk-io/studiodesk/internal/modules/service"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

func (h *ProjectHandler) Register(d *dispatch.Dispatcher) {
	d.Register(dispatch.OpGetProjects, h.GetProjects)
	d.Register(dispatch.OpGetProject, h.GetProject)
	d.Register(dispatch.OpCreateProject, h.CreateProject)
	d.Register(dispatch.OpDeleteProject, h.DeleteProject)
}

type CreateProjectReq struct {
	ClientID   *uint      `json:"client_id"`
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	Date       *time.Time `json:"date"`
	Status     string     `json:"status"`
	GoldenHour string     `json:"golden_hour"`
	Notes      string     `json:"notes"`
}

type ProjectIDReq struct {
	ID uint `json:"id"`
}

func (h *ProjectHandler) GetProjects(ctx context.Context, payload []byte) (interface{}, error) {
	return h.svc.List(ctx)
}

// GetProject resolves to null, not an error, for a missing id.
func (h *ProjectHandler) GetProject(ctx context.Context, payload []byte) (interface{}, error) {
	req := ProjectIDReq{}
	if err := dispatch.Bind(payload, &req); err != nil {
		return nil, err
	}
	return h.svc.GetByID(ctx, req.ID)
}

func (h *ProjectHandler) CreateProject(ctx context.Context, payload []byte) (interface{}, error) {
	req := CreateProjectReq{}
	if err := dispatch.Bind(payload, &req); err != nil {
		return nil, err
	}
	p := model.Project{
		ClientID:   req.ClientID,
		Name:       req.Name,
		Type:       req.Type,
		Date:       req.Date,
		Status:     req.Status,
		GoldenHour: req.GoldenHour,
		Notes:      req.Notes,
	}
	if err := h.svc.Create(ctx, &p); err != nil {
		return nil, err
	}
	return p, nil
}

func (h *ProjectHandler) DeleteProject(ctx context.Context, payload []byte) (interface{}, error) {
	req := ProjectIDReq{}
	if err := dispatch.Bind(payload, &req); err != nil {
		return nil, err
	}
	if err := h.svc.Delete(ctx, req.ID); err != nil {
		return nil, err
	}
	return SuccessRes{Success: true}, nil
}
