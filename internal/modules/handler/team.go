package handler

import (
	"context"

	"github.com/studiodesk-io/studiodesk/internal/dispatch"
	"github.com/studiodesk-io/studiodesk/internal/modules/model"
	"github.com/studiodesk-io/studiodesk/internal/modules/service"
	"gorm.io/datatypes"
)

type TeamHandler struct {
	svc service.TeamService
}

func NewTeamHandler(s service.TeamService) *TeamHandler {
	return &TeamHandler{svc: s}
}

func (h *TeamHandler) Register(d *dispatch.Dispatcher) {
	d.Register(dispatch.OpGetTeamMembers, h.GetTeamMembers)
	d.Register(dispatch.OpCreateTeamMember, h.CreateTeamMember)
}

type CreateTeamMemberReq struct {
	Name   string   `json:"name"`
	Role   string   `json:"role"`
	Phone  string   `json:"phone"`
	Skills []string `json:"skills"`
	Rating int      `json:"rating"`
}

func (h *TeamHandler) GetTeamMembers(ctx context.Context, payload []byte) (interface{}, error) {
	return h.svc.List(ctx)
}

func (h *TeamHandler) CreateTeamMember(ctx context.Context, payload []byte) (interface{}, error) {
	req := CreateTeamMemberReq{}
	if err := dispatch.Bind(payload, &req); err != nil {
		return nil, err
	}
	m := model.TeamMember{
		Name:   req.Name,
		Role:   req.Role,
		Phone:  req.Phone,
		Skills: datatypes.NewJSONSlice(req.Skills),
		Rating: req.Rating,
	}
	if err := h.svc.Create(ctx, &m); err != nil {
		return nil, err
	}
	return m, nil
}
