package handler

import (
	"context"
	"time"

	"github.com/studiodesk-io/studiodesk/internal/dispatch"
	"github.com/studiodesk-io/studiodesk/internal/modules/model"
	"github.com/studiodesk-io/studiodesk/internal/modules/service"
	"gorm.io/datatypes"
)

type ClientHandler struct {
	svc service.ClientService
}

func NewClientHandler(s service.ClientService) *ClientHandler {
	return &ClientHandler{svc: s}
}

func (h *ClientHandler) Register(d *dispatch.Dispatcher) {
	d.Register(dispatch.OpGetClients, h.GetClients)
	d.Register(dispatch.OpCreateClient, h.CreateClient)
	d.Register(dispatch.OpDeleteClient, h.DeleteClient)
	d.Register(dispatch.OpGetClientFinancials, h.GetFinancials)
	d.Register(dispatch.OpGenerateContract, h.GenerateContract)
}

type CreateClientReq struct {
	Name        string                 `json:"name"`
	Phone       string                 `json:"phone"`
	Email       string                 `json:"email"`
	SocialLinks map[string]interface{} `json:"social_links"`
	Relatives   []model.Relative       `json:"relatives"`
	BirthDate   *time.Time             `json:"birth_date"`
	Type        string                 `json:"type"`
}

type ClientIDReq struct {
	ID uint `json:"id"`
}

type FinancialsReq struct {
	ClientID uint `json:"client_id"`
}

type FinancialsRes struct {
	Total float64 `json:"total"`
}

func (h *ClientHandler) GetClients(ctx context.Context, payload []byte) (interface{}, error) {
	return h.svc.List(ctx)
}

func (h *ClientHandler) CreateClient(ctx context.Context, payload []byte) (interface{}, error) {
	req := CreateClientReq{}
	if err := dispatch.Bind(payload, &req); err != nil {
		return nil, err
	}

	clientType := req.Type
	if clientType == "" {
		clientType = model.ClientTypeLead
	}
	c := model.Client{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		SocialLinks: datatypes.JSONMap(req.SocialLinks),
		Relatives:   datatypes.NewJSONSlice(req.Relatives),
		BirthDate:   req.BirthDate,
		Type:        clientType,
	}
	if err := h.svc.Create(ctx, &c); err != nil {
		return nil, err
	}
	return c, nil
}

func (h *ClientHandler) DeleteClient(ctx context.Context, payload []byte) (interface{}, error) {
	req := ClientIDReq{}
	if err := dispatch.Bind(payload, &req); err != nil {
		return nil, err
	}
	if err := h.svc.Delete(ctx, req.ID); err != nil {
		return nil, err
	}
	return SuccessRes{Success: true}, nil
}

func (h *ClientHandler) GetFinancials(ctx context.Context, payload []byte) (interface{}, error) {
	req := FinancialsReq{}
	if err := dispatch.Bind(payload, &req); err != nil {
		return nil, err
	}
	total, err := h.svc.Financials(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	return FinancialsRes{Total: total}, nil
}

func (h *ClientHandler) GenerateContract(ctx context.Context, payload []byte) (interface{}, error) {
	c := model.Client{}
	if err := dispatch.Bind(payload, &c); err != nil {
		return nil, err
	}
	return h.svc.GenerateContract(ctx, &c)
}
