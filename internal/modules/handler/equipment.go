package handler

import (
	"context"
	"time"

	"github.com/studiodesk-io/studiodesk/internal/dispatch"
	"github.com/studiodesk-io/studiodesk/internal/modules/model"
	"github.com/studiodesk-io/studiodesk/internal/modules/service"
)

type EquipmentHandler struct {
	svc service.EquipmentService
}

func NewEquipmentHandler(s service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{svc: s}
}

func (h *EquipmentHandler) Register(d *dispatch.Dispatcher) {
	d.Register(dispatch.OpGetEquipment, h.GetEquipment)
	d.Register(dispatch.OpCreateEquipment, h.CreateEquipment)
	d.Register(dispatch.OpCheckoutEquipment, h.CheckoutEquipment)
	d.Register(dispatch.OpCheckinEquipment, h.CheckinEquipment)
	d.Register(dispatch.OpGetEquipmentStatusCounts, h.GetStatusCounts)
}

type CreateEquipmentReq struct {
	Name           string     `json:"name"`
	SerialNumber   string     `json:"serial_number"`
	PurchaseDate   *time.Time `json:"purchase_date"`
	Condition      string     `json:"condition"`
	ShutterCount   int        `json:"shutter_count"`
	MaxShutterLife int        `json:"max_shutter_life"`
	Status         string     `json:"status"`
}

type CheckoutEquipmentReq struct {
	ID       uint `json:"id"`
	MemberID uint `json:"member_id"`
}

type EquipmentIDReq struct {
	ID uint `json:"id"`
}

func (h *EquipmentHandler) GetEquipment(ctx context.Context, payload []byte) (interface{}, error) {
	return h.svc.List(ctx)
}

func (h *EquipmentHandler) CreateEquipment(ctx context.Context, payload []byte) (interface{}, error) {
	req := CreateEquipmentReq{}
	if err := dispatch.Bind(payload, &req); err != nil {
		return nil, err
	}
	e := model.Equipment{
		Name:           req.Name,
		SerialNumber:   req.SerialNumber,
		PurchaseDate:   req.PurchaseDate,
		Condition:      req.Condition,
		ShutterCount:   req.ShutterCount,
		MaxShutterLife: req.MaxShutterLife,
		Status:         req.Status,
	}
	if err := h.svc.Create(ctx, &e); err != nil {
		return nil, err
	}
	return e, nil
}

func (h *EquipmentHandler) CheckoutEquipment(ctx context.Context, payload []byte) (interface{}, error) {
	req := CheckoutEquipmentReq{}
	if err := dispatch.Bind(payload, &req); err != nil {
		return nil, err
	}
	if err := h.svc.Checkout(ctx, req.ID, req.MemberID); err != nil {
		return nil, err
	}
	return SuccessRes{Success: true}, nil
}

func (h *EquipmentHandler) CheckinEquipment(ctx context.Context, payload []byte) (interface{}, error) {
	req := EquipmentIDReq{}
	if err := dispatch.Bind(payload, &req); err != nil {
		return nil, err
	}
	if err := h.svc.Checkin(ctx, req.ID); err != nil {
		return nil, err
	}
	return SuccessRes{Success: true}, nil
}

func (h *EquipmentHandler) GetStatusCounts(ctx context.Context, payload []byte) (interface{}, error) {
	return h.svc.StatusCounts(ctx)
}
