package handler

import (
	"context"
	"time"

	"github.com/studiodesk-io/studiodesk/internal/dispatch"
	"github.com/studiodesk-io/studiodesk/internal/modules/model"
	"github.com/studiodesk-io/studiodesk/internal/modules/service"
)

type FinanceHandler struct {
	svc service.FinanceService
}

func NewFinanceHandler(s service.FinanceService) *FinanceHandler {
	return &FinanceHandler{svc: s}
}

func (h *FinanceHandler) Register(d *dispatch.Dispatcher) {
	d.Register(dispatch.OpGetTransactions, h.GetTransactions)
	d.Register(dispatch.OpCreateTransaction, h.CreateTransaction)
}

type CreateTransactionReq struct {
	ProjectID   *uint      `json:"project_id"`
	Type        string     `json:"type"`
	Amount      float64    `json:"amount"`
	Category    string     `json:"category"`
	Date        *time.Time `json:"date"`
	Description string     `json:"description"`
}

func (h *FinanceHandler) GetTransactions(ctx context.Context, payload []byte) (interface{}, error) {
	return h.svc.List(ctx)
}

func (h *FinanceHandler) CreateTransaction(ctx context.Context, payload []byte) (interface{}, error) {
	req := CreateTransactionReq{}
	if err := dispatch.Bind(payload, &req); err != nil {
		return nil, err
	}
	t := model.Transaction{
		ProjectID:   req.ProjectID,
		Type:        req.Type,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
	}
	if req.Date != nil {
		t.Date = *req.Date
	}
	if err := h.svc.Create(ctx, &t); err != nil {
		return nil, err
	}
	return t, nil
}
