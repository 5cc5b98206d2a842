package handler

import (
	"context"
	"time"

	"github.com/studiodesk-io/studiodesk/internal/dispatch"
	"github.com/studiodesk-io/studiodesk/internal/modules/model"
	"github.com/studiodesk-io/studiodesk/internal/modules/service"
)

type CalendarHandler struct {
	svc service.CalendarService
}

func NewCalendarHandler(s service.CalendarService) *CalendarHandler {
	return &CalendarHandler{svc: s}
}

func (h *CalendarHandler) Register(d *dispatch.Dispatcher) {
	d.Register(dispatch.OpGetCalendarEvents, h.GetEvents)
	d.Register(dispatch.OpCreateCalendarEvent, h.CreateEvent)
}

type CreateCalendarEventReq struct {
	ProjectID *uint      `json:"project_id"`
	Title     string     `json:"title"`
	Start     time.Time  `json:"start"`
	End       *time.Time `json:"end"`
	Type      string     `json:"type"`
}

func (h *CalendarHandler) GetEvents(ctx context.Context, payload []byte) (interface{}, error) {
	return h.svc.List(ctx)
}

func (h *CalendarHandler) CreateEvent(ctx context.Context, payload []byte) (interface{}, error) {
	req := CreateCalendarEventReq{}
	if err := dispatch.Bind(payload, &req); err != nil {
		return nil, err
	}
	e := model.CalendarEvent{
		ProjectID: req.ProjectID,
		Title:     req.Title,
		Start:     req.Start,
		End:       req.End,
		Type:      req.Type,
	}
	if err := h.svc.Create(ctx, &e); err != nil {
		return nil, err
	}
	return e, nil
}
