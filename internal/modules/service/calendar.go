package service

import (
	"context"
	"errors"

	"github.com/studiodesk-io/studiodesk/internal/modules/model"
	"github.com/studiodesk-io/studiodesk/internal/modules/repo"
)

type CalendarService interface {
	Create(ctx context.Context, e *model.CalendarEvent) error
	List(ctx context.Context) ([]model.CalendarEvent, error)
}

type calendarService struct{ r repo.CalendarRepo }

func NewCalendarService(r repo.CalendarRepo) CalendarService {
	return &calendarService{r: r}
}

func (s *calendarService) Create(ctx context.Context, e *model.CalendarEvent) error {
	if e.Title == "" {
		return errors.New("event title is empty")
	}
	if e.Start.IsZero() {
		return errors.New("event start is empty")
	}
	return s.r.Create(ctx, e)
}

func (s *calendarService) List(ctx context.Context) ([]model.CalendarEvent, error) {
	return s.r.List(ctx)
}
