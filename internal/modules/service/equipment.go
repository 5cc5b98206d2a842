package service

import (
	"context"
	"errors"
	"time"

	"github.com/studiodesk-io/studiodesk/internal/modules/model"
	"github.com/studiodesk-io/studiodesk/internal/modules/repo"
)

type EquipmentService interface {
	Create(ctx context.Context, e *model.Equipment) error
	List(ctx context.Context) ([]model.Equipment, error)
	Checkout(ctx context.Context, id uint, memberID uint) error
	Checkin(ctx context.Context, id uint) error
	StatusCounts(ctx context.Context) (map[string]int64, error)
}

type equipmentService struct{ r repo.EquipmentRepo }

func NewEquipmentService(r repo.EquipmentRepo) EquipmentService {
	return &equipmentService{r: r}
}

func (s *equipmentService) Create(ctx context.Context, e *model.Equipment) error {
	if e.Name == "" {
		return errors.New("equipment name is empty")
	}
	if e.Status == "" {
		e.Status = model.EquipmentStatusAvailable
	}
	return s.r.Create(ctx, e)
}

func (s *equipmentService) List(ctx context.Context) ([]model.Equipment, error) {
	return s.r.List(ctx)
}

func (s *equipmentService) Checkout(ctx context.Context, id uint, memberID uint) error {
	if id == 0 {
		return errors.New("equipment id is empty")
	}
	if memberID == 0 {
		return errors.New("team member id is empty")
	}
	return s.r.Checkout(ctx, id, memberID, time.Now())
}

func (s *equipmentService) Checkin(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("equipment id is empty")
	}
	return s.r.Checkin(ctx, id)
}

func (s *equipmentService) StatusCounts(ctx context.Context) (map[string]int64, error) {
	return s.r.StatusCounts(ctx)
}
