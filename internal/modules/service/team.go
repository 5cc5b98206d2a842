package service

import (
	"context"
	"errors"

	"github.com/studiodesk-io/studiodesk/internal/modules/model"
	"github.com/studiodesk-io/studiodesk/internal/modules/repo"
)

type TeamService interface {
	Create(ctx context.Context, m *model.TeamMember) error
	List(ctx context.Context) ([]model.TeamMember, error)
}

type teamService struct{ r repo.TeamRepo }

func NewTeamService(r repo.TeamRepo) TeamService {
	return &teamService{r: r}
}

func (s *teamService) Create(ctx context.Context, m *model.TeamMember) error {
	if m.Name == "" {
		return errors.New("team member name is empty")
	}
	return s.r.Create(ctx, m)
}

func (s *teamService) List(ctx context.Context) ([]model.TeamMember, error) {
	return s.r.List(ctx)
}
