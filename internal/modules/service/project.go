package service

import (
	"context"
	"errors"

	"github.com/studiodesk-io/studiodesk/internal/modules/model"
	"github.com/studiodesk-io/studiodesk/internal/modules/repo"
)

type ProjectService interface {
	Create(ctx context.Context, p *model.Project) error
	List(ctx context.Context) ([]model.Project, error)
	// GetByID returns (nil, nil) when the project does not exist.
	GetByID(ctx context.Context, id uint) (*model.Project, error)
	Delete(ctx context.Context, id uint) error
}

type projectService struct{ r repo.ProjectRepo }

func NewProjectService(r repo.ProjectRepo) ProjectService {
	return &projectService{r: r}
}

func (s *projectService) Create(ctx context.Context, p *model.Project) error {
	if p.Name == "" {
		return errors.New("project name is empty")
	}
	if p.Status == "" {
		p.Status = model.ProjectStatusNew
	}
	return s.r.Create(ctx, p)
}

func (s *projectService) List(ctx context.Context) ([]model.Project, error) {
	return s.r.List(ctx)
}

func (s *projectService) GetByID(ctx context.Context, id uint) (*model.Project, error) {
	if id == 0 {
		return nil, errors.New("project id is empty")
	}
	return s.r.GetByID(ctx, id)
}

func (s *projectService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("project id is empty")
	}
	return s.r.Delete(ctx, id)
}
