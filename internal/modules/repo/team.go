package repo

import (
	"context"

	"github.com/studiodesk-io/studiodesk/internal/modules/model"
	"gorm.io/gorm"
)

type TeamRepo interface {
	Create(ctx context.Context, m *model.TeamMember) error
	List(ctx context.Context) ([]model.TeamMember, error)
}

type teamRepo struct{ db *gorm.DB }

func NewTeamRepo(db *gorm.DB) TeamRepo {
	return &teamRepo{db: db}
}

func (r *teamRepo) Create(ctx context.Context, m *model.TeamMember) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *teamRepo) List(ctx context.Context) ([]model.TeamMember, error) {
	var items []model.TeamMember
	return items, r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&items).Error
}
