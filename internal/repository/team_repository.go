package repository

import (
	"context"

	"github.com/yukikurage/task-tracker/internal/models"
	"gorm.io/gorm"
)

// GormTeamRepository is a GORM implementation of TeamRepository
type GormTeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &GormTeamRepository{db: db}
}

// Create inserts a new team
func (r *GormTeamRepository) Create(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

// ListNames returns every team's id and team_name
func (r *GormTeamRepository) ListNames(ctx context.Context) ([]NameRef, error) {
	var refs []NameRef
	err := r.db.WithContext(ctx).
		Model(&models.Team{}).
		Select("id, team_name AS name").
		Order("team_name").
		Scan(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}
