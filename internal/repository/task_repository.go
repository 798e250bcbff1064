package repository

import (
	"context"

	"github.com/yukikurage/task-tracker/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create inserts a new task
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Omit("User", "Team").Create(task).Error
}

// List returns task rows in [filter.From, filter.To] joined with user and team names.
// Every filter value is bound as a parameter.
func (r *GormTaskRepository) List(ctx context.Context, filter TaskFilter) ([]TaskRow, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Select(`tasks.id, tasks.task_name, tasks.time_frame, tasks.date,
			COALESCE(users.user_name, '') AS user_name,
			COALESCE(teams.team_name, '') AS team_name`).
		Joins("LEFT JOIN users ON users.id = tasks.user_id").
		Joins("LEFT JOIN teams ON teams.id = tasks.team_id").
		Where("tasks.date BETWEEN ? AND ?", filter.From, filter.To)

	// Apply filters
	if filter.UserID != nil {
		query = query.Where("tasks.user_id = ?", *filter.UserID)
	}
	if filter.UserName != nil {
		query = query.Where("users.user_name = ?", *filter.UserName)
	}

	rows := []TaskRow{}
	if err := query.Order("tasks.date ASC, tasks.id ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
