package repository

import (
	"context"

	"github.com/yukikurage/task-tracker/internal/models"
	"gorm.io/gorm"
)

// GormReportRepository is a GORM implementation of ReportRepository
type GormReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &GormReportRepository{db: db}
}

// HoursByUser sums worked seconds per user_name across all tasks
func (r *GormReportRepository) HoursByUser(ctx context.Context) ([]HoursByLabel, error) {
	rows := []HoursByLabel{}
	err := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Select("users.user_name AS label, SUM(tasks.time_frame) AS seconds").
		Joins("JOIN users ON users.id = tasks.user_id").
		Group("users.user_name").
		Order("users.user_name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// HoursByTeam sums worked seconds per team_name across all tasks
func (r *GormReportRepository) HoursByTeam(ctx context.Context) ([]HoursByLabel, error) {
	rows := []HoursByLabel{}
	err := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Select("teams.team_name AS label, SUM(tasks.time_frame) AS seconds").
		Joins("JOIN teams ON teams.id = tasks.team_id").
		Group("teams.team_name").
		Order("teams.team_name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// HoursByDate sums worked seconds per calendar date for one user
func (r *GormReportRepository) HoursByDate(ctx context.Context, userID uint64) ([]HoursByDate, error) {
	rows := []HoursByDate{}
	err := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Select("tasks.date AS date, SUM(tasks.time_frame) AS seconds").
		Where("tasks.user_id = ?", userID).
		Group("tasks.date").
		Order("tasks.date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
