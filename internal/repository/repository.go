package repository

import (
	"context"
	"time"

	"github.com/yukikurage/task-tracker/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// FindByEmail finds a user by exact email
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// ListNames returns the user_name -> id lookup used by the task form
	ListNames(ctx context.Context) ([]NameRef, error)

	// CountByRole counts users whose role equals role exactly
	CountByRole(ctx context.Context, role models.Role) (int64, error)
}

// TeamRepository defines the interface for team data access
type TeamRepository interface {
	// Create inserts a new team
	Create(ctx context.Context, team *models.Team) error

	// ListNames returns the team_name -> id lookup used by the task form
	ListNames(ctx context.Context) ([]NameRef, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create inserts a new task
	Create(ctx context.Context, task *models.Task) error

	// List returns task rows joined with user and team names
	List(ctx context.Context, filter TaskFilter) ([]TaskRow, error)
}

// ReportRepository runs the dashboard aggregates
type ReportRepository interface {
	// HoursByUser sums worked seconds per user_name
	HoursByUser(ctx context.Context) ([]HoursByLabel, error)

	// HoursByTeam sums worked seconds per team_name
	HoursByTeam(ctx context.Context) ([]HoursByLabel, error)

	// HoursByDate sums worked seconds per date for one user, ascending by date
	HoursByDate(ctx context.Context, userID uint64) ([]HoursByDate, error)
}

// NameRef pairs a display name with its row id
type NameRef struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	From     time.Time
	To       time.Time
	UserID   *uint64
	UserName *string
}

// TaskRow is one row of the view data table
type TaskRow struct {
	ID        uint64
	TaskName  string
	TimeFrame int64
	Date      time.Time
	UserName  string
	TeamName  string
}

// HoursByLabel is an aggregate of worked seconds keyed by a name
type HoursByLabel struct {
	Label   string
	Seconds int64
}

// HoursByDate is an aggregate of worked seconds keyed by a calendar date
type HoursByDate struct {
	Date    time.Time
	Seconds int64
}
