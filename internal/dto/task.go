package dto

import (
	"time"

	"github.com/yukikurage/task-tracker/internal/constants"
	"github.com/yukikurage/task-tracker/internal/models"
	"github.com/yukikurage/task-tracker/internal/services"
	"github.com/yukikurage/task-tracker/internal/timeframe"
)

// TaskDTO represents a created task in API responses
type TaskDTO struct {
	ID        uint64    `json:"id"`
	TaskName  string    `json:"task_name"`
	TimeFrame string    `json:"time_frame"`
	Date      string    `json:"date"`
	UserID    uint64    `json:"user_id"`
	TeamID    uint64    `json:"team_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TaskRowDTO represents one row of the view data table.
// UserName is omitted for employees.
type TaskRowDTO struct {
	TaskName  string `json:"task_name"`
	TimeFrame string `json:"time_frame"`
	Date      string `json:"date"`
	TeamName  string `json:"team_name"`
	UserName  string `json:"user_name,omitempty"`
}

// TaskListResponse represents the view data table and the range it covers
type TaskListResponse struct {
	StartDate string       `json:"start_date"`
	EndDate   string       `json:"end_date"`
	Tasks     []TaskRowDTO `json:"tasks"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:        task.ID,
		TaskName:  task.TaskName,
		TimeFrame: timeframe.Format(task.TimeFrame),
		Date:      task.Date.Format(constants.DateLayout),
		UserID:    task.UserID,
		TeamID:    task.TeamID,
		CreatedAt: task.CreatedAt,
	}
}

// ToTaskListResponse converts a listing to TaskListResponse
func ToTaskListResponse(listing services.TaskListing) TaskListResponse {
	items := make([]TaskRowDTO, len(listing.Rows))
	for i, row := range listing.Rows {
		items[i] = TaskRowDTO{
			TaskName:  row.TaskName,
			TimeFrame: timeframe.Format(row.TimeFrame),
			Date:      row.Date.Format(constants.DateLayout),
			TeamName:  row.TeamName,
		}
		if listing.IncludeUser {
			items[i].UserName = row.UserName
		}
	}

	return TaskListResponse{
		StartDate: listing.From.Format(constants.DateLayout),
		EndDate:   listing.To.Format(constants.DateLayout),
		Tasks:     items,
	}
}
