package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/task-tracker/internal/models"
	"github.com/yukikurage/task-tracker/internal/repository"
	"github.com/yukikurage/task-tracker/internal/timeframe"
)

var (
	ErrUnknownUser = errors.New("no user with this user name")
	ErrUnknownTeam = errors.New("no team with this team name")
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
	teamRepo repository.TeamRepository
	now      func() time.Time
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository, teamRepo repository.TeamRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
		teamRepo: teamRepo,
		now:      time.Now,
	}
}

// SetClock replaces the clock used for default date ranges (used for testing)
func (s *TaskService) SetClock(now func() time.Time) {
	s.now = now
}

// CreateTaskInput represents the form fields of a new task
type CreateTaskInput struct {
	TaskName  string
	TimeFrame string
	Date      time.Time
	UserName  string
	TeamName  string
}

// ListTasksInput represents the view data filters. Nil dates fall back to
// the current calendar year.
type ListTasksInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	UserName  string
}

// TaskListing is the view data result. IncludeUser is false for employees,
// whose rows are all their own.
type TaskListing struct {
	From        time.Time
	To          time.Time
	IncludeUser bool
	Rows        []repository.TaskRow
}

// CreateTask resolves the user and team names against fresh lookup tables
// and inserts the task
func (s *TaskService) CreateTask(ctx context.Context, actor Actor, input CreateTaskInput) (*models.Task, error) {
	if err := authorize(actor, OpCreateTask); err != nil {
		return nil, err
	}

	taskName := strings.TrimSpace(input.TaskName)
	if taskName == "" {
		return nil, invalid("task_name", ErrFieldRequired)
	}
	seconds, err := timeframe.Parse(input.TimeFrame)
	if err != nil {
		return nil, invalid("time_frame", err)
	}
	if input.Date.IsZero() {
		return nil, invalid("date", ErrFieldRequired)
	}

	users, err := s.userRepo.ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	userID, ok := lookup(users, strings.TrimSpace(input.UserName))
	if !ok {
		return nil, invalid("user_name", ErrUnknownUser)
	}

	teams, err := s.teamRepo.ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}
	teamID, ok := lookup(teams, strings.TrimSpace(input.TeamName))
	if !ok {
		return nil, invalid("team_name", ErrUnknownTeam)
	}

	task := &models.Task{
		TaskName:  taskName,
		TimeFrame: seconds,
		Date:      truncateDay(input.Date),
		UserID:    userID,
		TeamID:    teamID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, writeError("create task", err)
	}

	return task, nil
}

// ListTasks returns the tasks visible to actor within the date range.
// Admins and managers see every task and may filter by user name;
// employees only see their own.
func (s *TaskService) ListTasks(ctx context.Context, actor Actor, input ListTasksInput) (*TaskListing, error) {
	if err := authorize(actor, OpViewData); err != nil {
		return nil, err
	}

	from, to := s.DefaultRange()
	if input.StartDate != nil {
		from = truncateDay(*input.StartDate)
	}
	if input.EndDate != nil {
		to = endOfDay(*input.EndDate)
	}
	if from.After(to) {
		return nil, invalid("start_date", ErrInvalidDateRange)
	}

	filter := repository.TaskFilter{From: from, To: to}
	includeUser := true

	switch actor.Role {
	case models.RoleEmployee:
		userID := actor.UserID
		filter.UserID = &userID
		includeUser = false
	default:
		if name := strings.TrimSpace(input.UserName); name != "" {
			filter.UserName = &name
		}
	}

	rows, err := s.taskRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return &TaskListing{
		From:        from,
		To:          to,
		IncludeUser: includeUser,
		Rows:        rows,
	}, nil
}

// DefaultRange spans January 1 00:00:00 to December 31 23:59:59 of the current year.
func (s *TaskService) DefaultRange() (time.Time, time.Time) {
	year := s.now().UTC().Year()
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
}

func lookup(refs []repository.NameRef, name string) (uint64, bool) {
	if name == "" {
		return 0, false
	}
	for _, ref := range refs {
		if ref.Name == name {
			return ref.ID, true
		}
	}
	return 0, false
}

// truncateDay keeps the calendar date of t at UTC midnight.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, time.UTC)
}
