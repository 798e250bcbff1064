package services

import (
	"context"
	"fmt"

	"github.com/yukikurage/task-tracker/internal/constants"
	"github.com/yukikurage/task-tracker/internal/models"
	"github.com/yukikurage/task-tracker/internal/repository"
	"github.com/yukikurage/task-tracker/internal/timeframe"
)

type ChartKind string

const (
	ChartBar  ChartKind = "bar"
	ChartLine ChartKind = "line"
)

// Point is one bar or one vertex of a chart.
type Point struct {
	Label string
	Hours float64
}

// Chart describes how a dashboard series is drawn. NoData is set instead of
// an empty series when the aggregate has no rows.
type Chart struct {
	Kind   ChartKind
	Title  string
	XLabel string
	YLabel string
	Points []Point
	NoData bool
}

// AdminDashboard is the admin view: employee head count and hours per employee.
type AdminDashboard struct {
	TotalEmployees int64
	Chart          Chart
}

// DashboardService computes the read-only reporting views.
type DashboardService struct {
	userRepo   repository.UserRepository
	reportRepo repository.ReportRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(userRepo repository.UserRepository, reportRepo repository.ReportRepository) *DashboardService {
	return &DashboardService{
		userRepo:   userRepo,
		reportRepo: reportRepo,
	}
}

// Admin returns the employee count and the total hours per employee.
func (s *DashboardService) Admin(ctx context.Context, actor Actor) (*AdminDashboard, error) {
	if err := authorize(actor, OpDashboardAdmin); err != nil {
		return nil, err
	}

	total, err := s.userRepo.CountByRole(ctx, models.RoleEmployee)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}

	rows, err := s.reportRepo.HoursByUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum hours per employee: %w", err)
	}

	return &AdminDashboard{
		TotalEmployees: total,
		Chart:          labelChart(ChartBar, "Total Hours Worked per Employee", "Employee", rows),
	}, nil
}

// Employee returns the actor's own hours per date, oldest first.
func (s *DashboardService) Employee(ctx context.Context, actor Actor) (*Chart, error) {
	if err := authorize(actor, OpDashboardEmployee); err != nil {
		return nil, err
	}

	rows, err := s.reportRepo.HoursByDate(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum hours per date: %w", err)
	}

	chart := Chart{
		Kind:   ChartLine,
		Title:  "Your Working Hours Over Time",
		XLabel: "Date",
		YLabel: "Hours Worked",
		NoData: len(rows) == 0,
	}
	for _, row := range rows {
		chart.Points = append(chart.Points, Point{
			Label: row.Date.Format(constants.DateLayout),
			Hours: timeframe.Hours(row.Seconds),
		})
	}

	return &chart, nil
}

// Manager returns the total hours per team across all users.
func (s *DashboardService) Manager(ctx context.Context, actor Actor) (*Chart, error) {
	if err := authorize(actor, OpDashboardManager); err != nil {
		return nil, err
	}

	rows, err := s.reportRepo.HoursByTeam(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum hours per team: %w", err)
	}

	chart := labelChart(ChartBar, "Total Hours Worked per Team", "Team", rows)
	return &chart, nil
}

func labelChart(kind ChartKind, title, xLabel string, rows []repository.HoursByLabel) Chart {
	chart := Chart{
		Kind:   kind,
		Title:  title,
		XLabel: xLabel,
		YLabel: "Hours Worked",
		NoData: len(rows) == 0,
	}
	for _, row := range rows {
		chart.Points = append(chart.Points, Point{
			Label: row.Label,
			Hours: timeframe.Hours(row.Seconds),
		})
	}
	return chart
}
