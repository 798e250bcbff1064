package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yukikurage/task-tracker/internal/models"
	"github.com/yukikurage/task-tracker/internal/repository"
)

type userRepoMock struct{ mock.Mock }

var _ repository.UserRepository = (*userRepoMock)(nil)

func (m *userRepoMock) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *userRepoMock) FindByID(ctx context.Context, id uint64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *userRepoMock) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *userRepoMock) ListNames(ctx context.Context) ([]repository.NameRef, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.NameRef), args.Error(1)
}

func (m *userRepoMock) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

type teamRepoMock struct{ mock.Mock }

var _ repository.TeamRepository = (*teamRepoMock)(nil)

func (m *teamRepoMock) Create(ctx context.Context, team *models.Team) error {
	return m.Called(ctx, team).Error(0)
}

func (m *teamRepoMock) ListNames(ctx context.Context) ([]repository.NameRef, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.NameRef), args.Error(1)
}

type taskRepoMock struct{ mock.Mock }

var _ repository.TaskRepository = (*taskRepoMock)(nil)

func (m *taskRepoMock) Create(ctx context.Context, task *models.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *taskRepoMock) List(ctx context.Context, filter repository.TaskFilter) ([]repository.TaskRow, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.TaskRow), args.Error(1)
}

type reportRepoMock struct{ mock.Mock }

var _ repository.ReportRepository = (*reportRepoMock)(nil)

func (m *reportRepoMock) HoursByUser(ctx context.Context) ([]repository.HoursByLabel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.HoursByLabel), args.Error(1)
}

func (m *reportRepoMock) HoursByTeam(ctx context.Context) ([]repository.HoursByLabel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.HoursByLabel), args.Error(1)
}

func (m *reportRepoMock) HoursByDate(ctx context.Context, userID uint64) ([]repository.HoursByDate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.HoursByDate), args.Error(1)
}
