package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yukikurage/task-tracker/internal/models"
	"github.com/yukikurage/task-tracker/internal/repository"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ServiceTestSuite wires the services to real repositories on in-memory SQLite
type ServiceTestSuite struct {
	suite.Suite
	db        *gorm.DB
	ctx       context.Context
	auth      *AuthService
	users     *UserService
	teams     *TeamService
	tasks     *TaskService
	dashboard *DashboardService
	admin     Actor
}

func (suite *ServiceTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)

	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	suite.Require().NoError(suite.db.AutoMigrate(&models.User{}, &models.Team{}, &models.Task{}))

	userRepo := repository.NewUserRepository(suite.db)
	teamRepo := repository.NewTeamRepository(suite.db)
	taskRepo := repository.NewTaskRepository(suite.db)
	reportRepo := repository.NewReportRepository(suite.db)

	suite.ctx = context.Background()
	suite.auth = NewAuthService(userRepo)
	suite.users = NewUserService(userRepo)
	suite.teams = NewTeamService(teamRepo)
	suite.tasks = NewTaskService(taskRepo, userRepo, teamRepo)
	suite.dashboard = NewDashboardService(userRepo, reportRepo)

	created, err := suite.users.EnsureAdmin(suite.ctx, CreateUserInput{
		UserName: "boss",
		Name:     "The Boss",
		Email:    "boss@example.com",
		Password: "bosspassword",
	})
	suite.Require().NoError(err)
	suite.Require().True(created)

	boss, err := suite.auth.Authenticate(suite.ctx, "boss@example.com", "bosspassword")
	suite.Require().NoError(err)
	suite.admin = Actor{UserID: boss.ID, UserName: boss.UserName, Role: boss.Role}
}

func (suite *ServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *ServiceTestSuite) createUser(userName string, role models.Role) Actor {
	user, err := suite.users.CreateUser(suite.ctx, suite.admin, CreateUserInput{
		UserName: userName,
		Name:     userName + " Full",
		Email:    userName + "@example.com",
		Password: "password-" + userName,
		Role:     role,
	})
	suite.Require().NoError(err)
	return Actor{UserID: user.ID, UserName: user.UserName, Role: user.Role}
}

func (suite *ServiceTestSuite) createTask(name, timeFrame string, d time.Time, userName, teamName string) *models.Task {
	task, err := suite.tasks.CreateTask(suite.ctx, suite.admin, CreateTaskInput{
		TaskName:  name,
		TimeFrame: timeFrame,
		Date:      d,
		UserName:  userName,
		TeamName:  teamName,
	})
	suite.Require().NoError(err)
	return task
}

func (suite *ServiceTestSuite) TestAuthenticate() {
	alice := suite.createUser("alice", models.RoleEmployee)

	user, err := suite.auth.Authenticate(suite.ctx, "alice@example.com", "password-alice")
	suite.Require().NoError(err)
	suite.Equal(alice.UserID, user.ID)
	suite.Equal("alice", user.UserName)
	suite.Equal(models.RoleEmployee, user.Role)
	suite.NotEqual("password-alice", user.PasswordHash)

	for _, creds := range [][2]string{
		{"alice@example.com", "wrong"},
		{"alice@example.com", "PASSWORD-ALICE"},
		{"Alice@example.com", "password-alice"},
		{"nobody@example.com", "password-alice"},
		{"", ""},
	} {
		_, err := suite.auth.Authenticate(suite.ctx, creds[0], creds[1])
		suite.ErrorIs(err, ErrInvalidCredentials, "%v", creds)
	}
}

func (suite *ServiceTestSuite) TestEnsureAdmin_SkipsWhenAdminExists() {
	created, err := suite.users.EnsureAdmin(suite.ctx, CreateUserInput{
		UserName: "second",
		Name:     "Second Admin",
		Email:    "second@example.com",
		Password: "secondpassword",
	})
	suite.Require().NoError(err)
	suite.False(created)
}

func (suite *ServiceTestSuite) TestCreateUser_Validation() {
	_, err := suite.users.CreateUser(suite.ctx, suite.admin, CreateUserInput{
		UserName: "carol", Name: "Carol", Email: "carol@example.com", Password: "", Role: models.RoleEmployee,
	})
	suite.ErrorIs(err, ErrFieldRequired)

	_, err = suite.users.CreateUser(suite.ctx, suite.admin, CreateUserInput{
		UserName: "carol", Name: "Carol", Email: "carol@example.com", Password: strings.Repeat("p", 73), Role: models.RoleEmployee,
	})
	suite.ErrorIs(err, ErrPasswordTooLong)
	suite.NotErrorIs(err, ErrFailedToHashPassword)

	_, err = suite.users.CreateUser(suite.ctx, suite.admin, CreateUserInput{
		UserName: "carol", Name: "Carol", Email: "carol@example.com", Password: "longenough", Role: "owner",
	})
	suite.ErrorIs(err, ErrInvalidRole)

	var verr *ValidationError
	_, err = suite.users.CreateUser(suite.ctx, suite.admin, CreateUserInput{
		UserName: " ", Name: "Carol", Email: "carol@example.com", Password: "longenough", Role: models.RoleEmployee,
	})
	suite.Require().ErrorAs(err, &verr)
	suite.Equal("user_name", verr.Field)
}

func (suite *ServiceTestSuite) TestCreateUser_DuplicateEmail() {
	suite.createUser("alice", models.RoleEmployee)

	_, err := suite.users.CreateUser(suite.ctx, suite.admin, CreateUserInput{
		UserName: "alice2", Name: "Alice Two", Email: "alice@example.com", Password: "longenough", Role: models.RoleEmployee,
	})
	suite.ErrorIs(err, ErrAlreadyExists)
}

func (suite *ServiceTestSuite) TestCreateTeam() {
	team, err := suite.teams.CreateTeam(suite.ctx, suite.admin, "  Platform ")
	suite.Require().NoError(err)
	suite.Equal("Platform", team.TeamName)

	_, err = suite.teams.CreateTeam(suite.ctx, suite.admin, "Platform")
	suite.ErrorIs(err, ErrAlreadyExists)

	_, err = suite.teams.CreateTeam(suite.ctx, suite.admin, "")
	suite.ErrorIs(err, ErrFieldRequired)

	names, err := suite.teams.ListNames(suite.ctx, suite.admin)
	suite.Require().NoError(err)
	suite.Require().Len(names, 1)
	suite.Equal(team.ID, names[0].ID)
}

func (suite *ServiceTestSuite) TestCreateTask_RoundTrip() {
	alice := suite.createUser("alice", models.RoleEmployee)
	_, err := suite.teams.CreateTeam(suite.ctx, alice, "Platform")
	suite.Require().NoError(err)

	task, err := suite.tasks.CreateTask(suite.ctx, alice, CreateTaskInput{
		TaskName:  "write report",
		TimeFrame: "2:30",
		Date:      time.Date(2024, 6, 15, 17, 45, 0, 0, time.UTC),
		UserName:  "alice",
		TeamName:  "Platform",
	})
	suite.Require().NoError(err)
	suite.Equal(int64(9000), task.TimeFrame)
	suite.Equal(alice.UserID, task.UserID)
	suite.True(date(2024, 6, 15).Equal(task.Date))

	start, end := date(2024, 6, 15), date(2024, 6, 15)
	listing, err := suite.tasks.ListTasks(suite.ctx, alice, ListTasksInput{StartDate: &start, EndDate: &end})
	suite.Require().NoError(err)
	suite.False(listing.IncludeUser)
	suite.Require().Len(listing.Rows, 1)

	row := listing.Rows[0]
	suite.Equal("write report", row.TaskName)
	suite.Equal(int64(9000), row.TimeFrame)
	suite.Equal("Platform", row.TeamName)
	suite.True(date(2024, 6, 15).Equal(row.Date))
}

func (suite *ServiceTestSuite) TestCreateTask_UnknownNames() {
	suite.createUser("alice", models.RoleEmployee)
	_, err := suite.teams.CreateTeam(suite.ctx, suite.admin, "Platform")
	suite.Require().NoError(err)

	_, err = suite.tasks.CreateTask(suite.ctx, suite.admin, CreateTaskInput{
		TaskName: "x", TimeFrame: "1:00", Date: date(2024, 1, 1), UserName: "mallory", TeamName: "Platform",
	})
	suite.ErrorIs(err, ErrUnknownUser)

	_, err = suite.tasks.CreateTask(suite.ctx, suite.admin, CreateTaskInput{
		TaskName: "x", TimeFrame: "1:00", Date: date(2024, 1, 1), UserName: "alice", TeamName: "Nowhere",
	})
	suite.ErrorIs(err, ErrUnknownTeam)

	var verr *ValidationError
	_, err = suite.tasks.CreateTask(suite.ctx, suite.admin, CreateTaskInput{
		TaskName: "x", TimeFrame: "2 hours", Date: date(2024, 1, 1), UserName: "alice", TeamName: "Platform",
	})
	suite.Require().ErrorAs(err, &verr)
	suite.Equal("time_frame", verr.Field)
}

func (suite *ServiceTestSuite) TestListTasks_DefaultRange() {
	suite.tasks.SetClock(func() time.Time {
		return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	})
	suite.createUser("alice", models.RoleEmployee)
	_, err := suite.teams.CreateTeam(suite.ctx, suite.admin, "Platform")
	suite.Require().NoError(err)

	suite.createTask("before", "1:00", date(2023, 12, 31), "alice", "Platform")
	suite.createTask("first day", "1:00", date(2024, 1, 1), "alice", "Platform")
	suite.createTask("last day", "1:00", date(2024, 12, 31), "alice", "Platform")
	suite.createTask("after", "1:00", date(2025, 1, 1), "alice", "Platform")

	listing, err := suite.tasks.ListTasks(suite.ctx, suite.admin, ListTasksInput{})
	suite.Require().NoError(err)
	suite.True(date(2024, 1, 1).Equal(listing.From))
	suite.True(time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC).Equal(listing.To))
	suite.True(listing.IncludeUser)

	suite.Require().Len(listing.Rows, 2)
	suite.Equal("first day", listing.Rows[0].TaskName)
	suite.Equal("last day", listing.Rows[1].TaskName)
	suite.Equal("alice", listing.Rows[0].UserName)
}

func (suite *ServiceTestSuite) TestListTasks_Scoping() {
	alice := suite.createUser("alice", models.RoleEmployee)
	suite.createUser("bob", models.RoleEmployee)
	manager := suite.createUser("lead", models.RoleManager)
	_, err := suite.teams.CreateTeam(suite.ctx, suite.admin, "Platform")
	suite.Require().NoError(err)

	suite.createTask("alice task", "1:00", date(2024, 3, 1), "alice", "Platform")
	suite.createTask("bob task", "1:00", date(2024, 3, 2), "bob", "Platform")

	start, end := date(2024, 1, 1), date(2024, 12, 31)
	in := ListTasksInput{StartDate: &start, EndDate: &end, UserName: "bob"}

	own, err := suite.tasks.ListTasks(suite.ctx, alice, in)
	suite.Require().NoError(err)
	suite.Require().Len(own.Rows, 1)
	suite.Equal("alice task", own.Rows[0].TaskName)

	filtered, err := suite.tasks.ListTasks(suite.ctx, suite.admin, in)
	suite.Require().NoError(err)
	suite.Require().Len(filtered.Rows, 1)
	suite.Equal("bob task", filtered.Rows[0].TaskName)

	all, err := suite.tasks.ListTasks(suite.ctx, manager, ListTasksInput{StartDate: &start, EndDate: &end})
	suite.Require().NoError(err)
	suite.Len(all.Rows, 2)

	inverted := ListTasksInput{StartDate: &end, EndDate: &start}
	_, err = suite.tasks.ListTasks(suite.ctx, suite.admin, inverted)
	suite.ErrorIs(err, ErrInvalidDateRange)
}

func (suite *ServiceTestSuite) TestDashboard_Employee() {
	alice := suite.createUser("alice", models.RoleEmployee)
	_, err := suite.teams.CreateTeam(suite.ctx, suite.admin, "Platform")
	suite.Require().NoError(err)

	suite.createTask("c", "3:00", date(2024, 2, 3), "alice", "Platform")
	suite.createTask("a", "1:00", date(2024, 2, 1), "alice", "Platform")
	suite.createTask("b", "2:00", date(2024, 2, 2), "alice", "Platform")

	chart, err := suite.dashboard.Employee(suite.ctx, alice)
	suite.Require().NoError(err)
	suite.False(chart.NoData)
	suite.Equal(ChartLine, chart.Kind)
	suite.Require().Len(chart.Points, 3)

	total := 0.0
	for _, p := range chart.Points {
		total += p.Hours
	}
	suite.InDelta(6.0, total, 1e-9)
	suite.Equal([]string{"2024-02-01", "2024-02-02", "2024-02-03"},
		[]string{chart.Points[0].Label, chart.Points[1].Label, chart.Points[2].Label})
	suite.InDelta(1.0, chart.Points[0].Hours, 1e-9)
}

func (suite *ServiceTestSuite) TestDashboard_EmployeeNoData() {
	alice := suite.createUser("alice", models.RoleEmployee)

	chart, err := suite.dashboard.Employee(suite.ctx, alice)
	suite.Require().NoError(err)
	suite.True(chart.NoData)
	suite.Empty(chart.Points)
}

func (suite *ServiceTestSuite) TestDashboard_Admin() {
	suite.createUser("alice", models.RoleEmployee)
	suite.createUser("bob", models.RoleEmployee)
	suite.createUser("lead", models.RoleManager)

	empty, err := suite.dashboard.Admin(suite.ctx, suite.admin)
	suite.Require().NoError(err)
	suite.Equal(int64(2), empty.TotalEmployees)
	suite.True(empty.Chart.NoData)

	_, err = suite.teams.CreateTeam(suite.ctx, suite.admin, "Platform")
	suite.Require().NoError(err)
	suite.createTask("a", "1:30", date(2024, 2, 1), "alice", "Platform")
	suite.createTask("b", "0:30", date(2024, 2, 1), "bob", "Platform")
	suite.createTask("c", "1:00", date(2024, 2, 2), "bob", "Platform")

	dash, err := suite.dashboard.Admin(suite.ctx, suite.admin)
	suite.Require().NoError(err)
	suite.False(dash.Chart.NoData)
	suite.Equal(ChartBar, dash.Chart.Kind)
	suite.Equal([]Point{{Label: "alice", Hours: 1.5}, {Label: "bob", Hours: 1.5}}, dash.Chart.Points)
}

func (suite *ServiceTestSuite) TestDashboard_Manager() {
	manager := suite.createUser("lead", models.RoleManager)
	suite.createUser("alice", models.RoleEmployee)
	for _, name := range []string{"Platform", "Web"} {
		_, err := suite.teams.CreateTeam(suite.ctx, suite.admin, name)
		suite.Require().NoError(err)
	}
	suite.createTask("a", "2:00", date(2024, 2, 1), "alice", "Web")
	suite.createTask("b", "1:00", date(2024, 2, 1), "alice", "Platform")

	chart, err := suite.dashboard.Manager(suite.ctx, manager)
	suite.Require().NoError(err)
	suite.Equal([]Point{{Label: "Platform", Hours: 1}, {Label: "Web", Hours: 2}}, chart.Points)
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func TestCreateTask_WriteFailure(t *testing.T) {
	users := new(userRepoMock)
	teams := new(teamRepoMock)
	tasks := new(taskRepoMock)
	ctx := context.Background()

	users.On("ListNames", ctx).Return([]repository.NameRef{{ID: 3, Name: "alice"}}, nil)
	teams.On("ListNames", ctx).Return([]repository.NameRef{{ID: 9, Name: "Platform"}}, nil)
	tasks.On("Create", ctx, mock.MatchedBy(func(task *models.Task) bool {
		return task.UserID == 3 && task.TeamID == 9 && task.TimeFrame == 3600
	})).Return(errors.New("connection reset"))

	service := NewTaskService(tasks, users, teams)
	_, err := service.CreateTask(ctx, Actor{UserID: 3, Role: models.RoleEmployee}, CreateTaskInput{
		TaskName:  "deploy",
		TimeFrame: "1:00",
		Date:      date(2024, 1, 1),
		UserName:  "alice",
		TeamName:  "Platform",
	})

	require.ErrorIs(t, err, ErrWriteFailed)
	assert.Contains(t, err.Error(), "connection reset")
	users.AssertExpectations(t)
	teams.AssertExpectations(t)
	tasks.AssertExpectations(t)
}

func TestDashboard_ManagerNoData(t *testing.T) {
	reports := new(reportRepoMock)
	ctx := context.Background()
	reports.On("HoursByTeam", ctx).Return([]repository.HoursByLabel{}, nil)

	chart, err := NewDashboardService(new(userRepoMock), reports).Manager(ctx, Actor{UserID: 1, Role: models.RoleManager})
	require.NoError(t, err)
	assert.True(t, chart.NoData)
	assert.Empty(t, chart.Points)
}
