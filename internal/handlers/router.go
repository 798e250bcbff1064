package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yukikurage/task-tracker/internal/middleware"
	"github.com/yukikurage/task-tracker/internal/repository"
	"github.com/yukikurage/task-tracker/internal/services"
)

// Services groups the application services built over one database.
type Services struct {
	Auth      *services.AuthService
	Users     *services.UserService
	Teams     *services.TeamService
	Tasks     *services.TaskService
	Dashboard *services.DashboardService
}

// NewServices wires the repositories and services onto db.
func NewServices(db *gorm.DB) Services {
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	reportRepo := repository.NewReportRepository(db)

	return Services{
		Auth:      services.NewAuthService(userRepo),
		Users:     services.NewUserService(userRepo),
		Teams:     services.NewTeamService(teamRepo),
		Tasks:     services.NewTaskService(taskRepo, userRepo, teamRepo),
		Dashboard: services.NewDashboardService(userRepo, reportRepo),
	}
}

// RegisterRoutes mounts the health check and the API. The session middleware
// must already be installed on r.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, svc Services, log *zap.SugaredLogger) {
	authHandler := NewAuthHandler(svc.Auth, log)
	userHandler := NewUserHandler(svc.Users, log)
	teamHandler := NewTeamHandler(svc.Teams, log)
	taskHandler := NewTaskHandler(svc.Tasks, log)
	dashboardHandler := NewDashboardHandler(svc.Dashboard, log)
	healthHandler := NewHealthHandler(db, log)

	r.GET("/health", healthHandler.Check)

	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.RequireAuth(), authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Everything below requires a session
		protected := api.Group("")
		protected.Use(middleware.RequireAuth())
		{
			protected.GET("/menu", authHandler.Menu)

			protected.POST("/users", middleware.RequireOperation(services.OpCreateUser), userHandler.CreateUser)
			protected.GET("/users/names", middleware.RequireOperation(services.OpLookupNames), userHandler.ListUserNames)

			protected.POST("/teams", middleware.RequireOperation(services.OpCreateTeam), teamHandler.CreateTeam)
			protected.GET("/teams", middleware.RequireOperation(services.OpLookupNames), teamHandler.ListTeamNames)

			protected.POST("/tasks", middleware.RequireOperation(services.OpCreateTask), taskHandler.CreateTask)
			protected.GET("/tasks", middleware.RequireOperation(services.OpViewData), taskHandler.ListTasks)

			dashboard := protected.Group("/dashboard")
			{
				dashboard.GET("", dashboardHandler.ByRole)
				dashboard.GET("/admin", middleware.RequireOperation(services.OpDashboardAdmin), dashboardHandler.Admin)
				dashboard.GET("/employee", middleware.RequireOperation(services.OpDashboardEmployee), dashboardHandler.Employee)
				dashboard.GET("/manager", middleware.RequireOperation(services.OpDashboardManager), dashboardHandler.Manager)
			}
		}
	}
}
