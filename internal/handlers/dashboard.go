package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yukikurage/task-tracker/internal/dto"
	apierrors "github.com/yukikurage/task-tracker/internal/errors"
	"github.com/yukikurage/task-tracker/internal/middleware"
	"github.com/yukikurage/task-tracker/internal/models"
	"github.com/yukikurage/task-tracker/internal/services"
)

// DashboardHandler serves the per-role reporting views.
type DashboardHandler struct {
	dashboardService *services.DashboardService
	log              *zap.SugaredLogger
}

func NewDashboardHandler(dashboardService *services.DashboardService, log *zap.SugaredLogger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		log:              log,
	}
}

// Admin returns the employee count and the hours per employee chart.
func (h *DashboardHandler) Admin(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	dash, err := h.dashboardService.Admin(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminDashboardDTO(*dash))
}

// Employee returns the caller's hours per date chart.
func (h *DashboardHandler) Employee(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	chart, err := h.dashboardService.Employee(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"chart": dto.ToChartDTO(*chart)})
}

// Manager returns the hours per team chart.
func (h *DashboardHandler) Manager(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	chart, err := h.dashboardService.Manager(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"chart": dto.ToChartDTO(*chart)})
}

// ByRole serves the dashboard matching the session role.
func (h *DashboardHandler) ByRole(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	switch identity.Role {
	case models.RoleAdmin:
		h.Admin(c)
	case models.RoleEmployee:
		h.Employee(c)
	case models.RoleManager:
		h.Manager(c)
	default:
		apierrors.Forbidden(c, "")
	}
}
