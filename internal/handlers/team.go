package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yukikurage/task-tracker/internal/dto"
	apierrors "github.com/yukikurage/task-tracker/internal/errors"
	"github.com/yukikurage/task-tracker/internal/middleware"
	"github.com/yukikurage/task-tracker/internal/services"
)

type TeamHandler struct {
	teamService *services.TeamService
	log         *zap.SugaredLogger
}

func NewTeamHandler(teamService *services.TeamService, log *zap.SugaredLogger) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
		log:         log,
	}
}

// CreateTeam adds a team
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	type CreateTeamRequest struct {
		TeamName string `json:"team_name" binding:"max=255"`
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	team, err := h.teamService.CreateTeam(c.Request.Context(), actor, req.TeamName)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	h.log.Infow("team created", "team_id", team.ID, "by", actor.UserID)
	c.JSON(http.StatusCreated, dto.ToTeamDTO(*team))
}

// ListTeamNames returns the team lookup table of the task form
func (h *TeamHandler) ListTeamNames(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	refs, err := h.teamService.ListNames(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"teams": dto.ToNameDTOs(refs)})
}
