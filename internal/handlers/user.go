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

type UserHandler struct {
	userService *services.UserService
	log         *zap.SugaredLogger
}

func NewUserHandler(userService *services.UserService, log *zap.SugaredLogger) *UserHandler {
	return &UserHandler{
		userService: userService,
		log:         log,
	}
}

// CreateUser adds an account. Admin only.
func (h *UserHandler) CreateUser(c *gin.Context) {
	type CreateUserRequest struct {
		UserName string `json:"user_name" binding:"required,max=100"`
		Name     string `json:"name" binding:"required,max=255"`
		Email    string `json:"email" binding:"required,email,max=255"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role" binding:"required,oneof=admin manager employee"`
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), actor, services.CreateUserInput{
		UserName: req.UserName,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     models.Role(req.Role),
	})
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	h.log.Infow("user created", "user_id", user.ID, "role", user.Role, "by", actor.UserID)
	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// ListUserNames returns the user lookup table of the task form.
func (h *UserHandler) ListUserNames(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	refs, err := h.userService.ListNames(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": dto.ToNameDTOs(refs)})
}
