package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yukikurage/task-tracker/internal/dto"
	apierrors "github.com/yukikurage/task-tracker/internal/errors"
	"github.com/yukikurage/task-tracker/internal/middleware"
	"github.com/yukikurage/task-tracker/internal/services"
	"github.com/yukikurage/task-tracker/internal/session"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	log         *zap.SugaredLogger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		log:         log,
	}
}

// Login authenticates by email and password and establishes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	sess := session.New(sessions.Default(c))
	if sess.State() == session.StateAuthenticated {
		apierrors.Conflict(c, session.ErrAlreadyAuthenticated.Error())
		return
	}

	user, err := h.authService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			h.log.Infow("login rejected", "client_ip", c.ClientIP())
		}
		respondServiceError(c, h.log, err)
		return
	}

	err = sess.Establish(session.Identity{
		UserID:   user.ID,
		UserName: user.UserName,
		Role:     user.Role,
	})
	if err != nil {
		h.log.Errorw("failed to establish session", "user_id", user.ID, "error", err)
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	h.log.Infow("user logged in", "user_id", user.ID, "role", user.Role)
	c.JSON(http.StatusOK, dto.ToSessionDTO(*user))
}

// Logout clears the authenticated session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := session.New(sessions.Default(c)).Clear(); err != nil {
		if errors.Is(err, session.ErrNotAuthenticated) {
			apierrors.Unauthorized(c, "Not authenticated")
			return
		}
		h.log.Errorw("failed to clear session", "error", err)
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// GetCurrentUser returns the authenticated user and their menu.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), identity.UserID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionDTO(*user))
}

// Menu returns the menu entries of the session role.
func (h *AuthHandler) Menu(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"role": identity.Role,
		"menu": services.Menu(identity.Role),
	})
}
