package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/yukikurage/task-tracker/internal/errors"
	"github.com/yukikurage/task-tracker/internal/services"
)

// respondServiceError maps a service error to its API response.
// Unexpected errors are logged; the client only sees a generic message.
func respondServiceError(c *gin.Context, log *zap.SugaredLogger, err error) {
	var validation *services.ValidationError

	switch {
	case errors.As(err, &validation):
		apierrors.BadRequestWithDetails(c, validation.Error(), gin.H{"field": validation.Field})
	case errors.Is(err, services.ErrForbidden):
		apierrors.Forbidden(c, "Your role cannot perform this action")
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c)
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrAlreadyExists):
		apierrors.AlreadyExists(c, err.Error())
	case errors.Is(err, services.ErrWriteFailed):
		log.Errorw("write failed", "path", c.FullPath(), "error", err)
		apierrors.WriteFailed(c, "")
	default:
		log.Errorw("request failed", "path", c.FullPath(), "error", err)
		apierrors.InternalError(c, "")
	}
	_ = c.Error(err)
}
