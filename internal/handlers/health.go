package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apierrors "github.com/yukikurage/task-tracker/internal/errors"
)

const healthCheckTimeout = 2 * time.Second

type HealthHandler struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewHealthHandler(db *gorm.DB, log *zap.SugaredLogger) *HealthHandler {
	return &HealthHandler{db: db, log: log}
}

// Check pings the database.
func (h *HealthHandler) Check(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		h.log.Warnw("health check failed", "error", err)
		apierrors.ServiceUnavailable(c, "Database unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Task Tracker API is running",
	})
}
