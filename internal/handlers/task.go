package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yukikurage/task-tracker/internal/constants"
	"github.com/yukikurage/task-tracker/internal/dto"
	apierrors "github.com/yukikurage/task-tracker/internal/errors"
	"github.com/yukikurage/task-tracker/internal/middleware"
	"github.com/yukikurage/task-tracker/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
	log         *zap.SugaredLogger
}

func NewTaskHandler(taskService *services.TaskService, log *zap.SugaredLogger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		log:         log,
	}
}

// CreateTask records a task. The user and team are given by name and
// resolved against the current lookup tables.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		TaskName  string `json:"task_name" binding:"max=255"`
		TimeFrame string `json:"time_frame"`
		Date      string `json:"date"`
		UserName  string `json:"user_name"`
		TeamName  string `json:"team_name"`
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			apierrors.BadRequestWithDetails(c, "Invalid date, expected YYYY-MM-DD", gin.H{"field": "date"})
			return
		}
		date = parsed
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), actor, services.CreateTaskInput{
		TaskName:  req.TaskName,
		TimeFrame: req.TimeFrame,
		Date:      date,
		UserName:  req.UserName,
		TeamName:  req.TeamName,
	})
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	h.log.Infow("task created", "task_id", task.ID, "user_id", task.UserID, "team_id", task.TeamID, "by", actor.UserID)
	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// ListTasks returns the view data table. Dates default to the current year.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	input := services.ListTasksInput{UserName: c.Query("user_name")}

	for _, q := range []struct {
		field string
		dest  **time.Time
	}{
		{"start_date", &input.StartDate},
		{"end_date", &input.EndDate},
	} {
		raw := c.Query(q.field)
		if raw == "" {
			continue
		}
		parsed, err := parseDate(raw)
		if err != nil {
			apierrors.BadRequestWithDetails(c, "Invalid "+q.field+", expected YYYY-MM-DD", gin.H{"field": q.field})
			return
		}
		*q.dest = &parsed
	}

	listing, err := h.taskService.ListTasks(c.Request.Context(), actor, input)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListResponse(*listing))
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(constants.DateLayout, s, time.UTC)
}
