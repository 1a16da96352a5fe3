package handlers

import (
	"errors"
	"net/http"

	"github.com/emreglvibecoder/darth-vader-api/internal/constants"
	"github.com/emreglvibecoder/darth-vader-api/internal/dto"
	apierrors "github.com/emreglvibecoder/darth-vader-api/internal/errors"
	"github.com/emreglvibecoder/darth-vader-api/internal/logger"
	"github.com/emreglvibecoder/darth-vader-api/internal/middleware"
	"github.com/emreglvibecoder/darth-vader-api/internal/services"
	"github.com/emreglvibecoder/darth-vader-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const taskCreatedMessage = "Görev kaydedildi!"

type TaskHandler struct {
	taskService *services.TaskService
	log         logrus.FieldLogger
}

func NewTaskHandler(taskService *services.TaskService, log logrus.FieldLogger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		log:         log,
	}
}

// CreateTask stores a task for the authenticated user
func (h *TaskHandler) CreateTask(c *gin.Context) {
	user, exists := middleware.GetUser(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateTaskRequest struct {
		Title     *string `json:"baslik" binding:"required"`
		Completed bool    `json:"tamamlandi"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", validation.ToDetails(err))
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), services.CreateTaskInput{
		Title:     *req.Title,
		Completed: req.Completed,
		OwnerID:   user.ID,
	})
	if err != nil {
		h.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TaskCreatedResponse{
		Message: taskCreatedMessage,
		ID:      task.ID,
	})
}

// ListTasks returns the authenticated user's tasks in storage order
func (h *TaskHandler) ListTasks(c *gin.Context) {
	user, exists := middleware.GetUser(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), user.ID)
	if err != nil {
		h.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

func (h *TaskHandler) respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOwnerRequired):
		apierrors.BadRequest(c, err.Error())
	default:
		logger.LogError(h.log, "task request failed", err, logrus.Fields{
			"request_id": c.GetString(constants.ContextKeyRequestID),
		})
		apierrors.InternalError(c, "Internal server error")
	}
}
