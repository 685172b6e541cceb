package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Moon-89/HRMIS/internal/domain"
	"github.com/Moon-89/HRMIS/internal/dto"
	"github.com/Moon-89/HRMIS/internal/repository"
	"github.com/Moon-89/HRMIS/internal/service"
	"github.com/Moon-89/HRMIS/pkg/response"
)

// TaskHandler handles task endpoints
type TaskHandler struct {
	tasks service.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(tasks service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// List handles GET /tasks with optional status and assignee filters
func (h *TaskHandler) List(c *gin.Context) {
	filter := repository.TaskFilter{
		Status: domain.TaskStatus(c.Query("status")),
	}
	if raw := c.Query("assignee"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "Invalid assignee")
			return
		}
		filter.Assignee = id
	}

	out, err := h.tasks.List(c.Request.Context(), filter)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.OK(c, out)
}

// Create handles POST /tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Title required")
		return
	}

	out, err := h.tasks.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.Created(c, out)
}

// Get handles GET /tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Not found")
		return
	}

	out, err := h.tasks.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			response.NotFound(c, "Not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, out)
}

// Update handles PUT /tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Not found")
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid body")
		return
	}

	out, err := h.tasks.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			response.NotFound(c, "Not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, out)
}

// Delete handles DELETE /tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Not found")
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			response.NotFound(c, "Not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Deleted")
}
