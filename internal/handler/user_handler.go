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

// UserHandler handles user directory endpoints
type UserHandler struct {
	users service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /users with optional q and role filters
func (h *UserHandler) List(c *gin.Context) {
	filter := repository.UserFilter{
		Query: c.Query("q"),
		Role:  domain.Role(c.Query("role")),
	}

	out, err := h.users.List(c.Request.Context(), filter)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.OK(c, out)
}

// Create handles POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Name and email required")
		return
	}

	out, err := h.users.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			response.Conflict(c, "User already exists")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Created(c, out)
}

// Get handles GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Not found")
		return
	}

	out, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "Not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, out)
}

// GetByEmail handles GET /users/email/:email
func (h *UserHandler) GetByEmail(c *gin.Context) {
	out, err := h.users.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "Not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, out)
}

// Update handles PUT /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Not found")
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid body")
		return
	}

	out, err := h.users.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "Not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, out)
}

// Delete handles DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Not found")
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "Not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Deleted")
}
