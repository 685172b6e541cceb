package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Moon-89/HRMIS/internal/domain"
	"github.com/Moon-89/HRMIS/internal/dto"
	"github.com/Moon-89/HRMIS/internal/middleware"
	"github.com/Moon-89/HRMIS/internal/repository"
	"github.com/Moon-89/HRMIS/internal/service"
	"github.com/Moon-89/HRMIS/pkg/response"
)

// LeaveHandler handles leave-request endpoints
type LeaveHandler struct {
	leaves service.LeaveService
}

// NewLeaveHandler creates a new LeaveHandler
func NewLeaveHandler(leaves service.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaves: leaves}
}

// List handles GET /leaves with optional status and userId filters
func (h *LeaveHandler) List(c *gin.Context) {
	filter := repository.LeaveFilter{
		Status: domain.LeaveStatus(c.Query("status")),
	}
	if raw := c.Query("userId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "Invalid userId")
			return
		}
		filter.UserID = id
	}

	out, err := h.leaves.List(c.Request.Context(), filter)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.OK(c, out)
}

// Create handles POST /leaves
func (h *LeaveHandler) Create(c *gin.Context) {
	var req dto.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing fields")
		return
	}

	out, err := h.leaves.Create(c.Request.Context(), &req, middleware.CallerID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.Created(c, out)
}

// Get handles GET /leaves/:id
func (h *LeaveHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Not found")
		return
	}

	out, err := h.leaves.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrLeaveNotFound) {
			response.NotFound(c, "Not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, out)
}

// Update handles PUT /leaves/:id. Only the leave's owner may edit it.
func (h *LeaveHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Not found")
		return
	}

	var req dto.UpdateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing fields")
		return
	}
	if req.UserID == 0 {
		req.UserID = middleware.CallerID(c)
	}

	out, err := h.leaves.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLeaveNotFound):
			response.NotFound(c, "Not found")
		case errors.Is(err, service.ErrNotLeaveOwner):
			response.Forbidden(c, "Access Denied: You can only edit your own leave.")
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.OK(c, out)
}

// Delete handles DELETE /leaves/:id
func (h *LeaveHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Not found")
		return
	}

	if err := h.leaves.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrLeaveNotFound) {
			response.NotFound(c, "Not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Deleted")
}

// ListForUser handles GET /leaves/user/:id and GET /leaves/user/:id/:status
func (h *LeaveHandler) ListForUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Not found")
		return
	}

	out, err := h.leaves.ListForUser(c.Request.Context(), id, c.Param("status"))
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.OK(c, out)
}
