package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Moon-89/HRMIS/internal/dto"
	"github.com/Moon-89/HRMIS/internal/middleware"
	"github.com/Moon-89/HRMIS/internal/service"
	"github.com/Moon-89/HRMIS/pkg/response"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	auth service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email and password required")
		return
	}

	resp, err := h.auth.Register(c.Request.Context(), &req, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			response.Conflict(c, "User already exists")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Created(c, resp)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email and password required")
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), &req, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "Invalid credentials")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, resp)
}

// Refresh handles POST /auth/refresh. The expiring access token itself is the
// refresh credential, carried in the Authorization header.
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := middleware.BearerToken(c)
	if token == "" {
		response.Unauthorized(c, "Missing token")
		return
	}

	resp, err := h.auth.Refresh(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidToken):
			response.Unauthorized(c, "Missing token")
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrSessionNotFound):
			response.Unauthorized(c, "Invalid user")
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.OK(c, resp)
}

// Logout handles POST /auth/logout. Always acknowledges, even when the token
// is garbage.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.auth.Logout(c.Request.Context(), middleware.BearerToken(c))
	response.Message(c, http.StatusOK, "Logged out")
}

// Profile handles GET /users/profile for the authenticated caller
func (h *AuthHandler) Profile(c *gin.Context) {
	resp, err := h.auth.Profile(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, resp)
}
