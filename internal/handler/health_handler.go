package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness and readiness
type HealthHandler struct {
	serviceName string
	startedAt   time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(serviceName string) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, startedAt: time.Now()}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": h.serviceName,
		"uptime":  time.Since(h.startedAt).String(),
	})
}

// Ready handles GET /ready. The store is in-process, so readiness follows
// liveness.
func (h *HealthHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"service": h.serviceName,
	})
}
