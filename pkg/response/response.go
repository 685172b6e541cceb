// Package response provides JSON helpers matching the flat wire contract the
// HRMIS frontend consumes: success bodies are the resource itself, failure
// bodies are {"message": "..."}.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageBody is the error envelope for every non-2xx response
type MessageBody struct {
	Message string `json:"message"`
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message writes a {"message": ...} body with the given status. Used both for
// errors and for acknowledgement-only endpoints like logout and delete.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, MessageBody{Message: msg})
}

func BadRequest(c *gin.Context, msg string) {
	Message(c, http.StatusBadRequest, msg)
}

func Unauthorized(c *gin.Context, msg string) {
	Message(c, http.StatusUnauthorized, msg)
}

func Forbidden(c *gin.Context, msg string) {
	Message(c, http.StatusForbidden, msg)
}

func NotFound(c *gin.Context, msg string) {
	Message(c, http.StatusNotFound, msg)
}

func Conflict(c *gin.Context, msg string) {
	Message(c, http.StatusConflict, msg)
}

func InternalError(c *gin.Context, err error) {
	Message(c, http.StatusInternalServerError, "Internal server error")
	_ = c.Error(err)
}
