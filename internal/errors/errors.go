package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message sends a response with a single human-readable "message" body.
// Both success and failure outcomes use this shape.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// Error sends a response with a single human-readable "error" body, used for
// rejected input (missing parameters, catalog conflicts).
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// InternalError sends a 500 response.
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Message(c, http.StatusInternalServerError, message)
}
