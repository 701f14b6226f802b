// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse writes a JSON error body. Every failure path carries at
// least a message field.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{"message": message})
}

func BadRequestResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message)
}

func NotFoundResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, message)
}

func UnsupportedMediaTypeResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnsupportedMediaType, message)
}

// MethodNotAllowedResponse carries a status/error pair alongside the message.
func MethodNotAllowedResponse(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusMethodNotAllowed, gin.H{
		"status":  http.StatusMethodNotAllowed,
		"error":   "Method Not Allowed",
		"message": "The method is not allowed for the requested URL",
	})
}

func ValidationErrorResponse(c *gin.Context, errors []ValidationError) {
	message := "Invalid product payload"
	if len(errors) > 0 {
		message = errors[0].Message
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"message": message,
		"errors":  errors,
	})
}
