package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"Not Found"`
}

func NewErrorResponse(status int) ErrorResponse {
	return ErrorResponse{Success: false, Error: status, Message: http.StatusText(status)}
}

func AbortWithError(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, NewErrorResponse(status))
}
