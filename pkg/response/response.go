package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageBody is the {"message": ...} shape used for successful writes and not-found.
type MessageBody struct {
	Message string `json:"message"`
}

// ErrorBody is the {"error": ...} shape used by the auth endpoints.
type ErrorBody struct {
	Error string `json:"error"`
}

// FailureBody is the {"message": ..., "error": ...} shape used by the catalog
// and question endpoints; Error carries the diagnostic detail.
type FailureBody struct {
	Message string `json:"message"`
	Error   any    `json:"error,omitempty"`
}

func Message(ctx *gin.Context, status int, message string) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, MessageBody{Message: message})
}

func Error(ctx *gin.Context, status int, message string) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	ctx.JSON(status, ErrorBody{Error: message})
}

func Failure(ctx *gin.Context, status int, message string, detail any) {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	ctx.JSON(status, FailureBody{Message: message, Error: detail})
}

// AbortError writes an ErrorBody and stops the handler chain.
func AbortError(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, ErrorBody{Error: message})
}
