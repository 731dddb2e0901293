package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageBody is the shape returned by the post, auth and guard endpoints.
type MessageBody struct {
	Message string            `json:"message"`
	Error   string            `json:"error,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// FailureBody is the shape produced by the global error boundary.
type FailureBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Stack   string `json:"stack,omitempty"`
}

func Message(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, MessageBody{Message: message})
}

// MessageErr writes a message with the underlying error text attached.
func MessageErr(ctx *gin.Context, status int, message string, err error) {
	body := MessageBody{Message: message}
	if err != nil {
		body.Error = err.Error()
	}
	ctx.JSON(status, body)
}

// AbortMessage writes a message and stops the handler chain.
func AbortMessage(ctx *gin.Context, status int, message, errText string) {
	ctx.AbortWithStatusJSON(status, MessageBody{Message: message, Error: errText})
}

func Invalid(ctx *gin.Context, message string, details map[string]string) {
	ctx.JSON(http.StatusBadRequest, MessageBody{Message: message, Details: details})
}

func Failure(ctx *gin.Context, status int, errText, stack string) {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	ctx.AbortWithStatusJSON(status, FailureBody{Success: false, Error: errText, Stack: stack})
}
