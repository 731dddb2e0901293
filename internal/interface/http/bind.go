package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-blog-api/pkg/response"
	"github.com/oksasatya/go-blog-api/pkg/validation"
)

// bindJSON decodes the body into dst. An empty body leaves dst untouched.
// Malformed JSON goes to the error boundary as a bind error and failed binding
// rules are answered with invalidMsg. It reports whether the handler should continue.
func bindJSON(c *gin.Context, dst any, invalidMsg string) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	if details := validation.ToDetails(err); details != nil {
		response.Invalid(c, invalidMsg, details)
		return false
	}
	if validation.IsSyntaxError(err) {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return false
	}
	_ = c.Error(err)
	return false
}
