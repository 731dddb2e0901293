package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-api/pkg/apperror"
	"github.com/oksasatya/go-blog-api/pkg/response"
)

const (
	msgServerError  = "Server Error"
	msgMalformedReq = "Invalid request body"
)

// ErrorHandler turns errors attached with c.Error into the boundary shape
// {success:false, error, stack?}. It runs after the handler chain and only
// writes when nothing has been written yet.
func ErrorHandler(logger *logrus.Logger, showStack bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}
		err := last.Err

		status, msg := classify(last)
		entry := logger.WithError(err).WithField("request_id", c.GetString("request_id"))
		if status >= http.StatusInternalServerError {
			entry.Error("unhandled error")
		} else {
			entry.Debug("request error")
		}

		stack := ""
		if showStack {
			stack = fmt.Sprintf("%+v\n%s", err, debug.Stack())
		}
		response.Failure(c, status, msg, stack)
	}
}

func classify(ge *gin.Error) (int, string) {
	if ae, ok := apperror.From(ge.Err); ok {
		if ae.Kind == apperror.Internal {
			return http.StatusInternalServerError, msgServerError
		}
		return ae.StatusCode(), ae.Message
	}
	if ge.IsType(gin.ErrorTypeBind) {
		return http.StatusBadRequest, msgMalformedReq
	}
	return http.StatusInternalServerError, msgServerError
}

// Recovery converts panics into a 500 boundary response.
func Recovery(logger *logrus.Logger, showStack bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		stack := string(debug.Stack())
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"panic":      fmt.Sprint(recovered),
		}).Error("panic recovered")
		if !showStack {
			stack = ""
		}
		response.Failure(c, http.StatusInternalServerError, msgServerError, stack)
	})
}

// NotFound is the NoRoute handler.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.Failure(c, http.StatusNotFound, "Not found", "")
	}
}
