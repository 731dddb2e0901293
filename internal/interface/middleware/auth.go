package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-blog-api/pkg/apperror"
	"github.com/oksasatya/go-blog-api/pkg/helpers"
	"github.com/oksasatya/go-blog-api/pkg/response"
)

const (
	CtxPrincipalKey = "principal"
	CtxUserIDKey    = "userID"
)

const (
	msgNoToken      = "Not authorized, no token provided"
	msgTokenFailed  = "Not authorized, token failed"
	msgUserNotFound = "Not authorized, user not found"
	msgTokenExpired = "Your token has expired. Please log in again."
	msgTokenInvalid = "Invalid token. Please log in again."
)

// PrincipalResolver maps a token subject to a stored principal.
type PrincipalResolver interface {
	Resolve(ctx context.Context, id string) (*entity.User, error)
}

// Auth validates the Bearer access token and resolves its principal.
// It sets principal and userID in the Gin context on success.
func Auth(jwt *helpers.JWTManager, resolver PrincipalResolver, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer") {
			response.AbortMessage(c, http.StatusUnauthorized, msgNoToken, "")
			return
		}
		// "Bearer" with nothing after it still counts as a presented token
		// and fails validation below.
		token := ""
		if _, rest, ok := strings.Cut(header, " "); ok {
			token = strings.TrimSpace(rest)
		}

		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			reason := msgTokenInvalid
			if errors.Is(err, helpers.ErrTokenExpired) {
				reason = msgTokenExpired
			}
			response.AbortMessage(c, http.StatusUnauthorized, msgTokenFailed, reason)
			return
		}

		principal, err := resolver.Resolve(c.Request.Context(), claims.UserID)
		if err != nil {
			if apperror.IsNotFound(err) {
				response.AbortMessage(c, http.StatusUnauthorized, msgUserNotFound, "")
				return
			}
			if logger != nil {
				logger.WithError(err).WithField("user_id", claims.UserID).Error("resolve principal failed")
			}
			response.AbortMessage(c, http.StatusInternalServerError, msgTokenFailed, err.Error())
			return
		}

		c.Set(CtxPrincipalKey, principal)
		c.Set(CtxUserIDKey, principal.ID)
		c.Next()
	}
}

// Principal returns the principal stored by Auth.
func Principal(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(CtxPrincipalKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*entity.User)
	return u, ok && u != nil
}
