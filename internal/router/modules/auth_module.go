package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-blog-api/internal/interface/http"
)

// AuthModule exposes login and the current principal.
// Public: POST /api/auth/login. Protected: GET /api/auth/me
type AuthModule struct {
	Handler *handlers.AuthHandler
	Guard   gin.HandlerFunc
}

func NewAuthModule(h *handlers.AuthHandler, guard gin.HandlerFunc) *AuthModule {
	return &AuthModule{Handler: h, Guard: guard}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/login", m.Handler.Login)
	rg.GET("/auth/me", m.Guard, m.Handler.Me)
}
