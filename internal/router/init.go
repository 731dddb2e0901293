package router

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-blog-api/internal/container"
	handlers "github.com/oksasatya/go-blog-api/internal/interface/http"
	"github.com/oksasatya/go-blog-api/internal/interface/middleware"
	"github.com/oksasatya/go-blog-api/internal/router/modules"
)

// InitModules builds handlers from the container and registers them with the registry.
// Call once during startup, before RegisterAll.
func InitModules(r *Registry, c *container.Container) {
	guard := middleware.Auth(c.JWT, c.AuthService, c.Logger)

	r.Add(
		ModuleFunc(func(rg *gin.RouterGroup) { rg.GET("/health", handlers.Health) }),
		modules.NewAuthModule(handlers.NewAuthHandler(c.AuthService, c.Logger), guard),
		modules.NewPostModule(handlers.NewPostHandler(c.PostService, c.Logger), guard),
	)
	if c.Cfg.IsDevelopment() {
		r.Add(modules.NewDebugModule(c.Cfg.AppName, c.Cfg.Env))
	}
}
