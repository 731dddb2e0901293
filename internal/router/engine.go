package router

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-blog-api/internal/container"
	"github.com/oksasatya/go-blog-api/internal/interface/middleware"
)

// NewEngine builds the gin engine with global middleware and every module registered.
func NewEngine(c *container.Container) *gin.Engine {
	cfg := c.Cfg
	dev := cfg.IsDevelopment()

	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	if cfg.HTTPLogEnabled || dev {
		r.Use(middleware.AccessLog(c.Logger))
	}
	r.Use(middleware.Recovery(c.Logger, dev))
	r.Use(cors.New(corsConfig(cfg.CORSOrigins())))
	r.Use(middleware.ErrorHandler(c.Logger, dev))

	reg := NewRegistry(r)
	InitModules(reg, c)
	reg.RegisterAll(middleware.NotFound())
	return r
}

func corsConfig(origins []string) cors.Config {
	cc := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders: []string{"Content-Length", middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = origins
	}
	return cc
}
