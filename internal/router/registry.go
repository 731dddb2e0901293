package router

import "github.com/gin-gonic/gin"

// Module describes a feature module that can register its routes on a RouterGroup
type Module interface {
	Register(rg *gin.RouterGroup)
}

// ModuleFunc adapts a plain function into a Module for single-route features.
type ModuleFunc func(rg *gin.RouterGroup)

func (f ModuleFunc) Register(rg *gin.RouterGroup) { f(rg) }

// Registry collects modules and mounts them under /api.
type Registry struct {
	Engine  *gin.Engine
	API     *gin.RouterGroup
	modules []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, API: engine.Group("/api")}
}

func (r *Registry) Add(mods ...Module) {
	r.modules = append(r.modules, mods...)
}

// RegisterAll mounts every module in order, then installs noRoute as the
// engine-wide fallback when given.
func (r *Registry) RegisterAll(noRoute gin.HandlerFunc) {
	for _, m := range r.modules {
		m.Register(r.API)
	}
	if noRoute != nil {
		r.Engine.NoRoute(noRoute)
	}
}
