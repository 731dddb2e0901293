package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-blog-api/internal/interface/http"
)

// PostModule wires post handlers. Reads are public; writes go through the guard.
type PostModule struct {
	Handler *handlers.PostHandler
	Guard   gin.HandlerFunc
}

func NewPostModule(h *handlers.PostHandler, guard gin.HandlerFunc) *PostModule {
	return &PostModule{Handler: h, Guard: guard}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	posts.GET("", m.Handler.List)
	posts.GET("/search", m.Handler.Search)
	posts.GET("/:id", m.Handler.Get)

	protected := posts.Group("")
	protected.Use(m.Guard)
	{
		protected.POST("", m.Handler.Create)
		protected.PUT("/:id", m.Handler.Update)
		protected.PUT("/:id/cover", m.Handler.UploadCover)
		protected.DELETE("/:id", m.Handler.Delete)
	}
}
