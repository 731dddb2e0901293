package modules

import (
	"expvar"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

var publishOnce sync.Once

// DebugModule exposes expvar metrics plus build info. Registered in development only.
type DebugModule struct {
	AppName string
	Env     string
	started time.Time
}

func NewDebugModule(appName, env string) *DebugModule {
	return &DebugModule{AppName: appName, Env: env, started: time.Now()}
}

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// expvar names are process-global
	publishOnce.Do(func() {
		expvar.Publish("app", expvar.Func(func() any {
			return map[string]any{
				"name":           m.AppName,
				"env":            m.Env,
				"uptime_seconds": int64(time.Since(m.started).Seconds()),
			}
		}))
	})
	rg.GET("/debug/vars", gin.WrapH(expvar.Handler()))
}
