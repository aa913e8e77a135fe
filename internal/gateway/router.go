// internal/gateway/router.go
package gateway

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the gateway routes. Gin runs in release mode unless the
// service logs at debug level.
func NewRouter(h *Handler, logLevel string) *gin.Engine {
	if logLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.POST("/", h.HandleQuery)
	engine.POST("/actions", h.HandleAction)
	engine.GET("/healthz", h.HandleHealth)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return engine
}
