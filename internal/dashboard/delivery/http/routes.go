package http

import (
	"github.com/gin-gonic/gin"

	"github.com/instructure/canvas-android-sub046/internal/middleware"
)

// RegisterRoutes maps the dashboard session routes. All of them need the
// account scope.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := rg.Group("", mw.Scope())
	{
		sessions.POST("", h.Open)
		sessions.GET("/:session_id", h.Get)
		sessions.POST("/:session_id/intents", h.Intent)
		sessions.GET("/:session_id/ws", h.Stream)
		sessions.DELETE("/:session_id", h.Close)
	}
}
