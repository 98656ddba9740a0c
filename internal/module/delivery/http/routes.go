package http

import (
	"github.com/gin-gonic/gin"

	"github.com/instructure/canvas-android-sub046/internal/middleware"
)

// RegisterRoutes maps the module list session routes under
// /courses/:course_id/modules.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	modules := rg.Group("/courses/:course_id/modules", mw.Scope())
	{
		modules.POST("", h.Open)
		modules.GET("/:session_id", h.Get)
		modules.POST("/:session_id/intents", h.Intent)
		modules.GET("/:session_id/ws", h.Stream)
		modules.DELETE("/:session_id", h.Close)
	}
}
