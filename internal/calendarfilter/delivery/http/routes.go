package http

import (
	"github.com/gin-gonic/gin"

	"github.com/instructure/canvas-android-sub046/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	filters := rg.Group("/filters", mw.Scope())
	{
		filters.GET("", h.Get)
		filters.PUT("", h.Save)
	}
}
