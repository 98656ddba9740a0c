package http

import (
	"github.com/gin-gonic/gin"

	"github.com/instructure/canvas-android-sub046/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	courses := rg.Group("/courses", mw.Scope())
	{
		courses.POST("", h.Sync)
		courses.PUT("/:course_id", h.SetSynced)
	}
}
