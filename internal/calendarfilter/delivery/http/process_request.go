package http

import (
	"github.com/gin-gonic/gin"

	"github.com/instructure/canvas-android-sub046/internal/middleware"
	"github.com/instructure/canvas-android-sub046/internal/model"
	pkgErrors "github.com/instructure/canvas-android-sub046/pkg/errors"
)

func (h *handler) processGetReq(c *gin.Context) (model.Scope, getReq, error) {
	var req getReq
	sc, ok := middleware.GetScope(c)
	if !ok {
		return sc, req, pkgErrors.ErrUnauthorized
	}
	err := c.ShouldBindQuery(&req)
	return sc, req, err
}

func (h *handler) processSaveReq(c *gin.Context) (model.Scope, saveReq, error) {
	var req saveReq
	sc, ok := middleware.GetScope(c)
	if !ok {
		return sc, req, pkgErrors.ErrUnauthorized
	}
	err := c.ShouldBindJSON(&req)
	return sc, req, err
}
