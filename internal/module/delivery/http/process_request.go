package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/instructure/canvas-android-sub046/internal/middleware"
	"github.com/instructure/canvas-android-sub046/internal/model"
	moduleVM "github.com/instructure/canvas-android-sub046/internal/module/viewmodel"
	pkgErrors "github.com/instructure/canvas-android-sub046/pkg/errors"
)

func (h *handler) processOpenReq(c *gin.Context) (model.Scope, openReq, error) {
	var req openReq
	sc, ok := middleware.GetScope(c)
	if !ok {
		return sc, req, pkgErrors.ErrUnauthorized
	}
	if err := c.ShouldBindUri(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}

func (h *handler) processIntentReq(c *gin.Context) (intentReq, error) {
	var req intentReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

// processSession resolves :session_id to a view model opened for the
// :course_id in the same path.
func (h *handler) processSession(c *gin.Context) (*moduleVM.ViewModel, error) {
	v, ok := h.sessions.Get(c.Param("session_id"))
	if !ok {
		return nil, errSessionNotFound
	}
	courseID, err := strconv.ParseInt(c.Param("course_id"), 10, 64)
	if err != nil || courseID != v.CourseID() {
		return nil, errSessionNotFound
	}
	return v, nil
}
