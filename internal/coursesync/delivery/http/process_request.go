package http

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/instructure/canvas-android-sub046/internal/coursesync"
	"github.com/instructure/canvas-android-sub046/internal/middleware"
	"github.com/instructure/canvas-android-sub046/internal/model"
	pkgErrors "github.com/instructure/canvas-android-sub046/pkg/errors"
)

// processSyncReq accepts an empty body as "every synced course".
func (h *handler) processSyncReq(c *gin.Context) (model.Scope, syncReq, error) {
	var req syncReq
	sc, ok := middleware.GetScope(c)
	if !ok {
		return sc, req, pkgErrors.ErrUnauthorized
	}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return sc, req, err
	}
	return sc, req, nil
}

func (h *handler) processSetSyncedReq(c *gin.Context) (model.Scope, setSyncedReq, error) {
	var req setSyncedReq
	sc, ok := middleware.GetScope(c)
	if !ok {
		return sc, req, pkgErrors.ErrUnauthorized
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	id, err := strconv.ParseInt(c.Param("course_id"), 10, 64)
	if err != nil || id <= 0 {
		return sc, req, h.mapError(coursesync.ErrInvalidCourseID)
	}
	req.CourseID = id
	return sc, req, nil
}
