package http

import (
	"github.com/gin-gonic/gin"

	"github.com/instructure/canvas-android-sub046/pkg/response"
)

// Sync godoc
// @Summary     Sync offline courses now
// @Description Force-refreshes the course list and the modules of every course marked for offline use. Per-course failures are reported, not fatal.
// @Tags        Sync
// @Accept      json
// @Produce     json
// @Param       body body syncReq false "Restrict the run to these courses"
// @Success     200 {object} syncResp
// @Failure     409 {object} response.Resp "Offline mode disabled"
// @Failure     502 {object} response.Resp "Canvas unreachable"
// @Router      /api/v1/sync/courses [POST]
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processSyncReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Sync(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Sync: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSyncResp(output))
}

// SetSynced godoc
// @Summary     Mark a course for offline use
// @Tags        Sync
// @Accept      json
// @Produce     json
// @Param       course_id path int          true "Course ID"
// @Param       body      body setSyncedReq true "Sync settings"
// @Success     200 {object} setSyncedResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/sync/courses/{course_id} [PUT]
func (h *handler) SetSynced(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processSetSyncedReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SetSynced(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SetSynced: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSetSyncedResp(req.CourseID, output))
}
