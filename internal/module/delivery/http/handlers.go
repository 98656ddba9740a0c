package http

import (
	"github.com/gin-gonic/gin"

	moduleVM "github.com/instructure/canvas-android-sub046/internal/module/viewmodel"
	vm "github.com/instructure/canvas-android-sub046/internal/viewmodel"
	"github.com/instructure/canvas-android-sub046/pkg/response"
)

// Open godoc
// @Summary     Open the module list of a course
// @Tags        Modules
// @Produce     json
// @Param       course_id       path   int    true  "Course ID"
// @Param       Accept-Language header string false "Language of user-facing messages"
// @Success     200 {object} openResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/screens/courses/{course_id}/modules [POST]
func (h *handler) Open(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processOpenReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	v := moduleVM.New(ctx, h.l, h.uc, sc, req.CourseID, vm.Lookup(c.GetHeader("Accept-Language")))
	id := h.sessions.Add(v)
	h.l.Infof(ctx, "module session %s opened for course %d", id, req.CourseID)

	response.OK(c, h.newOpenResp(id, v.Snapshot()))
}

// Get godoc
// @Summary     Read the module list snapshot
// @Tags        Modules
// @Produce     json
// @Param       course_id  path int    true "Course ID"
// @Param       session_id path string true "Session ID"
// @Success     200 {object} snapshotResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/screens/courses/{course_id}/modules/{session_id} [GET]
func (h *handler) Get(c *gin.Context) {
	v, err := h.processSession(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSnapshotResp(v.Snapshot(), v.Events().Drain()))
}

// Intent godoc
// @Summary     Send a module list intent
// @Tags        Modules
// @Accept      json
// @Produce     json
// @Param       course_id  path int       true "Course ID"
// @Param       session_id path string    true "Session ID"
// @Param       body       body intentReq true "Intent"
// @Success     202 {object} response.Resp "Accepted"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/screens/courses/{course_id}/modules/{session_id}/intents [POST]
func (h *handler) Intent(c *gin.Context) {
	ctx := c.Request.Context()

	v, err := h.processSession(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	req, err := h.processIntentReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := v.Dispatch(req.toIntent()); err != nil {
		h.l.Warnf(ctx, "viewmodel.Dispatch(%s): %v", req.Type, err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Accepted(c, nil)
}

// Stream godoc
// @Summary     Stream module list snapshots over a websocket
// @Tags        Modules
// @Param       course_id  path int    true "Course ID"
// @Param       session_id path string true "Session ID"
// @Success     101
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/screens/courses/{course_id}/modules/{session_id}/ws [GET]
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	v, err := h.processSession(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	if err := vm.ServeWS(ctx, h.l, h.origins, c.Writer, c.Request, v.Store(), v.Events()); err != nil {
		h.l.Warnf(ctx, "viewmodel.ServeWS: %v", err)
	}
}

// Close godoc
// @Summary     Close the module list
// @Tags        Modules
// @Produce     json
// @Param       course_id  path int    true "Course ID"
// @Param       session_id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/screens/courses/{course_id}/modules/{session_id} [DELETE]
func (h *handler) Close(c *gin.Context) {
	if _, err := h.processSession(c); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	h.sessions.Remove(c.Param("session_id"))

	response.OK(c, nil)
}
