package http

import (
	"github.com/gin-gonic/gin"

	dashboardVM "github.com/instructure/canvas-android-sub046/internal/dashboard/viewmodel"
	vm "github.com/instructure/canvas-android-sub046/internal/viewmodel"
	"github.com/instructure/canvas-android-sub046/pkg/response"
)

// Open godoc
// @Summary     Open the edit-dashboard screen
// @Description Creates a dashboard session and starts loading courses and groups. The first snapshot is usually still loading.
// @Tags        Dashboard
// @Accept      json
// @Produce     json
// @Param       Accept-Language header string false "Language of user-facing messages"
// @Success     200 {object} openResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/screens/dashboard [POST]
func (h *handler) Open(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	v := dashboardVM.New(ctx, h.l, h.uc, sc, vm.Lookup(c.GetHeader("Accept-Language")))
	id := h.sessions.Add(v)
	h.l.Infof(ctx, "dashboard session %s opened", id)

	response.OK(c, h.newOpenResp(id, v.Snapshot()))
}

// Get godoc
// @Summary     Read the dashboard snapshot
// @Description Returns the latest state and the one-shot events published since the last read.
// @Tags        Dashboard
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} snapshotResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/screens/dashboard/{session_id} [GET]
func (h *handler) Get(c *gin.Context) {
	v, err := h.processSession(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSnapshotResp(v.Snapshot(), v.Events().Drain()))
}

// Intent godoc
// @Summary     Send a dashboard intent
// @Description Dispatches refresh, filter, favorite toggles and select or deselect all. Results arrive as new snapshots.
// @Tags        Dashboard
// @Accept      json
// @Produce     json
// @Param       session_id path string    true "Session ID"
// @Param       body       body intentReq true "Intent"
// @Success     202 {object} intentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/screens/dashboard/{session_id}/intents [POST]
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

	response.Accepted(c, intentResp{Accepted: true, Type: req.Type})
}

// Stream godoc
// @Summary     Stream dashboard snapshots
// @Description Upgrades to a websocket that receives a "state" frame for every snapshot and an "event" frame for every one-shot event.
// @Tags        Dashboard
// @Param       session_id path string true "Session ID"
// @Success     101
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/screens/dashboard/{session_id}/ws [GET]
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
// @Summary     Close the dashboard screen
// @Description Cancels outstanding calls and drops the session.
// @Tags        Dashboard
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/screens/dashboard/{session_id} [DELETE]
func (h *handler) Close(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("session_id")
	if !h.sessions.Remove(id) {
		response.Error(c, h.mapError(errSessionNotFound), nil)
		return
	}
	h.l.Infof(ctx, "dashboard session %s closed", id)

	response.OK(c, nil)
}
