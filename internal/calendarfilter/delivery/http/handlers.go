package http

import (
	"github.com/gin-gonic/gin"

	"github.com/instructure/canvas-android-sub046/pkg/response"
)

// Get godoc
// @Summary     Read calendar filters
// @Description Returns the context codes shown on the calendar. An observer passes the observed student's id.
// @Tags        Calendar
// @Produce     json
// @Param       observee_id query int false "Observed student ID (0 for self)"
// @Success     200 {object} filterResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/filters [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processGetReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Get(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newGetResp(output))
}

// Save godoc
// @Summary     Replace calendar filters
// @Description Stores context codes such as course_1 or group_5. Duplicates are dropped and the list is capped.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body saveReq true "Filters"
// @Success     200 {object} filterResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/filters [PUT]
func (h *handler) Save(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processSaveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Save(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Save: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSaveResp(output))
}
