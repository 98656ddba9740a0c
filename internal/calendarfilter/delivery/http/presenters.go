package http

import (
	"time"

	"github.com/instructure/canvas-android-sub046/internal/calendarfilter"
)

// --- Request DTOs ---

type getReq struct {
	ObserveeID int64 `form:"observee_id" binding:"min=0"`
}

func (r getReq) toInput() calendarfilter.GetInput {
	return calendarfilter.GetInput{ObserveeID: r.ObserveeID}
}

type saveReq struct {
	ObserveeID int64    `json:"observee_id" binding:"min=0"`
	Filters    []string `json:"filters"     binding:"required"`
}

func (r saveReq) toInput() calendarfilter.SaveInput {
	return calendarfilter.SaveInput{
		ObserveeID: r.ObserveeID,
		Filters:    r.Filters,
	}
}

// --- Response DTOs ---

type filterResp struct {
	ObserveeID int64      `json:"observee_id"`
	Filters    []string   `json:"filters"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
	Found      bool       `json:"found"`
}

func (h *handler) newGetResp(out calendarfilter.GetOutput) filterResp {
	resp := filterResp{
		ObserveeID: out.Filter.ObserveeID,
		Filters:    out.Filter.Filters,
		Found:      out.Found,
	}
	if resp.Filters == nil {
		resp.Filters = []string{}
	}
	if out.Found && !out.Filter.UpdatedAt.IsZero() {
		t := out.Filter.UpdatedAt
		resp.UpdatedAt = &t
	}
	return resp
}

func (h *handler) newSaveResp(out calendarfilter.SaveOutput) filterResp {
	return h.newGetResp(calendarfilter.GetOutput{Filter: out.Filter, Found: true})
}
