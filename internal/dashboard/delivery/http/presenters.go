package http

import (
	dashboardVM "github.com/instructure/canvas-android-sub046/internal/dashboard/viewmodel"
	vm "github.com/instructure/canvas-android-sub046/internal/viewmodel"
)

// --- Request DTOs ---

type intentReq struct {
	Type  string `json:"type"  binding:"required,oneof=refresh filter toggle_favorite_course toggle_favorite_group select_all_courses deselect_all_courses select_all_groups deselect_all_groups"`
	ID    int64  `json:"id"    binding:"omitempty,min=1"`
	Query string `json:"query" binding:"max=255"`
}

func (r intentReq) validate() error {
	switch r.Type {
	case dashboardVM.IntentToggleFavoriteCourse, dashboardVM.IntentToggleFavoriteGroup:
		if r.ID <= 0 {
			return errIDRequired
		}
	}
	return nil
}

func (r intentReq) toIntent() dashboardVM.Intent {
	return dashboardVM.Intent{
		Type:  r.Type,
		ID:    r.ID,
		Query: r.Query,
	}
}

// --- Response DTOs ---

type openResp struct {
	SessionID string            `json:"session_id"`
	Version   uint64            `json:"version"`
	State     dashboardVM.State `json:"state"`
}

func (h *handler) newOpenResp(id string, snap vm.Snapshot[dashboardVM.State]) openResp {
	return openResp{
		SessionID: id,
		Version:   snap.Version,
		State:     snap.State,
	}
}

type snapshotResp struct {
	Version uint64              `json:"version"`
	State   dashboardVM.State   `json:"state"`
	Events  []dashboardVM.Event `json:"events"`
}

func (h *handler) newSnapshotResp(snap vm.Snapshot[dashboardVM.State], events []dashboardVM.Event) snapshotResp {
	if events == nil {
		events = []dashboardVM.Event{}
	}
	return snapshotResp{
		Version: snap.Version,
		State:   snap.State,
		Events:  events,
	}
}

type intentResp struct {
	Accepted bool   `json:"accepted"`
	Type     string `json:"type"`
}
