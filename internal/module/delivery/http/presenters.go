package http

import (
	moduleVM "github.com/instructure/canvas-android-sub046/internal/module/viewmodel"
	vm "github.com/instructure/canvas-android-sub046/internal/viewmodel"
)

type openReq struct {
	CourseID int64 `uri:"course_id" binding:"required,min=1"`
}

type intentReq struct {
	Type string `json:"type" binding:"required,oneof=refresh"`
}

func (r intentReq) toIntent() moduleVM.Intent {
	return moduleVM.Intent{Type: r.Type}
}

type openResp struct {
	SessionID string         `json:"session_id"`
	Version   uint64         `json:"version"`
	State     moduleVM.State `json:"state"`
}

func (h *handler) newOpenResp(id string, snap vm.Snapshot[moduleVM.State]) openResp {
	return openResp{SessionID: id, Version: snap.Version, State: snap.State}
}

type snapshotResp struct {
	Version uint64           `json:"version"`
	State   moduleVM.State   `json:"state"`
	Events  []moduleVM.Event `json:"events"`
}

func (h *handler) newSnapshotResp(snap vm.Snapshot[moduleVM.State], events []moduleVM.Event) snapshotResp {
	if events == nil {
		events = []moduleVM.Event{}
	}
	return snapshotResp{Version: snap.Version, State: snap.State, Events: events}
}
