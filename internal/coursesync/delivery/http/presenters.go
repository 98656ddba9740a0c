package http

import (
	"time"

	"github.com/instructure/canvas-android-sub046/internal/coursesync"
)

// --- Request DTOs ---

type syncReq struct {
	CourseIDs []int64 `json:"course_ids" binding:"dive,min=1"`
}

func (r syncReq) toInput() coursesync.SyncInput {
	return coursesync.SyncInput{CourseIDs: r.CourseIDs}
}

type setSyncedReq struct {
	CourseID int64 `json:"-"`
	Synced   *bool `json:"synced" binding:"required"`
	FullSync bool  `json:"full_sync"`
}

func (r setSyncedReq) toInput() coursesync.SetSyncedInput {
	return coursesync.SetSyncedInput{
		CourseID: r.CourseID,
		Synced:   *r.Synced,
		FullSync: r.FullSync,
	}
}

// --- Response DTOs ---

type syncResp struct {
	Synced  []int64                    `json:"synced"`
	Skipped []int64                    `json:"skipped"`
	Failed  []coursesync.CourseFailure `json:"failed"`
}

func (h *handler) newSyncResp(out coursesync.SyncOutput) syncResp {
	resp := syncResp{Synced: out.Synced, Skipped: out.Skipped, Failed: out.Failed}
	if resp.Synced == nil {
		resp.Synced = []int64{}
	}
	if resp.Skipped == nil {
		resp.Skipped = []int64{}
	}
	if resp.Failed == nil {
		resp.Failed = []coursesync.CourseFailure{}
	}
	return resp
}

type setSyncedResp struct {
	CourseID  int64      `json:"course_id"`
	Synced    bool       `json:"synced"`
	FullSync  bool       `json:"full_sync"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (h *handler) newSetSyncedResp(courseID int64, out coursesync.SetSyncedOutput) setSyncedResp {
	resp := setSyncedResp{CourseID: courseID}
	if out.Settings != nil {
		resp.Synced = true
		resp.FullSync = out.Settings.FullSync
		t := out.Settings.UpdatedAt
		resp.UpdatedAt = &t
	}
	return resp
}
