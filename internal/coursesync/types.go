package coursesync

import "github.com/instructure/canvas-android-sub046/internal/model"

// SyncInput narrows a sync run. Empty CourseIDs means every synced course.
type SyncInput struct {
	CourseIDs []int64 `json:"course_ids"`
}

// CourseFailure is one course that failed to sync.
type CourseFailure struct {
	CourseID int64  `json:"course_id"`
	Kind     string `json:"kind"`
	Message  string `json:"message"`
}

// SyncOutput reports a sync run.
type SyncOutput struct {
	Synced  []int64         `json:"synced"`
	Skipped []int64         `json:"skipped"`
	Failed  []CourseFailure `json:"failed"`
}

// SetSyncedInput marks a course.
type SetSyncedInput struct {
	CourseID int64 `json:"-"`
	Synced   bool  `json:"synced"`
	FullSync bool  `json:"full_sync"`
}

// SetSyncedOutput echoes the stored settings. Settings is nil when the
// course was unmarked.
type SetSyncedOutput struct {
	Settings *model.CourseSyncSettings `json:"settings"`
}
