package model

import "time"

// CourseSyncSettings marks a course for offline sync.
type CourseSyncSettings struct {
	CourseID  int64     `json:"course_id"`
	FullSync  bool      `json:"full_sync"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FeatureFlags are the environment feature flags of a Canvas account.
type FeatureFlags map[string]bool

// FlagOfflineMode gates every local cache read and write.
const FlagOfflineMode = "mobile_offline_mode"

// Enabled reports whether name is on.
func (f FeatureFlags) Enabled(name string) bool { return f[name] }
