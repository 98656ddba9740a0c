package coursesync

import "errors"

// Domain-specific errors for the coursesync package.
var (
	ErrOfflineDisabled  = errors.New("offline mode is disabled for this account")
	ErrInvalidCourseID  = errors.New("course id must be positive")
	ErrCourseListFailed = errors.New("failed to refresh the course list")
)
