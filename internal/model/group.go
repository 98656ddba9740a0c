package model

import "time"

// Group is a Canvas group the user belongs to.
type Group struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CourseID   int64  `json:"course_id"`
	Concluded  bool   `json:"concluded"`
	IsFavorite bool   `json:"is_favorite"`
}

// IsActive reports whether the group should be shown. Account groups
// (CourseID 0) are active unless concluded; course groups need their course
// to be known and current or upcoming.
func (g Group) IsActive(course *Course, now time.Time) bool {
	if g.Concluded {
		return false
	}
	if g.CourseID == 0 {
		return true
	}
	if course == nil {
		return false
	}
	return course.IsCurrentEnrolment(now) || course.IsFutureEnrolment(now)
}
