package model

import "time"

// CalendarFilter is the set of calendar contexts (e.g. "course_12",
// "user_3") the user chose to show. ObserveeID is 0 unless a parent is
// viewing an observed student's calendar.
type CalendarFilter struct {
	ObserveeID int64     `json:"observee_id"`
	Filters    []string  `json:"filters"`
	UpdatedAt  time.Time `json:"updated_at"`
}
