package model

import "time"

// Module is a course module with its items.
type Module struct {
	ID         int64        `json:"id"`
	CourseID   int64        `json:"course_id"`
	Position   int          `json:"position"`
	Name       string       `json:"name"`
	State      string       `json:"state,omitempty"`
	UnlockAt   *time.Time   `json:"unlock_at,omitempty"`
	ItemsCount int          `json:"items_count"`
	Items      []ModuleItem `json:"items"`
}

// ModuleItem is one entry of a module.
type ModuleItem struct {
	ID        int64  `json:"id"`
	ModuleID  int64  `json:"module_id"`
	Position  int    `json:"position"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Indent    int    `json:"indent"`
	HTMLURL   string `json:"html_url,omitempty"`
	ContentID int64  `json:"content_id,omitempty"`
}
