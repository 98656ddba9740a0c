package calendarfilter

import "github.com/instructure/canvas-android-sub046/internal/model"

// GetInput selects whose filter set to read.
type GetInput struct {
	ObserveeID int64
}

// GetOutput is the stored filter set. Found is false when nothing was
// saved yet; Filter then carries an empty set.
type GetOutput struct {
	Filter model.CalendarFilter `json:"filter"`
	Found  bool                 `json:"found"`
}

// SaveInput replaces the filter set.
type SaveInput struct {
	ObserveeID int64    `json:"observee_id"`
	Filters    []string `json:"filters"`
}

// SaveOutput is the filter set as stored, after de-duplication and the
// context limit.
type SaveOutput struct {
	Filter model.CalendarFilter `json:"filter"`
}
