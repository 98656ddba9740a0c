package viewmodel

import (
	"time"

	"github.com/instructure/canvas-android-sub046/internal/model"
)

// Status is the top-level screen state.
type Status string

const (
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusEmpty   Status = "empty"
	StatusError   Status = "error"
)

// ItemView is one row under a module header.
type ItemView struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	Indent  int    `json:"indent"`
	HTMLURL string `json:"html_url,omitempty"`
}

// ModuleView is a module header with its rows.
type ModuleView struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Locked   bool       `json:"locked"`
	UnlockAt *time.Time `json:"unlock_at,omitempty"`
	Items    []ItemView `json:"items"`
}

// Empty is shown when the course has no modules.
type Empty struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// State is the immutable module list snapshot.
type State struct {
	Status     Status       `json:"status"`
	Loading    bool         `json:"loading"`
	Refreshing bool         `json:"refreshing"`
	CourseID   int64        `json:"course_id"`
	Modules    []ModuleView `json:"modules"`
	Empty      *Empty       `json:"empty,omitempty"`
	Error      string       `json:"error,omitempty"`
}

// InitialState is the state before the first load completes.
func InitialState(courseID int64) State {
	return State{Status: StatusLoading, Loading: true, CourseID: courseID, Modules: []ModuleView{}}
}

// Event is a one-shot message for the UI. The module list only emits
// load failures that happen while stale modules are on screen.
type Event struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

const EventSnackbar = "snackbar"

// IntentRefresh is the only intent of the module list.
const IntentRefresh = "refresh"

// Intent is a user action.
type Intent struct {
	Type string `json:"type"`
}

func newModuleView(m model.Module, now time.Time) ModuleView {
	items := make([]ItemView, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, ItemView{
			ID:      it.ID,
			Title:   it.Title,
			Type:    it.Type,
			Indent:  it.Indent,
			HTMLURL: it.HTMLURL,
		})
	}
	return ModuleView{
		ID:       m.ID,
		Name:     m.Name,
		Locked:   m.State == "locked" || (m.UnlockAt != nil && m.UnlockAt.After(now)),
		UnlockAt: m.UnlockAt,
		Items:    items,
	}
}
