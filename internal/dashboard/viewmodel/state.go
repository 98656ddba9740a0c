package viewmodel

import vm "github.com/instructure/canvas-android-sub046/internal/viewmodel"

// Status is the top-level screen state.
type Status string

const (
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusEmpty   Status = "empty"
	StatusError   Status = "error"
)

// EmptyReason says why there is nothing to show.
type EmptyReason string

const (
	EmptyNone     EmptyReason = "none"
	EmptyFiltered EmptyReason = "filtered"
	EmptyOffline  EmptyReason = "offline"
)

// CourseItem is one course row.
type CourseItem struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	TermTitle        string `json:"term_title"`
	IsFavorite       bool   `json:"is_favorite"`
	Favoritable      bool   `json:"favoritable"`
	Openable         bool   `json:"openable"`
	AvailableOffline bool   `json:"available_offline"`
	Enabled          bool   `json:"enabled"`
}

// GroupItem is one group row.
type GroupItem struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	IsFavorite bool   `json:"is_favorite"`
	CourseName string `json:"course_name,omitempty"`
	TermName   string `json:"term_name,omitempty"`
}

// Empty describes the empty state.
type Empty struct {
	Reason  EmptyReason `json:"reason"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
}

// State is the immutable dashboard editor snapshot.
type State struct {
	Status      Status       `json:"status"`
	Loading     bool         `json:"loading"`
	Refreshing  bool         `json:"refreshing"`
	Query       string       `json:"query"`
	Current     []CourseItem `json:"current"`
	Past        []CourseItem `json:"past"`
	Future      []CourseItem `json:"future"`
	Groups      []GroupItem  `json:"groups"`
	Empty       *Empty       `json:"empty,omitempty"`
	Error       string       `json:"error,omitempty"`
	Online      bool         `json:"online"`
	OfflineNote bool         `json:"offline_note"`
}

// InitialState is the state before the first load completes.
func InitialState() State {
	return State{Status: StatusLoading, Loading: true}
}

// Event is a one-shot message for the UI.
type Event struct {
	Type    string        `json:"type"`
	Key     vm.MessageKey `json:"key"`
	Message string        `json:"message"`
}

// EventSnackbar is the only event type the dashboard emits.
const EventSnackbar = "snackbar"

// Intent types accepted by Dispatch.
const (
	IntentRefresh              = "refresh"
	IntentFilter               = "filter"
	IntentToggleFavoriteCourse = "toggle_favorite_course"
	IntentToggleFavoriteGroup  = "toggle_favorite_group"
	IntentSelectAllCourses     = "select_all_courses"
	IntentDeselectAllCourses   = "deselect_all_courses"
	IntentSelectAllGroups      = "select_all_groups"
	IntentDeselectAllGroups    = "deselect_all_groups"
)

// Intent is a user action.
type Intent struct {
	Type  string `json:"type"`
	ID    int64  `json:"id,omitempty"`
	Query string `json:"query,omitempty"`
}
