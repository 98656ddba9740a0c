package viewmodel

import (
	"errors"
	"strings"

	"github.com/instructure/canvas-android-sub046/pkg/result"
)

// MessageKey names a user-facing string.
type MessageKey string

const (
	MsgErrorNetwork       MessageKey = "error.network"
	MsgErrorAuthorization MessageKey = "error.authorization"
	MsgErrorOccurred      MessageKey = "error.occurred"

	MsgAddedToDashboard     MessageKey = "dashboard.added"
	MsgRemovedFromDashboard MessageKey = "dashboard.removed"
	MsgAllAddedToDashboard  MessageKey = "dashboard.all_added"
	MsgAllRemoved           MessageKey = "dashboard.all_removed"

	MsgEmptyTitle         MessageKey = "dashboard.empty.title"
	MsgEmptyMessage       MessageKey = "dashboard.empty.message"
	MsgNoResultsTitle     MessageKey = "dashboard.no_results.title"
	MsgNoResultsMessage   MessageKey = "dashboard.no_results.message"
	MsgOfflineModeTitle   MessageKey = "dashboard.offline.title"
	MsgOfflineModeMessage MessageKey = "dashboard.offline.message"

	MsgModulesEmptyTitle   MessageKey = "modules.empty.title"
	MsgModulesEmptyMessage MessageKey = "modules.empty.message"
)

// Catalog maps keys to localized text.
type Catalog map[MessageKey]string

// English is the shipped catalog.
var English = Catalog{
	MsgErrorNetwork:       "We couldn't reach Canvas. Check your connection and try again.",
	MsgErrorAuthorization: "Your session has expired. Please log in again.",
	MsgErrorOccurred:      "An unexpected error occurred.",

	MsgAddedToDashboard:     "Added to dashboard",
	MsgRemovedFromDashboard: "Removed from dashboard",
	MsgAllAddedToDashboard:  "All added to dashboard",
	MsgAllRemoved:           "All removed from dashboard",

	MsgEmptyTitle:         "No Courses",
	MsgEmptyMessage:       "It looks like there aren't any courses associated with this account.",
	MsgNoResultsTitle:     "No Results",
	MsgNoResultsMessage:   "We couldn't find any courses or groups matching your search.",
	MsgOfflineModeTitle:   "Offline Mode",
	MsgOfflineModeMessage: "Only courses synced for offline use are available.",

	MsgModulesEmptyTitle:   "No Modules",
	MsgModulesEmptyMessage: "This course doesn't have any modules yet.",
}

var catalogs = map[string]Catalog{"en": English}

// Lookup returns the catalog for a BCP 47 tag such as "en-GB", falling
// back to English.
func Lookup(lang string) Catalog {
	base, _, _ := strings.Cut(strings.ToLower(lang), "-")
	if c, ok := catalogs[base]; ok {
		return c
	}
	return English
}

// Text returns the string for key, then the English one, then the key.
func (c Catalog) Text(key MessageKey) string {
	if s, ok := c[key]; ok {
		return s
	}
	if s, ok := English[key]; ok {
		return s
	}
	return string(key)
}

// ErrorKey picks the message for err by failure kind.
func ErrorKey(err error) MessageKey {
	switch {
	case errors.Is(err, result.ErrAuthorization):
		return MsgErrorAuthorization
	case errors.Is(err, result.ErrNetwork):
		return MsgErrorNetwork
	default:
		return MsgErrorOccurred
	}
}

// ErrorText is Text(ErrorKey(err)).
func (c Catalog) ErrorText(err error) string {
	return c.Text(ErrorKey(err))
}
