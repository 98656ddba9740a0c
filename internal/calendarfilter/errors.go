package calendarfilter

import "errors"

// Domain-specific errors for the calendarfilter package.
var (
	ErrInvalidContext = errors.New("calendar filter context code is invalid")
)
