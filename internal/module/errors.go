package module

import "errors"

// Domain-specific errors for the module package.
var (
	ErrInvalidCourseID   = errors.New("course id must be positive")
	ErrUnsupportedIntent = errors.New("unsupported intent")
)
