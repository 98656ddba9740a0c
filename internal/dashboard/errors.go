package dashboard

import "errors"

// Domain-specific errors for the dashboard package.
var (
	ErrInvalidID         = errors.New("id must be positive")
	ErrNotFavoritable    = errors.New("item cannot be favorited")
	ErrUnknownItem       = errors.New("item is not on the dashboard")
	ErrUnsupportedIntent = errors.New("unsupported intent")
)
