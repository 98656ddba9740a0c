package canvas

import "time"

const (
	apiPrefix = "/api/v1/"

	defaultPerPage           = 100
	defaultRequestsPerSecond = 10
	defaultBurst             = 5
	defaultTimeout           = 30 * time.Second
	defaultUserAgent         = "canvas-offline-sync/1.0"

	// maxPages guards against servers that keep returning a next link.
	maxPages = 1000
)
