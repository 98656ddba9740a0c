package http

import (
	"github.com/instructure/canvas-android-sub046/internal/coursesync"
	"github.com/instructure/canvas-android-sub046/pkg/log"
)

type handler struct {
	l  log.Logger
	uc coursesync.UseCase
}

// New creates a new HTTP handler for offline course sync.
func New(l log.Logger, uc coursesync.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
