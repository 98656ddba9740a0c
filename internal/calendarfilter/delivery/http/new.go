package http

import (
	"github.com/instructure/canvas-android-sub046/internal/calendarfilter"
	"github.com/instructure/canvas-android-sub046/pkg/log"
)

type handler struct {
	l  log.Logger
	uc calendarfilter.UseCase
}

// New creates a new HTTP handler for calendar filters.
func New(l log.Logger, uc calendarfilter.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
