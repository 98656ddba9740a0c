package middleware

import (
	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/pkg/log"
)

// Middleware carries what the request middlewares need: the logger and
// the cache scope of the Canvas account this process serves.
type Middleware struct {
	l     log.Logger
	scope model.Scope
}

func New(l log.Logger, sc model.Scope) Middleware {
	return Middleware{
		l:     l,
		scope: sc,
	}
}
