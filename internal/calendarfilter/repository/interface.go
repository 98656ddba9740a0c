package repository

import (
	"context"

	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/pkg/result"
)

// Repository stores calendar filters. There is no network counterpart: the
// filter set lives on the device only.
type Repository interface {
	// Filter returns the stored set; ok is false on a miss.
	Filter(ctx context.Context, sc model.Scope, observeeID int64) (filter result.Result[model.CalendarFilter], ok bool)
	SaveFilter(ctx context.Context, sc model.Scope, filter model.CalendarFilter) error
}
