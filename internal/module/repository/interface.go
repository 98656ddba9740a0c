package repository

import (
	"context"

	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/pkg/result"
)

// NetworkDataSource reads course modules from Canvas.
type NetworkDataSource interface {
	Modules(ctx context.Context, courseID int64) result.Result[[]model.Module]
}

// LocalDataSource is the on-device copy of a course's modules.
type LocalDataSource interface {
	Modules(ctx context.Context, sc model.Scope, courseID int64) result.Result[[]model.Module]
	SaveModules(ctx context.Context, sc model.Scope, courseID int64, modules []model.Module) error
}

// Repository picks between the two sources.
type Repository interface {
	Modules(ctx context.Context, sc model.Scope, courseID int64, forceRefresh bool) result.Result[[]model.Module]
}
