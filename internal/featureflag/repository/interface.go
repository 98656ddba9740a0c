package repository

import (
	"context"

	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/pkg/result"
)

// NetworkDataSource reads environment flags from Canvas.
type NetworkDataSource interface {
	EnvironmentFlags(ctx context.Context) result.Result[model.FeatureFlags]
}

// LocalDataSource persists the last fetched flags per scope.
type LocalDataSource interface {
	EnvironmentFlags(ctx context.Context, sc model.Scope) result.Result[model.FeatureFlags]
	SaveEnvironmentFlags(ctx context.Context, sc model.Scope, flags model.FeatureFlags) error
}
