package featureflag

import (
	"context"

	"github.com/instructure/canvas-android-sub046/internal/model"
)

// Provider answers feature flag questions for a scope.
type Provider interface {
	// OfflineEnabled reports whether the mobile_offline_mode flag is on.
	OfflineEnabled(ctx context.Context, sc model.Scope) bool
	// Flags returns every environment flag, fetching them when online.
	Flags(ctx context.Context, sc model.Scope) (model.FeatureFlags, error)
	// Invalidate drops the cached answer for sc.
	Invalidate(sc model.Scope)
}
