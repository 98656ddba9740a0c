package repository

import (
	"context"

	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/pkg/result"
)

// Repository stores which courses are kept offline. Local only.
type Repository interface {
	Settings(ctx context.Context, sc model.Scope) result.Result[[]model.CourseSyncSettings]
	SyncedCourseIDs(ctx context.Context, sc model.Scope) result.Result[[]int64]
	SaveSettings(ctx context.Context, sc model.Scope, settings model.CourseSyncSettings) error
	DeleteSettings(ctx context.Context, sc model.Scope, courseID int64) error
}
