package coursesync

import (
	"context"

	"github.com/instructure/canvas-android-sub046/internal/model"
)

// UseCase keeps the offline copy of selected courses fresh.
type UseCase interface {
	// Sync force-refreshes the course list and the modules of every course
	// marked for offline use. Per-course failures are collected, not fatal.
	Sync(ctx context.Context, sc model.Scope, input SyncInput) (SyncOutput, error)

	// SetSynced marks or unmarks a course for offline use.
	SetSynced(ctx context.Context, sc model.Scope, input SetSyncedInput) (SetSyncedOutput, error)
}
