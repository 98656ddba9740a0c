package dashboard

import (
	"context"

	"github.com/instructure/canvas-android-sub046/internal/model"
)

// UseCase defines the business logic interface for the edit-dashboard screen.
type UseCase interface {
	// Load reads courses and groups, splits courses into current, past and
	// future enrollments and keeps only groups whose course is active.
	Load(ctx context.Context, sc model.Scope, input LoadInput) (LoadOutput, error)

	FavoriteCourse(ctx context.Context, sc model.Scope, input FavoriteInput) (FavoriteOutput, error)
	UnfavoriteCourse(ctx context.Context, sc model.Scope, input FavoriteInput) (FavoriteOutput, error)
	FavoriteGroup(ctx context.Context, sc model.Scope, input FavoriteInput) (FavoriteOutput, error)
	UnfavoriteGroup(ctx context.Context, sc model.Scope, input FavoriteInput) (FavoriteOutput, error)
}
