package repository

import (
	"context"

	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/pkg/result"
)

// NetworkDataSource reads and favorites the user's groups on Canvas.
type NetworkDataSource interface {
	Groups(ctx context.Context) result.Result[[]model.Group]
	SetFavorite(ctx context.Context, groupID int64, favorite bool) result.Result[bool]
}

// LocalDataSource is the on-device copy of the group list.
type LocalDataSource interface {
	Groups(ctx context.Context, sc model.Scope) result.Result[[]model.Group]
	SaveGroups(ctx context.Context, sc model.Scope, groups []model.Group) error
	SetFavorite(ctx context.Context, sc model.Scope, groupID int64, favorite bool) error
}

// Repository picks between the two sources.
type Repository interface {
	Groups(ctx context.Context, sc model.Scope, forceRefresh bool) result.Result[[]model.Group]
	SetFavorite(ctx context.Context, sc model.Scope, groupID int64, favorite bool) result.Result[bool]
}
