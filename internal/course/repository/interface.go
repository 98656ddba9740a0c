package repository

import (
	"context"

	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/pkg/result"
)

// NetworkDataSource reads and favorites courses on Canvas.
type NetworkDataSource interface {
	Courses(ctx context.Context) result.Result[[]model.Course]
	SetFavorite(ctx context.Context, courseID int64, favorite bool) result.Result[bool]
}

// LocalDataSource is the on-device copy of the course list.
type LocalDataSource interface {
	Courses(ctx context.Context, sc model.Scope) result.Result[[]model.Course]
	SaveCourses(ctx context.Context, sc model.Scope, courses []model.Course) error
	SetFavorite(ctx context.Context, sc model.Scope, courseID int64, favorite bool) error
}

// Repository picks between the two sources.
type Repository interface {
	Courses(ctx context.Context, sc model.Scope, forceRefresh bool) result.Result[[]model.Course]
	SetFavorite(ctx context.Context, sc model.Scope, courseID int64, favorite bool) result.Result[bool]
}
