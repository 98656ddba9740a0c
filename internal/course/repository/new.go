package repository

import (
	"context"

	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/internal/offline"
	"github.com/instructure/canvas-android-sub046/pkg/result"
)

type implRepository struct {
	selector *offline.Selector
	network  NetworkDataSource
	local    LocalDataSource
}

// New returns the course Repository.
func New(selector *offline.Selector, network NetworkDataSource, local LocalDataSource) Repository {
	return &implRepository{selector: selector, network: network, local: local}
}

func (r *implRepository) Courses(ctx context.Context, sc model.Scope, forceRefresh bool) result.Result[[]model.Course] {
	return offline.Fetch(ctx, r.selector, sc, forceRefresh, offline.DataSources[[]model.Course]{
		Network: r.network.Courses,
		Local: func(ctx context.Context) result.Result[[]model.Course] {
			return r.local.Courses(ctx, sc)
		},
		Store: func(ctx context.Context, courses []model.Course) error {
			return r.local.SaveCourses(ctx, sc, courses)
		},
	})
}

func (r *implRepository) SetFavorite(ctx context.Context, sc model.Scope, courseID int64, favorite bool) result.Result[bool] {
	return offline.Write(ctx, r.selector, sc,
		func(ctx context.Context) result.Result[bool] {
			return r.network.SetFavorite(ctx, courseID, favorite)
		},
		func(ctx context.Context, fav bool) error {
			return r.local.SetFavorite(ctx, sc, courseID, fav)
		})
}
