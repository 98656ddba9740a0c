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

// New returns the group Repository.
func New(selector *offline.Selector, network NetworkDataSource, local LocalDataSource) Repository {
	return &implRepository{selector: selector, network: network, local: local}
}

func (r *implRepository) Groups(ctx context.Context, sc model.Scope, forceRefresh bool) result.Result[[]model.Group] {
	return offline.Fetch(ctx, r.selector, sc, forceRefresh, offline.DataSources[[]model.Group]{
		Network: r.network.Groups,
		Local: func(ctx context.Context) result.Result[[]model.Group] {
			return r.local.Groups(ctx, sc)
		},
		Store: func(ctx context.Context, groups []model.Group) error {
			return r.local.SaveGroups(ctx, sc, groups)
		},
	})
}

func (r *implRepository) SetFavorite(ctx context.Context, sc model.Scope, groupID int64, favorite bool) result.Result[bool] {
	return offline.Write(ctx, r.selector, sc,
		func(ctx context.Context) result.Result[bool] {
			return r.network.SetFavorite(ctx, groupID, favorite)
		},
		func(ctx context.Context, fav bool) error {
			return r.local.SetFavorite(ctx, sc, groupID, fav)
		})
}
