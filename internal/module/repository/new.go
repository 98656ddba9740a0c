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

// New returns the module Repository.
func New(selector *offline.Selector, network NetworkDataSource, local LocalDataSource) Repository {
	return &implRepository{selector: selector, network: network, local: local}
}

func (r *implRepository) Modules(ctx context.Context, sc model.Scope, courseID int64, forceRefresh bool) result.Result[[]model.Module] {
	return offline.Fetch(ctx, r.selector, sc, forceRefresh, offline.DataSources[[]model.Module]{
		Network: func(ctx context.Context) result.Result[[]model.Module] {
			return r.network.Modules(ctx, courseID)
		},
		Local: func(ctx context.Context) result.Result[[]model.Module] {
			return r.local.Modules(ctx, sc, courseID)
		},
		Store: func(ctx context.Context, modules []model.Module) error {
			return r.local.SaveModules(ctx, sc, courseID, modules)
		},
	})
}
