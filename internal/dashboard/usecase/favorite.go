package usecase

import (
	"context"
	"fmt"

	"github.com/instructure/canvas-android-sub046/internal/dashboard"
	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/pkg/result"
)

func (uc *implUseCase) FavoriteCourse(ctx context.Context, sc model.Scope, input dashboard.FavoriteInput) (dashboard.FavoriteOutput, error) {
	return uc.setFavorite(ctx, "course", input.ID, true, func(ctx context.Context) result.Result[bool] {
		return uc.courses.SetFavorite(ctx, sc, input.ID, true)
	})
}

func (uc *implUseCase) UnfavoriteCourse(ctx context.Context, sc model.Scope, input dashboard.FavoriteInput) (dashboard.FavoriteOutput, error) {
	return uc.setFavorite(ctx, "course", input.ID, false, func(ctx context.Context) result.Result[bool] {
		return uc.courses.SetFavorite(ctx, sc, input.ID, false)
	})
}

func (uc *implUseCase) FavoriteGroup(ctx context.Context, sc model.Scope, input dashboard.FavoriteInput) (dashboard.FavoriteOutput, error) {
	return uc.setFavorite(ctx, "group", input.ID, true, func(ctx context.Context) result.Result[bool] {
		return uc.groups.SetFavorite(ctx, sc, input.ID, true)
	})
}

func (uc *implUseCase) UnfavoriteGroup(ctx context.Context, sc model.Scope, input dashboard.FavoriteInput) (dashboard.FavoriteOutput, error) {
	return uc.setFavorite(ctx, "group", input.ID, false, func(ctx context.Context) result.Result[bool] {
		return uc.groups.SetFavorite(ctx, sc, input.ID, false)
	})
}

func (uc *implUseCase) setFavorite(ctx context.Context, kind string, id int64, favorite bool, call func(context.Context) result.Result[bool]) (dashboard.FavoriteOutput, error) {
	if id <= 0 {
		return dashboard.FavoriteOutput{}, dashboard.ErrInvalidID
	}
	fav, err := call(ctx).Unwrap()
	if err != nil {
		uc.l.Warnf(ctx, "dashboard.usecase.setFavorite: %s %d favorite=%v: %v", kind, id, favorite, err)
		return dashboard.FavoriteOutput{}, fmt.Errorf("set %s %d favorite: %w", kind, id, err)
	}
	return dashboard.FavoriteOutput{ID: id, IsFavorite: fav}, nil
}
