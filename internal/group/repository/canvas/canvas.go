package canvas

import (
	"context"
	"fmt"
	"net/url"

	"github.com/instructure/canvas-android-sub046/internal/group/repository"
	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/pkg/canvas"
	"github.com/instructure/canvas-android-sub046/pkg/result"
)

type implRepository struct {
	client *canvas.Client
}

// New returns a NetworkDataSource on the Canvas REST API.
func New(client *canvas.Client) repository.NetworkDataSource {
	return &implRepository{client: client}
}

func (r *implRepository) Groups(ctx context.Context) result.Result[[]model.Group] {
	params := url.Values{}
	params.Add("include[]", "favorites")
	return canvas.Depaginate[model.Group](ctx, r.client, "users/self/groups", params)
}

func (r *implRepository) SetFavorite(ctx context.Context, groupID int64, favorite bool) result.Result[bool] {
	path := fmt.Sprintf("users/self/favorites/groups/%d", groupID)
	var res result.Result[canvas.Favorite]
	if favorite {
		res = canvas.Post[canvas.Favorite](ctx, r.client, path, nil, nil)
	} else {
		res = canvas.Delete[canvas.Favorite](ctx, r.client, path, nil)
	}
	return result.Map(res, func(canvas.Favorite) bool { return favorite })
}
