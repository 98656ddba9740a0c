package canvas

import (
	"context"
	"fmt"
	"net/url"

	"github.com/instructure/canvas-android-sub046/internal/course/repository"
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

// Courses lists completed and available courses with term, favorite and
// section data.
func (r *implRepository) Courses(ctx context.Context) result.Result[[]model.Course] {
	params := url.Values{}
	params.Add("include[]", "term")
	params.Add("include[]", "favorites")
	params.Add("include[]", "sections")
	params.Add("state[]", "completed")
	params.Add("state[]", "available")
	return canvas.Depaginate[model.Course](ctx, r.client, "courses", params)
}

func (r *implRepository) SetFavorite(ctx context.Context, courseID int64, favorite bool) result.Result[bool] {
	path := fmt.Sprintf("users/self/favorites/courses/%d", courseID)
	var res result.Result[canvas.Favorite]
	if favorite {
		res = canvas.Post[canvas.Favorite](ctx, r.client, path, nil, nil)
	} else {
		res = canvas.Delete[canvas.Favorite](ctx, r.client, path, nil)
	}
	return result.Map(res, func(canvas.Favorite) bool { return favorite })
}

