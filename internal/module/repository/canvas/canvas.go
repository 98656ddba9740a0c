package canvas

import (
	"context"
	"fmt"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/internal/module/repository"
	"github.com/instructure/canvas-android-sub046/pkg/canvas"
	"github.com/instructure/canvas-android-sub046/pkg/result"
)

// itemFetchLimit caps concurrent module item listings per course.
const itemFetchLimit = 4

type implRepository struct {
	client *canvas.Client
}

// New returns a NetworkDataSource on the Canvas REST API.
func New(client *canvas.Client) repository.NetworkDataSource {
	return &implRepository{client: client}
}

func (r *implRepository) Modules(ctx context.Context, courseID int64) result.Result[[]model.Module] {
	params := url.Values{}
	params.Add("include[]", "items")
	res := canvas.Depaginate[model.Module](ctx, r.client, fmt.Sprintf("courses/%d/modules", courseID), params)
	modules, ok := res.Value()
	if !ok {
		return res
	}

	for i := range modules {
		modules[i].CourseID = courseID
	}
	r.fillItems(ctx, courseID, modules)
	return result.Success(modules)
}

// fillItems lists the items of every module whose inline items are missing
// or short of items_count. Canvas omits them for large modules. A failed
// listing keeps the inline items.
func (r *implRepository) fillItems(ctx context.Context, courseID int64, modules []model.Module) {
	var g errgroup.Group
	g.SetLimit(itemFetchLimit)
	for i := range modules {
		m := &modules[i]
		if m.Items != nil && len(m.Items) >= m.ItemsCount {
			continue
		}
		g.Go(func() error {
			path := fmt.Sprintf("courses/%d/modules/%d/items", courseID, m.ID)
			if items, ok := canvas.Depaginate[model.ModuleItem](ctx, r.client, path, nil).Value(); ok {
				m.Items = items
			}
			if m.Items == nil {
				m.Items = []model.ModuleItem{}
			}
			return nil
		})
	}
	_ = g.Wait()
}
