package canvas

import (
	"context"

	"github.com/instructure/canvas-android-sub046/internal/featureflag/repository"
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

func (r *implRepository) EnvironmentFlags(ctx context.Context) result.Result[model.FeatureFlags] {
	res := canvas.Get[map[string]bool](ctx, r.client, "features/environment", nil)
	return result.Map(res, func(m map[string]bool) model.FeatureFlags {
		if m == nil {
			return model.FeatureFlags{}
		}
		return model.FeatureFlags(m)
	})
}
