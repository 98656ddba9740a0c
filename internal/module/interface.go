package module

import (
	"context"

	"github.com/instructure/canvas-android-sub046/internal/model"
)

// UseCase defines the business logic interface for the module list.
type UseCase interface {
	// List returns the modules of a course with their items, ordered by position.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
}
