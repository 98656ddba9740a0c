package calendarfilter

import (
	"context"

	"github.com/instructure/canvas-android-sub046/internal/model"
)

// UseCase manages the calendar context filters stored on the device.
type UseCase interface {
	Get(ctx context.Context, sc model.Scope, input GetInput) (GetOutput, error)
	Save(ctx context.Context, sc model.Scope, input SaveInput) (SaveOutput, error)
}
