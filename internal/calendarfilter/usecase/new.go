package usecase

import (
	"time"

	"github.com/instructure/canvas-android-sub046/internal/calendarfilter"
	"github.com/instructure/canvas-android-sub046/internal/calendarfilter/repository"
	pkgLog "github.com/instructure/canvas-android-sub046/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	limit int
	now   func() time.Time
}

// New creates a new calendarfilter UseCase instance. limit caps how many
// contexts a saved set keeps; 0 or less means no cap.
func New(l pkgLog.Logger, repo repository.Repository, limit int) calendarfilter.UseCase {
	return &implUseCase{l: l, repo: repo, limit: limit, now: time.Now}
}
