package usecase

import (
	"time"

	courseRepo "github.com/instructure/canvas-android-sub046/internal/course/repository"
	syncRepo "github.com/instructure/canvas-android-sub046/internal/coursesync/repository"
	"github.com/instructure/canvas-android-sub046/internal/dashboard"
	groupRepo "github.com/instructure/canvas-android-sub046/internal/group/repository"
	"github.com/instructure/canvas-android-sub046/internal/offline"
	pkgLog "github.com/instructure/canvas-android-sub046/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	selector *offline.Selector
	courses  courseRepo.Repository
	groups   groupRepo.Repository
	synced   syncRepo.Repository
	now      func() time.Time
}

// New creates a new dashboard UseCase instance.
func New(
	l pkgLog.Logger,
	selector *offline.Selector,
	courses courseRepo.Repository,
	groups groupRepo.Repository,
	synced syncRepo.Repository,
) dashboard.UseCase {
	return &implUseCase{
		l:        l,
		selector: selector,
		courses:  courses,
		groups:   groups,
		synced:   synced,
		now:      time.Now,
	}
}
