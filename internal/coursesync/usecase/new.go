package usecase

import (
	"time"

	courseRepo "github.com/instructure/canvas-android-sub046/internal/course/repository"
	"github.com/instructure/canvas-android-sub046/internal/coursesync"
	"github.com/instructure/canvas-android-sub046/internal/coursesync/repository"
	moduleRepo "github.com/instructure/canvas-android-sub046/internal/module/repository"
	"github.com/instructure/canvas-android-sub046/internal/offline"
	pkgLog "github.com/instructure/canvas-android-sub046/pkg/log"
)

const defaultConcurrency = 4

type implUseCase struct {
	l           pkgLog.Logger
	flags       offline.FlagSource
	repo        repository.Repository
	courses     courseRepo.Repository
	modules     moduleRepo.Repository
	concurrency int
	now         func() time.Time
}

// New creates a new coursesync UseCase instance. concurrency bounds how
// many courses sync at once.
func New(
	l pkgLog.Logger,
	flags offline.FlagSource,
	repo repository.Repository,
	courses courseRepo.Repository,
	modules moduleRepo.Repository,
	concurrency int,
) coursesync.UseCase {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &implUseCase{
		l:           l,
		flags:       flags,
		repo:        repo,
		courses:     courses,
		modules:     modules,
		concurrency: concurrency,
		now:         time.Now,
	}
}
