package usecase

import (
	"github.com/instructure/canvas-android-sub046/internal/module"
	"github.com/instructure/canvas-android-sub046/internal/module/repository"
	pkgLog "github.com/instructure/canvas-android-sub046/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

// New creates a new module UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) module.UseCase {
	return &implUseCase{l: l, repo: repo}
}
