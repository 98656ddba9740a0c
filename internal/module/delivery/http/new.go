package http

import (
	"github.com/instructure/canvas-android-sub046/internal/module"
	moduleVM "github.com/instructure/canvas-android-sub046/internal/module/viewmodel"
	vm "github.com/instructure/canvas-android-sub046/internal/viewmodel"
	"github.com/instructure/canvas-android-sub046/pkg/log"
)

type handler struct {
	l        log.Logger
	uc       module.UseCase
	sessions *vm.Registry[*moduleVM.ViewModel]
	origins  vm.Origins
}

// New creates a new HTTP handler for the module list screen.
func New(l log.Logger, uc module.UseCase, sessions *vm.Registry[*moduleVM.ViewModel], origins vm.Origins) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		sessions: sessions,
		origins:  origins,
	}
}
