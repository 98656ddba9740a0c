package http

import (
	"github.com/instructure/canvas-android-sub046/internal/dashboard"
	dashboardVM "github.com/instructure/canvas-android-sub046/internal/dashboard/viewmodel"
	vm "github.com/instructure/canvas-android-sub046/internal/viewmodel"
	"github.com/instructure/canvas-android-sub046/pkg/log"
)

type handler struct {
	l        log.Logger
	uc       dashboard.UseCase
	sessions *vm.Registry[*dashboardVM.ViewModel]
	origins  vm.Origins
}

// New creates a new HTTP handler for the dashboard screen. Open sessions
// live in sessions until closed or evicted.
func New(l log.Logger, uc dashboard.UseCase, sessions *vm.Registry[*dashboardVM.ViewModel], origins vm.Origins) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		sessions: sessions,
		origins:  origins,
	}
}
