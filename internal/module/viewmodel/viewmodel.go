// Package viewmodel is the state holder of a course's module list.
package viewmodel

import (
	"context"
	"fmt"
	"time"

	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/internal/module"
	vm "github.com/instructure/canvas-android-sub046/internal/viewmodel"
	pkgLog "github.com/instructure/canvas-android-sub046/pkg/log"
)

// ViewModel owns one open module list.
type ViewModel struct {
	l        pkgLog.Logger
	uc       module.UseCase
	sc       model.Scope
	courseID int64
	msgs     vm.Catalog
	now      func() time.Time

	scope  *vm.Scope
	store  *vm.Store[State]
	events *vm.Events[Event]
}

// New creates the view model and starts the initial load.
func New(ctx context.Context, l pkgLog.Logger, uc module.UseCase, sc model.Scope, courseID int64, msgs vm.Catalog) *ViewModel {
	v := &ViewModel{
		l:        l,
		uc:       uc,
		sc:       sc,
		courseID: courseID,
		msgs:     msgs,
		now:      time.Now,
		scope:    vm.NewScope(context.WithoutCancel(ctx)),
		store:    vm.NewStore(InitialState(courseID)),
		events:   vm.NewEvents[Event](),
	}
	v.load(false)
	return v
}

func (v *ViewModel) Store() *vm.Store[State] { return v.store }

func (v *ViewModel) Events() *vm.Events[Event] { return v.events }

func (v *ViewModel) Snapshot() vm.Snapshot[State] { return v.store.Current() }

// CourseID is the course the list was opened for.
func (v *ViewModel) CourseID() int64 { return v.courseID }

// Close cancels outstanding loads. Safe to call more than once.
func (v *ViewModel) Close() {
	v.scope.Close()
	v.store.Close()
	v.events.Close()
}

// Dispatch routes an intent.
func (v *ViewModel) Dispatch(in Intent) error {
	if in.Type != IntentRefresh {
		return fmt.Errorf("%w: %q", module.ErrUnsupportedIntent, in.Type)
	}
	v.Refresh()
	return nil
}

// Refresh reloads from the network.
func (v *ViewModel) Refresh() {
	v.load(true)
}

func (v *ViewModel) load(forceRefresh bool) {
	v.store.Update(func(s State) State {
		if s.Status == StatusSuccess || s.Status == StatusEmpty {
			s.Refreshing = true
		} else {
			s.Status = StatusLoading
			s.Loading = true
			s.Error = ""
		}
		return s
	})

	v.scope.Launch(func(ctx context.Context) {
		out, err := v.uc.List(ctx, v.sc, module.ListInput{CourseID: v.courseID, ForceRefresh: forceRefresh})
		if !vm.Active(ctx) {
			return
		}
		if err != nil {
			v.l.Warnf(ctx, "module.viewmodel.load: %v", err)
			msg := v.msgs.ErrorText(err)
			snap, ok := v.store.Update(func(s State) State {
				if s.Refreshing {
					s.Refreshing = false
					return s
				}
				s.Status = StatusError
				s.Loading = false
				s.Error = msg
				s.Empty = nil
				return s
			})
			if ok && snap.State.Status != StatusError {
				v.events.Publish(Event{Type: EventSnackbar, Message: msg})
			}
			return
		}

		now := v.now()
		modules := make([]ModuleView, 0, len(out.Modules))
		for _, m := range out.Modules {
			modules = append(modules, newModuleView(m, now))
		}
		v.store.Update(func(s State) State {
			next := State{Status: StatusSuccess, CourseID: v.courseID, Modules: modules}
			if len(modules) == 0 {
				next.Status = StatusEmpty
				next.Empty = &Empty{
					Title:   v.msgs.Text(vm.MsgModulesEmptyTitle),
					Message: v.msgs.Text(vm.MsgModulesEmptyMessage),
				}
			}
			return next
		})
	})
}
