package viewmodel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/internal/module"
	vm "github.com/instructure/canvas-android-sub046/internal/viewmodel"
	"github.com/instructure/canvas-android-sub046/pkg/result"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type fakeUseCase struct {
	list  func(ctx context.Context, input module.ListInput) (module.ListOutput, error)
	calls atomic.Int32
}

func (f *fakeUseCase) List(ctx context.Context, sc model.Scope, input module.ListInput) (module.ListOutput, error) {
	f.calls.Add(1)
	return f.list(ctx, input)
}

func waitFor(t *testing.T, v *ViewModel, cond func(State) bool) State {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s := v.Snapshot().State; cond(s) {
			return s
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met, last state %+v", v.Snapshot().State)
	return State{}
}

var sc = model.Scope{UserID: 1, Domain: "school.test"}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		future := time.Now().Add(48 * time.Hour)
		uc := &fakeUseCase{list: func(ctx context.Context, in module.ListInput) (module.ListOutput, error) {
			if in.CourseID != 7 || in.ForceRefresh {
				t.Errorf("unexpected input %+v", in)
			}
			return module.ListOutput{Modules: []model.Module{
				{ID: 1, Name: "Week 1", Items: []model.ModuleItem{{ID: 10, Title: "Intro", Type: "Page"}}},
				{ID: 2, Name: "Week 2", UnlockAt: &future},
			}}, nil
		}}
		v := New(ctx, &mockLogger{}, uc, sc, 7, vm.English)
		defer v.Close()

		s := waitFor(t, v, func(s State) bool { return s.Status == StatusSuccess })
		if len(s.Modules) != 2 || s.Modules[0].Items[0].Title != "Intro" {
			t.Fatalf("unexpected modules %+v", s.Modules)
		}
		if s.Modules[0].Locked || !s.Modules[1].Locked {
			t.Errorf("expected only the second module to be locked, got %+v", s.Modules)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		uc := &fakeUseCase{list: func(ctx context.Context, in module.ListInput) (module.ListOutput, error) {
			return module.ListOutput{}, nil
		}}
		v := New(ctx, &mockLogger{}, uc, sc, 7, vm.English)
		defer v.Close()

		s := waitFor(t, v, func(s State) bool { return s.Status == StatusEmpty })
		if s.Empty == nil || s.Empty.Title != vm.English.Text(vm.MsgModulesEmptyTitle) {
			t.Errorf("unexpected empty state %+v", s.Empty)
		}
	})

	t.Run("Error", func(t *testing.T) {
		uc := &fakeUseCase{list: func(ctx context.Context, in module.ListInput) (module.ListOutput, error) {
			return module.ListOutput{}, result.Authorization("expired")
		}}
		v := New(ctx, &mockLogger{}, uc, sc, 7, vm.English)
		defer v.Close()

		s := waitFor(t, v, func(s State) bool { return s.Status == StatusError })
		if s.Error != vm.English.Text(vm.MsgErrorAuthorization) {
			t.Errorf("unexpected error text %q", s.Error)
		}
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	fail := atomic.Bool{}
	uc := &fakeUseCase{list: func(ctx context.Context, in module.ListInput) (module.ListOutput, error) {
		if fail.Load() {
			return module.ListOutput{}, result.Network("offline", errors.New("dial"))
		}
		return module.ListOutput{Modules: []model.Module{{ID: 1, Name: "Week 1"}}}, nil
	}}
	v := New(ctx, &mockLogger{}, uc, sc, 7, vm.English)
	defer v.Close()
	waitFor(t, v, func(s State) bool { return s.Status == StatusSuccess })

	events, cancel := v.Events().Subscribe()
	defer cancel()

	fail.Store(true)
	if err := v.Dispatch(Intent{Type: IntentRefresh}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	select {
	case e := <-events:
		if e.Message != vm.English.Text(vm.MsgErrorNetwork) {
			t.Errorf("unexpected event %+v", e)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("expected a snackbar for the failed refresh")
	}

	s := waitFor(t, v, func(s State) bool { return !s.Refreshing })
	if s.Status != StatusSuccess || len(s.Modules) != 1 {
		t.Errorf("stale modules should stay visible, got %+v", s)
	}
	if uc.calls.Load() != 2 {
		t.Errorf("expected 2 calls, got %d", uc.calls.Load())
	}
}

func TestDispatchUnknown(t *testing.T) {
	uc := &fakeUseCase{list: func(ctx context.Context, in module.ListInput) (module.ListOutput, error) {
		return module.ListOutput{}, nil
	}}
	v := New(context.Background(), &mockLogger{}, uc, sc, 7, vm.English)
	defer v.Close()

	if err := v.Dispatch(Intent{Type: "filter"}); !errors.Is(err, module.ErrUnsupportedIntent) {
		t.Errorf("expected ErrUnsupportedIntent, got %v", err)
	}
}

func TestCloseDropsLateResult(t *testing.T) {
	release := make(chan struct{})
	uc := &fakeUseCase{list: func(ctx context.Context, in module.ListInput) (module.ListOutput, error) {
		<-ctx.Done()
		close(release)
		return module.ListOutput{Modules: []model.Module{{ID: 1}}}, nil
	}}
	v := New(context.Background(), &mockLogger{}, uc, sc, 7, vm.English)
	before := v.Snapshot()
	v.Close()
	<-release

	after := v.Snapshot()
	if after.Version != before.Version || after.State.Status != StatusLoading {
		t.Errorf("no snapshot may be published after Close, got %+v", after)
	}
}

func TestRetryAfterFailedLoad(t *testing.T) {
	release := make(chan struct{})
	uc := &fakeUseCase{list: func(ctx context.Context, in module.ListInput) (module.ListOutput, error) {
		if !in.ForceRefresh {
			return module.ListOutput{}, result.Network("offline", nil)
		}
		<-release
		return module.ListOutput{Modules: []model.Module{{ID: 1, Name: "Week 1"}}}, nil
	}}
	v := New(context.Background(), &mockLogger{}, uc, sc, 7, vm.English)
	defer v.Close()
	waitFor(t, v, func(s State) bool { return s.Status == StatusError })

	v.Refresh()
	s := v.Snapshot().State
	if s.Status != StatusLoading || !s.Loading || s.Error != "" {
		t.Errorf("expected loading without the old error, got %+v", s)
	}
	close(release)
	waitFor(t, v, func(s State) bool { return s.Status == StatusSuccess })
}
