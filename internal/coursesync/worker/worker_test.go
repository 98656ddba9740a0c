package worker

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/instructure/canvas-android-sub046/internal/coursesync"
	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/pkg/log"
	"github.com/instructure/canvas-android-sub046/pkg/result"
)

type mockUseCase struct {
	calls atomic.Int32
	sync  func(n int32) (coursesync.SyncOutput, error)
}

func (m *mockUseCase) Sync(ctx context.Context, sc model.Scope, in coursesync.SyncInput) (coursesync.SyncOutput, error) {
	return m.sync(m.calls.Add(1))
}

func (m *mockUseCase) SetSynced(ctx context.Context, sc model.Scope, in coursesync.SetSyncedInput) (coursesync.SetSyncedOutput, error) {
	return coursesync.SetSyncedOutput{}, nil
}

var sc = model.Scope{UserID: 1, Domain: "school.test"}

func TestRunOnce(t *testing.T) {
	ctx := context.Background()
	networkErr := fmt.Errorf("%w: %w", coursesync.ErrCourseListFailed, result.Network("down", nil))

	t.Run("Retries Network Failures", func(t *testing.T) {
		uc := &mockUseCase{sync: func(n int32) (coursesync.SyncOutput, error) {
			if n < 3 {
				return coursesync.SyncOutput{}, networkErr
			}
			return coursesync.SyncOutput{Synced: []int64{1}}, nil
		}}
		w := New(log.NewNop(), uc, sc, Config{Interval: time.Hour, Backoff: time.Millisecond})

		out, err := w.RunOnce(ctx)
		if err != nil || len(out.Synced) != 1 {
			t.Fatalf("unexpected %+v (%v)", out, err)
		}
		if uc.calls.Load() != 3 {
			t.Errorf("expected 3 attempts, got %d", uc.calls.Load())
		}
	})

	t.Run("Gives Up", func(t *testing.T) {
		uc := &mockUseCase{sync: func(int32) (coursesync.SyncOutput, error) { return coursesync.SyncOutput{}, networkErr }}
		w := New(log.NewNop(), uc, sc, Config{Interval: time.Hour, Backoff: time.Millisecond, MaxRetries: 2})

		if _, err := w.RunOnce(ctx); !errors.Is(err, result.ErrNetwork) {
			t.Errorf("expected network error, got %v", err)
		}
		if uc.calls.Load() != 2 {
			t.Errorf("expected 2 attempts, got %d", uc.calls.Load())
		}
	})

	t.Run("Offline Disabled Is Not Retried", func(t *testing.T) {
		uc := &mockUseCase{sync: func(int32) (coursesync.SyncOutput, error) {
			return coursesync.SyncOutput{}, coursesync.ErrOfflineDisabled
		}}
		w := New(log.NewNop(), uc, sc, Config{Interval: time.Hour, Backoff: time.Millisecond})

		if _, err := w.RunOnce(ctx); !errors.Is(err, coursesync.ErrOfflineDisabled) {
			t.Errorf("expected ErrOfflineDisabled, got %v", err)
		}
		if uc.calls.Load() != 1 {
			t.Errorf("expected 1 attempt, got %d", uc.calls.Load())
		}
	})
}

func TestRun(t *testing.T) {
	uc := &mockUseCase{sync: func(int32) (coursesync.SyncOutput, error) { return coursesync.SyncOutput{}, nil }}
	w := New(log.NewNop(), uc, sc, Config{Interval: 10 * time.Millisecond, RunOnStart: true})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := w.Run(ctx); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if uc.calls.Load() < 2 {
		t.Errorf("expected the start run plus ticks, got %d calls", uc.calls.Load())
	}

	if err := New(log.NewNop(), uc, sc, Config{}).Run(context.Background()); err == nil {
		t.Errorf("expected error for a zero interval")
	}
}
