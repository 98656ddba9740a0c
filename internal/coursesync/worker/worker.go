// Package worker runs course sync on a fixed interval, the way the mobile
// client's background sync worker does.
package worker

import (
	"context"
	"errors"
	"time"

	"github.com/instructure/canvas-android-sub046/internal/coursesync"
	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/pkg/log"
	"github.com/instructure/canvas-android-sub046/pkg/result"
)

const (
	defaultMaxRetries = 3
	defaultBackoff    = 2 * time.Second
)

// Config tunes a Worker.
type Config struct {
	Interval   time.Duration
	RunOnStart bool
	MaxRetries int
	Backoff    time.Duration // first retry delay, doubled on each retry
}

// Worker calls Sync for one account every Interval.
type Worker struct {
	l   log.Logger
	uc  coursesync.UseCase
	sc  model.Scope
	cfg Config
}

// New creates a Worker.
func New(l log.Logger, uc coursesync.UseCase, sc model.Scope, cfg Config) *Worker {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = defaultBackoff
	}
	return &Worker{l: l, uc: uc, sc: sc, cfg: cfg}
}

// Run blocks until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	if w.cfg.Interval <= 0 {
		return errors.New("worker: interval must be positive")
	}

	if w.cfg.RunOnStart {
		w.RunOnce(log.NewTraceContext(ctx))
	}

	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.RunOnce(log.NewTraceContext(ctx))
		}
	}
}

// RunOnce performs one sync, retrying with exponential backoff while the
// course list cannot be fetched for network reasons.
func (w *Worker) RunOnce(ctx context.Context) (coursesync.SyncOutput, error) {
	backoff := w.cfg.Backoff
	var lastErr error

	for attempt := 1; attempt <= w.cfg.MaxRetries; attempt++ {
		out, err := w.uc.Sync(ctx, w.sc, coursesync.SyncInput{})
		switch {
		case err == nil:
			for _, f := range out.Failed {
				w.l.Warnf(ctx, "worker: course %d failed to sync: %s", f.CourseID, f.Message)
			}
			return out, nil
		case errors.Is(err, coursesync.ErrOfflineDisabled):
			w.l.Infof(ctx, "worker: offline mode disabled, nothing to sync")
			return out, err
		case !errors.Is(err, result.ErrNetwork):
			w.l.Errorf(ctx, "worker: sync failed: %v", err)
			return out, err
		}

		lastErr = err
		w.l.Warnf(ctx, "worker: sync failed (retry %d/%d): %v", attempt, w.cfg.MaxRetries, err)
		if attempt == w.cfg.MaxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return coursesync.SyncOutput{}, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	w.l.Errorf(ctx, "worker: sync gave up after %d attempts: %v", w.cfg.MaxRetries, lastErr)
	return coursesync.SyncOutput{}, lastErr
}
