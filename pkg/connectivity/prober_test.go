package connectivity_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/instructure/canvas-android-sub046/pkg/connectivity"
	"github.com/instructure/canvas-android-sub046/pkg/log"
)

func TestProber(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if r.Method != http.MethodHead {
			t.Errorf("expected HEAD, got %s", r.Method)
		}
		// Any status means the host answered.
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	ctx := context.Background()

	t.Run("Reachable Host Is Online And Cached", func(t *testing.T) {
		p := connectivity.NewProber(log.NewNop(), connectivity.ProberConfig{URL: ts.URL, TTL: time.Minute})
		if !p.IsOnline(ctx) {
			t.Fatalf("expected online")
		}
		if !p.IsOnline(ctx) {
			t.Fatalf("expected cached online")
		}
		if n := atomic.LoadInt32(&hits); n != 1 {
			t.Errorf("expected 1 probe, got %d", n)
		}

		p.Invalidate()
		p.IsOnline(ctx)
		if n := atomic.LoadInt32(&hits); n != 2 {
			t.Errorf("expected a fresh probe after Invalidate, got %d", n)
		}
	})

	t.Run("Unreachable Host Is Offline", func(t *testing.T) {
		dead := httptest.NewServer(http.NotFoundHandler())
		url := dead.URL
		dead.Close()

		p := connectivity.NewProber(log.NewNop(), connectivity.ProberConfig{URL: url, Timeout: time.Second})
		if p.IsOnline(ctx) {
			t.Errorf("expected offline")
		}
	})

	t.Run("Static", func(t *testing.T) {
		if !connectivity.Static(true).IsOnline(ctx) || connectivity.Static(false).IsOnline(ctx) {
			t.Errorf("static oracle returned the wrong answer")
		}
	})
}
