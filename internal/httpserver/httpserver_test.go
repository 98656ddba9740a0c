package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/internal/offline"
	"github.com/instructure/canvas-android-sub046/pkg/canvas"
	"github.com/instructure/canvas-android-sub046/pkg/connectivity"
	"github.com/instructure/canvas-android-sub046/pkg/log"
	"github.com/instructure/canvas-android-sub046/pkg/sqlite"
)

func newServer(t *testing.T) *HTTPServer {
	t.Helper()
	ctx := context.Background()
	l := log.NewNop()

	lms := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/courses":
			w.Write([]byte(`[{"id":1,"name":"Biology","workflow_state":"available","enrollments":[{"type":"student","enrollment_state":"active"}]}]`))
		case "/api/v1/users/self/groups":
			w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(lms.Close)

	client, err := canvas.NewClient(canvas.Config{BaseURL: lms.URL, RequestsPerSecond: 1000, Burst: 100})
	if err != nil {
		t.Fatalf("canvas client: %v", err)
	}
	db, err := sqlite.Open(ctx, sqlite.Config{Path: filepath.Join(t.TempDir(), "cache.db")})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	flags := offline.StaticFlags(true)
	srv, err := New(l, Config{
		Logger:      l,
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: string(model.EnvironmentDevelopment),
		DB:          db,
		Canvas:      client,
		Selector:    offline.New(l, connectivity.Static(true), flags),
		Flags:       flags,
		Scope:       model.Scope{UserID: 1, Domain: client.Domain()},
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	if err := srv.mapHandlers(); err != nil {
		t.Fatalf("map handlers: %v", err)
	}
	t.Cleanup(srv.dashboards.Purge)
	return srv
}

func TestNewValidation(t *testing.T) {
	if _, err := New(log.NewNop(), Config{Mode: gin.TestMode, Port: 8080}); err == nil {
		t.Errorf("expected error without dependencies")
	}
}

func TestRoutes(t *testing.T) {
	srv := newServer(t)

	serve := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, req)
		return w
	}

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			if w := serve(http.MethodGet, path, ""); w.Code != http.StatusOK {
				t.Errorf("expected 200, got %d", w.Code)
			}
		})
	}

	t.Run("Trace Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "abc")
		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, req)
		if got := w.Header().Get("X-Request-ID"); got != "abc" {
			t.Errorf("expected echoed request id, got %q", got)
		}
	})

	t.Run("Dashboard Opens", func(t *testing.T) {
		w := serve(http.MethodPost, "/api/v1/screens/dashboard", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var env struct {
			Data struct {
				SessionID string `json:"session_id"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil || env.Data.SessionID == "" {
			t.Errorf("expected a session id, got %s", w.Body.String())
		}
	})

	t.Run("Calendar Filters", func(t *testing.T) {
		if w := serve(http.MethodGet, "/api/v1/calendar/filters", ""); w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})

	t.Run("Sync Marks Course", func(t *testing.T) {
		if w := serve(http.MethodPut, "/api/v1/sync/courses/1", `{"synced":true}`); w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}
