package canvas_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	moduleCanvas "github.com/instructure/canvas-android-sub046/internal/module/repository/canvas"
	"github.com/instructure/canvas-android-sub046/pkg/canvas"
	"github.com/instructure/canvas-android-sub046/pkg/result"
)

func newClient(t *testing.T, ts *httptest.Server) *canvas.Client {
	t.Helper()
	client, err := canvas.NewClient(canvas.Config{
		BaseURL:           ts.URL,
		RequestsPerSecond: 1000,
		Burst:             100,
		TokenSource:       canvas.TokenSource(context.Background(), canvas.AuthConfig{AccessToken: "t"}),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	return client
}

func TestModules(t *testing.T) {
	var (
		ts         *httptest.Server
		itemCalls  atomic.Int32
		failModule atomic.Int64
	)
	ts = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/courses/7/modules":
			if got := r.URL.Query()["include[]"]; len(got) != 1 || got[0] != "items" {
				t.Errorf("expected include[]=items, got %v", got)
			}
			w.Write([]byte(`[
				{"id":1,"name":"Week 1","position":1,"items_count":1,"items":[{"id":10,"module_id":1,"title":"Intro"}]},
				{"id":2,"name":"Week 2","position":2,"items_count":3},
				{"id":3,"name":"Week 3","position":3,"items_count":0,"items":[]}
			]`))
		case "/api/v1/courses/7/modules/2/items":
			itemCalls.Add(1)
			if failModule.Load() == 2 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if r.URL.Query().Get("page") == "2" {
				w.Write([]byte(`[{"id":22,"module_id":2,"title":"Quiz"},{"id":23,"module_id":2,"title":"Wrap up"}]`))
				return
			}
			w.Header().Set("Link", fmt.Sprintf(`<%s/api/v1/courses/7/modules/2/items?page=2>; rel="next"`, ts.URL))
			w.Write([]byte(`[{"id":21,"module_id":2,"title":"Reading"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	src := moduleCanvas.New(newClient(t, ts))
	ctx := context.Background()

	t.Run("Missing inline items are listed", func(t *testing.T) {
		itemCalls.Store(0)
		modules, err := src.Modules(ctx, 7).Unwrap()
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(modules) != 3 {
			t.Fatalf("expected 3 modules, got %+v", modules)
		}
		if len(modules[0].Items) != 1 || modules[0].Items[0].Title != "Intro" {
			t.Errorf("inline items must be kept, got %+v", modules[0].Items)
		}
		if got := modules[1].Items; len(got) != 3 || got[0].ID != 21 || got[2].ID != 23 {
			t.Errorf("expected 3 listed items in order, got %+v", got)
		}
		if modules[2].Items == nil || len(modules[2].Items) != 0 {
			t.Errorf("expected empty items for empty module, got %+v", modules[2].Items)
		}
		for _, m := range modules {
			if m.CourseID != 7 {
				t.Errorf("course id not set on module %d", m.ID)
			}
		}
		if itemCalls.Load() != 2 {
			t.Errorf("expected items listed only for module 2, got %d calls", itemCalls.Load())
		}
	})

	t.Run("Failed item listing keeps the module", func(t *testing.T) {
		failModule.Store(2)
		defer failModule.Store(0)

		modules, err := src.Modules(ctx, 7).Unwrap()
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if modules[1].Items == nil || len(modules[1].Items) != 0 {
			t.Errorf("expected empty items after a failed listing, got %+v", modules[1].Items)
		}
	})

	t.Run("Module list failure", func(t *testing.T) {
		f, _ := src.Modules(ctx, 8).Failure()
		if f == nil || f.Kind != result.KindNetwork {
			t.Errorf("expected network failure, got %+v", f)
		}
	})
}
