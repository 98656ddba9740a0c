package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/instructure/canvas-android-sub046/internal/dashboard"
	dashboardVM "github.com/instructure/canvas-android-sub046/internal/dashboard/viewmodel"
	"github.com/instructure/canvas-android-sub046/internal/middleware"
	"github.com/instructure/canvas-android-sub046/internal/model"
	vm "github.com/instructure/canvas-android-sub046/internal/viewmodel"
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

type mockUseCase struct{}

func (m *mockUseCase) Load(ctx context.Context, sc model.Scope, input dashboard.LoadInput) (dashboard.LoadOutput, error) {
	c := model.Course{ID: 3, Name: "Chemistry", Enrollments: []model.Enrollment{{Type: "student"}}}
	return dashboard.LoadOutput{
		Current: []model.Course{c},
		Courses: map[int64]model.Course{3: c},
		Online:  true,
	}, nil
}

func (m *mockUseCase) FavoriteCourse(ctx context.Context, sc model.Scope, in dashboard.FavoriteInput) (dashboard.FavoriteOutput, error) {
	return dashboard.FavoriteOutput{ID: in.ID, IsFavorite: true}, nil
}

func (m *mockUseCase) UnfavoriteCourse(ctx context.Context, sc model.Scope, in dashboard.FavoriteInput) (dashboard.FavoriteOutput, error) {
	return dashboard.FavoriteOutput{ID: in.ID}, nil
}

func (m *mockUseCase) FavoriteGroup(ctx context.Context, sc model.Scope, in dashboard.FavoriteInput) (dashboard.FavoriteOutput, error) {
	return dashboard.FavoriteOutput{ID: in.ID, IsFavorite: true}, nil
}

func (m *mockUseCase) UnfavoriteGroup(ctx context.Context, sc model.Scope, in dashboard.FavoriteInput) (dashboard.FavoriteOutput, error) {
	return dashboard.FavoriteOutput{ID: in.ID}, nil
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func setup(t *testing.T, sc model.Scope) (*gin.Engine, *vm.Registry[*dashboardVM.ViewModel]) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := &mockLogger{}
	sessions := vm.NewRegistry[*dashboardVM.ViewModel](8, time.Minute)
	t.Cleanup(sessions.Purge)

	r := gin.New()
	mw := middleware.New(l, sc)
	r.Use(mw.Trace())
	RegisterRoutes(r.Group("/api/v1/screens/dashboard"), New(l, &mockUseCase{}, sessions, nil), mw)
	return r, sessions
}

func do(t *testing.T, r http.Handler, method, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope %q: %v", w.Body.String(), err)
	}
	return w.Code, env
}

func TestSessionLifecycle(t *testing.T) {
	r, sessions := setup(t, model.Scope{UserID: 1, Domain: "school.test"})

	code, env := do(t, r, http.MethodPost, "/api/v1/screens/dashboard", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", code, env.Message)
	}
	var opened openResp
	if err := json.Unmarshal(env.Data, &opened); err != nil || opened.SessionID == "" {
		t.Fatalf("expected session id, got %s (%v)", env.Data, err)
	}
	if sessions.Len() != 1 {
		t.Errorf("expected 1 open session, got %d", sessions.Len())
	}
	base := "/api/v1/screens/dashboard/" + opened.SessionID

	t.Run("Get Reaches Success", func(t *testing.T) {
		deadline := time.Now().Add(2 * time.Second)
		var snap snapshotResp
		for time.Now().Before(deadline) {
			_, env := do(t, r, http.MethodGet, base, "")
			if err := json.Unmarshal(env.Data, &snap); err != nil {
				t.Fatalf("bad snapshot: %v", err)
			}
			if snap.State.Status == dashboardVM.StatusSuccess {
				break
			}
			time.Sleep(5 * time.Millisecond)
		}
		if snap.State.Status != dashboardVM.StatusSuccess || len(snap.State.Current) != 1 {
			t.Fatalf("expected loaded state, got %+v", snap.State)
		}
	})

	t.Run("Intent Accepted", func(t *testing.T) {
		code, env := do(t, r, http.MethodPost, base+"/intents", `{"type":"filter","query":"chem"}`)
		if code != http.StatusAccepted {
			t.Errorf("expected 202, got %d (%s)", code, env.Message)
		}
	})

	t.Run("Unknown Item Is 404", func(t *testing.T) {
		code, _ := do(t, r, http.MethodPost, base+"/intents", `{"type":"toggle_favorite_course","id":99}`)
		if code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", code)
		}
	})

	t.Run("Toggle Without ID Is 400", func(t *testing.T) {
		code, _ := do(t, r, http.MethodPost, base+"/intents", `{"type":"toggle_favorite_group"}`)
		if code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", code)
		}
	})

	t.Run("Unknown Intent Is 400", func(t *testing.T) {
		code, _ := do(t, r, http.MethodPost, base+"/intents", `{"type":"dance"}`)
		if code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", code)
		}
	})

	t.Run("Close", func(t *testing.T) {
		code, _ := do(t, r, http.MethodDelete, base, "")
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		if code, _ := do(t, r, http.MethodGet, base, ""); code != http.StatusNotFound {
			t.Errorf("expected 404 after close, got %d", code)
		}
		if code, _ := do(t, r, http.MethodDelete, base, ""); code != http.StatusNotFound {
			t.Errorf("expected 404 on second close, got %d", code)
		}
	})
}

func TestMissingScope(t *testing.T) {
	r, sessions := setup(t, model.Scope{})

	code, _ := do(t, r, http.MethodPost, "/api/v1/screens/dashboard", "")
	if code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", code)
	}
	if sessions.Len() != 0 {
		t.Errorf("no session should be opened")
	}
}
