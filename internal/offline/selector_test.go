package offline_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/internal/offline"
	"github.com/instructure/canvas-android-sub046/pkg/connectivity"
	pkgLog "github.com/instructure/canvas-android-sub046/pkg/log"
	"github.com/instructure/canvas-android-sub046/pkg/result"
)

var sc = model.Scope{UserID: 1, Domain: "school.instructure.com"}

type fakeSources struct {
	network      result.Result[[]string]
	local        result.Result[[]string]
	storeErr     error
	networkCalls int
	localCalls   int
	stored       [][]string
}

func (f *fakeSources) sources() offline.DataSources[[]string] {
	return offline.DataSources[[]string]{
		Network: func(context.Context) result.Result[[]string] {
			f.networkCalls++
			return f.network
		},
		Local: func(context.Context) result.Result[[]string] {
			f.localCalls++
			return f.local
		},
		Store: func(_ context.Context, v []string) error {
			f.stored = append(f.stored, v)
			return f.storeErr
		},
	}
}

func newSelector(online, offlineEnabled bool) *offline.Selector {
	return offline.New(pkgLog.NewNop(), connectivity.Static(online), offline.StaticFlags(offlineEnabled))
}

func TestFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("Force refresh calls network once and never reads local", func(t *testing.T) {
		for _, online := range []bool{true, false} {
			f := &fakeSources{network: result.Success([]string{"x"})}
			res := offline.Fetch(ctx, newSelector(online, true), sc, true, f.sources())
			if f.networkCalls != 1 || f.localCalls != 0 {
				t.Fatalf("online=%v: network=%d local=%d", online, f.networkCalls, f.localCalls)
			}
			if v, _ := res.Value(); !reflect.DeepEqual(v, []string{"x"}) {
				t.Errorf("unexpected value %v", v)
			}
			if len(f.stored) != 1 {
				t.Errorf("expected write-through, got %d stores", len(f.stored))
			}
		}
	})

	t.Run("Offline with feature enabled reads local", func(t *testing.T) {
		f := &fakeSources{local: result.Success([]string{"cached"})}
		res := offline.Fetch(ctx, newSelector(false, true), sc, false, f.sources())
		if f.networkCalls != 0 || f.localCalls != 1 {
			t.Fatalf("network=%d local=%d", f.networkCalls, f.localCalls)
		}
		if v, _ := res.Value(); !reflect.DeepEqual(v, []string{"cached"}) {
			t.Errorf("unexpected value %v", v)
		}
	})

	t.Run("Cache miss is an empty success", func(t *testing.T) {
		f := &fakeSources{local: result.Success([]string{})}
		res := offline.Fetch(ctx, newSelector(false, true), sc, false, f.sources())
		v, ok := res.Value()
		if !ok || len(v) != 0 {
			t.Errorf("expected Success(empty), got %v %v", v, ok)
		}
	})

	t.Run("Online returns network success unchanged", func(t *testing.T) {
		f := &fakeSources{network: result.Success([]string{"x", "y"})}
		res := offline.Fetch(ctx, newSelector(true, false), sc, false, f.sources())
		if f.localCalls != 0 {
			t.Errorf("local must not be read online")
		}
		if v, _ := res.Value(); !reflect.DeepEqual(v, []string{"x", "y"}) {
			t.Errorf("unexpected value %v", v)
		}
		if len(f.stored) != 0 {
			t.Errorf("feature disabled must not write local")
		}
	})

	t.Run("Offline with feature disabled still calls network", func(t *testing.T) {
		f := &fakeSources{network: result.Fail[[]string](result.Network("no route", nil))}
		res := offline.Fetch(ctx, newSelector(false, false), sc, false, f.sources())
		if f.networkCalls != 1 || f.localCalls != 0 {
			t.Fatalf("network=%d local=%d", f.networkCalls, f.localCalls)
		}
		fail, ok := res.Failure()
		if !ok || fail.Kind != result.KindNetwork {
			t.Errorf("expected network failure, got %v", res)
		}
	})

	t.Run("Network failure is not stored", func(t *testing.T) {
		f := &fakeSources{network: result.Fail[[]string](result.HTTPStatus(401, ""))}
		res := offline.Fetch(ctx, newSelector(true, true), sc, false, f.sources())
		if !errors.Is(mustErr(t, res), result.ErrAuthorization) {
			t.Errorf("expected authorization failure")
		}
		if len(f.stored) != 0 {
			t.Errorf("failure must not be stored")
		}
	})

	t.Run("Store error keeps the success", func(t *testing.T) {
		f := &fakeSources{network: result.Success([]string{"x"}), storeErr: errors.New("disk full")}
		res := offline.Fetch(ctx, newSelector(true, true), sc, false, f.sources())
		if !res.IsSuccess() {
			t.Errorf("expected success despite store error")
		}
	})
}

func TestWrite(t *testing.T) {
	ctx := context.Background()

	t.Run("Offline still calls network", func(t *testing.T) {
		calls := 0
		res := offline.Write(ctx, newSelector(false, true), sc,
			func(context.Context) result.Result[int] {
				calls++
				return result.Fail[int](result.Network("offline", nil))
			},
			func(context.Context, int) error {
				t.Errorf("patch must not run on failure")
				return nil
			})
		if calls != 1 || res.IsSuccess() {
			t.Errorf("calls=%d success=%v", calls, res.IsSuccess())
		}
	})

	t.Run("Success patches local when enabled", func(t *testing.T) {
		patched := 0
		offline.Write(ctx, newSelector(true, true), sc,
			func(context.Context) result.Result[int] { return result.Success(7) },
			func(_ context.Context, v int) error { patched = v; return nil })
		if patched != 7 {
			t.Errorf("expected patch with 7, got %d", patched)
		}
	})
}

func mustErr[T any](t *testing.T, r result.Result[T]) error {
	t.Helper()
	_, err := r.Unwrap()
	if err == nil {
		t.Fatalf("expected failure")
	}
	return err
}
