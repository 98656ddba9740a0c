package result_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/instructure/canvas-android-sub046/pkg/result"
)

func TestResult(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r := result.Success([]int{1, 2})
		if !r.IsSuccess() || r.IsFail() {
			t.Fatalf("expected success")
		}
		v, ok := r.Value()
		if !ok || len(v) != 2 {
			t.Errorf("unexpected value %v", v)
		}
		if _, ok := r.Failure(); ok {
			t.Errorf("success must not carry a failure")
		}
	})

	t.Run("Fail", func(t *testing.T) {
		r := result.Fail[int](result.Network("offline", nil))
		if !r.IsFail() {
			t.Fatalf("expected failure")
		}
		if _, ok := r.Value(); ok {
			t.Errorf("failure must not carry a value")
		}
		_, err := r.Unwrap()
		if !errors.Is(err, result.ErrNetwork) {
			t.Errorf("expected network error, got %v", err)
		}
		if r.OrDefault(7) != 7 {
			t.Errorf("expected default")
		}
	})

	t.Run("Fail Nil Becomes Exception", func(t *testing.T) {
		r := result.Fail[string](nil)
		f, ok := r.Failure()
		if !ok || f.Kind != result.KindException {
			t.Errorf("expected exception, got %+v", f)
		}
	})

	t.Run("Map", func(t *testing.T) {
		r := result.Map(result.Success(3), strconv.Itoa)
		if v, _ := r.Value(); v != "3" {
			t.Errorf("expected \"3\", got %q", v)
		}
		failed := result.Map(result.Fail[int](result.Authorization("nope")), strconv.Itoa)
		if _, err := failed.Unwrap(); !errors.Is(err, result.ErrAuthorization) {
			t.Errorf("expected failure to pass through, got %v", err)
		}
	})

	t.Run("FromError", func(t *testing.T) {
		r := result.FromError(0, errors.New("boom"))
		f, _ := r.Failure()
		if f == nil || f.Kind != result.KindException {
			t.Fatalf("expected exception, got %+v", f)
		}
		kept := result.FromError(0, error(result.Authorization("x")))
		if f, _ := kept.Failure(); f.Kind != result.KindAuthorization {
			t.Errorf("expected failure kind to be kept, got %v", f.Kind)
		}
	})
}

func TestHTTPStatus(t *testing.T) {
	cases := map[int]result.Kind{
		401: result.KindAuthorization,
		403: result.KindAuthorization,
		404: result.KindNetwork,
		500: result.KindNetwork,
	}
	for status, want := range cases {
		f := result.HTTPStatus(status, "")
		if f.Kind != want {
			t.Errorf("status %d: expected %v, got %v", status, want, f.Kind)
		}
		if f.StatusCode != status {
			t.Errorf("status %d not kept", status)
		}
	}
}

func TestFailureError(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	f := result.Network("request failed", cause)
	if !errors.Is(f, cause) {
		t.Errorf("expected cause to be reachable through Unwrap")
	}
	if errors.Is(f, result.ErrException) {
		t.Errorf("network failure must not match exception")
	}
	if f.Error() != "network failure: request failed: dial tcp: refused" {
		t.Errorf("unexpected message %q", f.Error())
	}
}
