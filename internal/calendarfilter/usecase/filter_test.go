package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/instructure/canvas-android-sub046/internal/calendarfilter"
	filterSQLite "github.com/instructure/canvas-android-sub046/internal/calendarfilter/repository/sqlite"
	"github.com/instructure/canvas-android-sub046/internal/model"
	pkgLog "github.com/instructure/canvas-android-sub046/pkg/log"
	"github.com/instructure/canvas-android-sub046/pkg/sqlite"
)

func newUseCase(t *testing.T, limit int) calendarfilter.UseCase {
	t.Helper()
	db, err := sqlite.Open(context.Background(), sqlite.Config{Path: filepath.Join(t.TempDir(), "cache.db")})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(pkgLog.NewNop(), filterSQLite.New(db), limit)
}

func TestCalendarFilter(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: 1, Domain: "school.instructure.com"}

	t.Run("Miss is an empty set", func(t *testing.T) {
		out, err := newUseCase(t, 0).Get(ctx, sc, calendarfilter.GetInput{})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if out.Found || out.Filter.Filters == nil || len(out.Filter.Filters) != 0 {
			t.Errorf("expected empty miss, got %+v", out)
		}
	})

	t.Run("Save dedups, caps and round trips", func(t *testing.T) {
		uc := newUseCase(t, 3)
		saved, err := uc.Save(ctx, sc, calendarfilter.SaveInput{
			Filters: []string{"user_1", "course_2", "user_1", "group_3", "course_4"},
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		want := []string{"user_1", "course_2", "group_3"}
		if !reflect.DeepEqual(saved.Filter.Filters, want) {
			t.Errorf("saved %v, want %v", saved.Filter.Filters, want)
		}

		out, err := uc.Get(ctx, sc, calendarfilter.GetInput{})
		if err != nil || !out.Found || !reflect.DeepEqual(out.Filter.Filters, want) {
			t.Errorf("read back %+v (%v)", out, err)
		}
	})

	t.Run("Observee sets are separate", func(t *testing.T) {
		uc := newUseCase(t, 0)
		_, _ = uc.Save(ctx, sc, calendarfilter.SaveInput{ObserveeID: 9, Filters: []string{"course_1"}})
		out, _ := uc.Get(ctx, sc, calendarfilter.GetInput{})
		if out.Found {
			t.Errorf("own set must still be missing")
		}
	})

	t.Run("Invalid context code", func(t *testing.T) {
		_, err := newUseCase(t, 0).Save(ctx, sc, calendarfilter.SaveInput{Filters: []string{"account_1"}})
		if !errors.Is(err, calendarfilter.ErrInvalidContext) {
			t.Errorf("expected ErrInvalidContext, got %v", err)
		}
	})
}
