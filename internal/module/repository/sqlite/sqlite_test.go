package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/internal/module/repository"
	moduleSQLite "github.com/instructure/canvas-android-sub046/internal/module/repository/sqlite"
	"github.com/instructure/canvas-android-sub046/pkg/sqlite"
)

var sc = model.Scope{UserID: 1, Domain: "school.instructure.com"}

func newRepo(t *testing.T) repository.LocalDataSource {
	t.Helper()
	db, err := sqlite.Open(context.Background(), sqlite.Config{Path: filepath.Join(t.TempDir(), "cache.db")})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return moduleSQLite.New(db)
}

func TestModules(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	t.Run("Miss is empty", func(t *testing.T) {
		got, err := repo.Modules(ctx, sc, 10).Unwrap()
		if err != nil || got == nil || len(got) != 0 {
			t.Errorf("expected empty slice, got %v (%v)", got, err)
		}
	})

	t.Run("Round trip groups items by module", func(t *testing.T) {
		modules := []model.Module{
			{ID: 1, Position: 1, Name: "Week 1", ItemsCount: 2, Items: []model.ModuleItem{
				{ID: 11, ModuleID: 1, Position: 1, Title: "Intro", Type: "Page"},
				{ID: 12, ModuleID: 1, Position: 2, Title: "Quiz", Type: "Quiz", Indent: 1},
			}},
			{ID: 2, Position: 2, Name: "Week 2"},
		}
		if err := repo.SaveModules(ctx, sc, 10, modules); err != nil {
			t.Fatalf("save: %v", err)
		}
		got, err := repo.Modules(ctx, sc, 10).Unwrap()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if len(got) != 2 || len(got[0].Items) != 2 || len(got[1].Items) != 0 {
			t.Fatalf("unexpected modules %+v", got)
		}
		if got[0].Items[1].Title != "Quiz" || got[0].Items[1].Indent != 1 || got[0].CourseID != 10 {
			t.Errorf("fields lost: %+v", got[0])
		}
	})

	t.Run("Other courses untouched", func(t *testing.T) {
		if err := repo.SaveModules(ctx, sc, 20, []model.Module{{ID: 3, Name: "Other"}}); err != nil {
			t.Fatalf("save: %v", err)
		}
		got, _ := repo.Modules(ctx, sc, 10).Unwrap()
		if len(got) != 2 {
			t.Errorf("course 10 lost modules: %+v", got)
		}
	})
}
