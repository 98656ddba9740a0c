package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/instructure/canvas-android-sub046/internal/group/repository"
	groupSQLite "github.com/instructure/canvas-android-sub046/internal/group/repository/sqlite"
	"github.com/instructure/canvas-android-sub046/internal/model"
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
	return groupSQLite.New(db)
}

func TestGroups(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	empty, err := repo.Groups(ctx, sc).Unwrap()
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty slice, got %v (%v)", empty, err)
	}

	groups := []model.Group{
		{ID: 3, Name: "Lab partners", CourseID: 10, IsFavorite: true},
		{ID: 1, Name: "Chess club", Concluded: true},
	}
	if err := repo.SaveGroups(ctx, sc, groups); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.SetFavorite(ctx, sc, 1, true); err != nil {
		t.Fatalf("set favorite: %v", err)
	}

	got, err := repo.Groups(ctx, sc).Unwrap()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 2 || got[0].ID != 3 || got[1].ID != 1 {
		t.Fatalf("unexpected order %+v", got)
	}
	if got[0].CourseID != 10 || !got[1].Concluded || !got[1].IsFavorite {
		t.Errorf("fields lost: %+v", got)
	}
}
