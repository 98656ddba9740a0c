package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/instructure/canvas-android-sub046/pkg/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(context.Background(), sqlite.Config{Path: filepath.Join(t.TempDir(), "cache.db")})
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenMigrates(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	v, err := sqlite.Version(ctx, db)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v != sqlite.LatestVersion() {
		t.Errorf("expected version %d, got %d", sqlite.LatestVersion(), v)
	}

	// Re-running is a no-op.
	if err := sqlite.Migrate(ctx, db); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}
	if v2, _ := sqlite.Version(ctx, db); v2 != v {
		t.Errorf("version moved from %d to %d", v, v2)
	}
}

func TestWithTransaction(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	insert := func(tx *sql.Tx, id int) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO course_sync_settings (domain, user_id, course_id, full_sync, updated_at) VALUES ('d', 1, ?, 1, 'now')`, id)
		return err
	}
	count := func() int {
		var n int
		db.QueryRowContext(ctx, `SELECT COUNT(*) FROM course_sync_settings`).Scan(&n)
		return n
	}

	t.Run("Commit", func(t *testing.T) {
		err := sqlite.WithTransaction(ctx, db, func(tx *sql.Tx) error { return insert(tx, 1) })
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if count() != 1 {
			t.Errorf("expected 1 row")
		}
	})

	t.Run("Rollback On Error", func(t *testing.T) {
		boom := errors.New("boom")
		err := sqlite.WithTransaction(ctx, db, func(tx *sql.Tx) error {
			if err := insert(tx, 2); err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		if count() != 1 {
			t.Errorf("expected rollback to leave 1 row, got %d", count())
		}
	})
}

func TestNullTime(t *testing.T) {
	if sqlite.NullTime(nil).Valid {
		t.Errorf("nil time must be NULL")
	}
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	back := sqlite.ParseNullTime(sqlite.NullTime(&now))
	if back == nil || !back.Equal(now) {
		t.Errorf("round trip lost the value: %v", back)
	}
	if sqlite.ParseNullTime(sql.NullString{String: "garbage", Valid: true}) != nil {
		t.Errorf("garbage must read as nil")
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := sqlite.Open(context.Background(), sqlite.Config{}); err == nil {
		t.Errorf("expected error for empty path")
	}
}
