package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/instructure/canvas-android-sub046/internal/coursesync/repository"
	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/pkg/result"
	"github.com/instructure/canvas-android-sub046/pkg/sqlite"
)

type implRepository struct {
	db *sql.DB
}

// New returns a Repository on the shared cache database.
func New(db *sql.DB) repository.Repository {
	return &implRepository{db: db}
}

func (r *implRepository) Settings(ctx context.Context, sc model.Scope) result.Result[[]model.CourseSyncSettings] {
	rows, err := r.db.QueryContext(ctx,
		`SELECT course_id, full_sync, updated_at FROM course_sync_settings
		 WHERE domain = ? AND user_id = ? ORDER BY course_id`, sc.Domain, sc.UserID)
	if err != nil {
		return result.Fail[[]model.CourseSyncSettings](result.Exception(fmt.Errorf("query sync settings: %w", err)))
	}
	defer rows.Close()

	settings := []model.CourseSyncSettings{}
	for rows.Next() {
		var (
			s         model.CourseSyncSettings
			fullSync  int
			updatedAt string
		)
		if err := rows.Scan(&s.CourseID, &fullSync, &updatedAt); err != nil {
			return result.Fail[[]model.CourseSyncSettings](result.Exception(fmt.Errorf("scan sync settings: %w", err)))
		}
		s.FullSync = fullSync == 1
		if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
			s.UpdatedAt = t
		}
		settings = append(settings, s)
	}
	if err := rows.Err(); err != nil {
		return result.Fail[[]model.CourseSyncSettings](result.Exception(fmt.Errorf("iterate sync settings: %w", err)))
	}
	return result.Success(settings)
}

func (r *implRepository) SyncedCourseIDs(ctx context.Context, sc model.Scope) result.Result[[]int64] {
	return result.Map(r.Settings(ctx, sc), func(settings []model.CourseSyncSettings) []int64 {
		ids := make([]int64, 0, len(settings))
		for _, s := range settings {
			ids = append(ids, s.CourseID)
		}
		return ids
	})
}

func (r *implRepository) SaveSettings(ctx context.Context, sc model.Scope, s model.CourseSyncSettings) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO course_sync_settings (domain, user_id, course_id, full_sync, updated_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (domain, user_id, course_id) DO UPDATE SET full_sync = excluded.full_sync, updated_at = excluded.updated_at`,
		sc.Domain, sc.UserID, s.CourseID, sqlite.Bool(s.FullSync), s.UpdatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save sync settings of course %d: %w", s.CourseID, err)
	}
	return nil
}

func (r *implRepository) DeleteSettings(ctx context.Context, sc model.Scope, courseID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM course_sync_settings WHERE domain = ? AND user_id = ? AND course_id = ?`,
		sc.Domain, sc.UserID, courseID)
	if err != nil {
		return fmt.Errorf("delete sync settings of course %d: %w", courseID, err)
	}
	return nil
}
