package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/internal/module/repository"
	"github.com/instructure/canvas-android-sub046/pkg/result"
	"github.com/instructure/canvas-android-sub046/pkg/sqlite"
)

type implRepository struct {
	db *sql.DB
}

// New returns a LocalDataSource on the shared cache database.
func New(db *sql.DB) repository.LocalDataSource {
	return &implRepository{db: db}
}

func (r *implRepository) Modules(ctx context.Context, sc model.Scope, courseID int64) result.Result[[]model.Module] {
	modules, err := r.readModules(ctx, sc, courseID)
	if err != nil {
		return result.Fail[[]model.Module](result.Exception(err))
	}
	if len(modules) == 0 {
		return result.Success(modules)
	}

	items, err := r.readItems(ctx, sc, courseID)
	if err != nil {
		return result.Fail[[]model.Module](result.Exception(err))
	}
	for i := range modules {
		modules[i].Items = items[modules[i].ID]
		if modules[i].Items == nil {
			modules[i].Items = []model.ModuleItem{}
		}
	}
	return result.Success(modules)
}

func (r *implRepository) readModules(ctx context.Context, sc model.Scope, courseID int64) ([]model.Module, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, position, name, state, unlock_at, items_count FROM modules
		 WHERE domain = ? AND user_id = ? AND course_id = ? ORDER BY position`,
		sc.Domain, sc.UserID, courseID)
	if err != nil {
		return nil, fmt.Errorf("query modules: %w", err)
	}
	defer rows.Close()

	modules := []model.Module{}
	for rows.Next() {
		var (
			m        model.Module
			unlockAt sql.NullString
		)
		if err := rows.Scan(&m.ID, &m.Position, &m.Name, &m.State, &unlockAt, &m.ItemsCount); err != nil {
			return nil, fmt.Errorf("scan module: %w", err)
		}
		m.CourseID = courseID
		m.UnlockAt = sqlite.ParseNullTime(unlockAt)
		modules = append(modules, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate modules: %w", err)
	}
	return modules, nil
}

func (r *implRepository) readItems(ctx context.Context, sc model.Scope, courseID int64) (map[int64][]model.ModuleItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT module_id, id, position, title, type, indent, html_url, content_id FROM module_items
		 WHERE domain = ? AND user_id = ? AND course_id = ? ORDER BY module_id, position`,
		sc.Domain, sc.UserID, courseID)
	if err != nil {
		return nil, fmt.Errorf("query module items: %w", err)
	}
	defer rows.Close()

	items := map[int64][]model.ModuleItem{}
	for rows.Next() {
		var it model.ModuleItem
		if err := rows.Scan(&it.ModuleID, &it.ID, &it.Position, &it.Title, &it.Type, &it.Indent, &it.HTMLURL, &it.ContentID); err != nil {
			return nil, fmt.Errorf("scan module item: %w", err)
		}
		items[it.ModuleID] = append(items[it.ModuleID], it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate module items: %w", err)
	}
	return items, nil
}

// SaveModules replaces the cached modules and items of one course.
func (r *implRepository) SaveModules(ctx context.Context, sc model.Scope, courseID int64, modules []model.Module) error {
	return sqlite.WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		for _, table := range []string{"module_items", "modules"} {
			if _, err := tx.ExecContext(ctx,
				`DELETE FROM `+table+` WHERE domain = ? AND user_id = ? AND course_id = ?`,
				sc.Domain, sc.UserID, courseID); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		seen := make(map[int64]bool, len(modules))
		for _, m := range modules {
			if seen[m.ID] {
				continue
			}
			seen[m.ID] = true
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO modules (domain, user_id, course_id, id, position, name, state, unlock_at, items_count)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				sc.Domain, sc.UserID, courseID, m.ID, m.Position, m.Name, m.State, sqlite.NullTime(m.UnlockAt), m.ItemsCount); err != nil {
				return fmt.Errorf("insert module %d: %w", m.ID, err)
			}
			for _, it := range m.Items {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO module_items (domain, user_id, course_id, module_id, id, position, title, type, indent, html_url, content_id)
					 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
					sc.Domain, sc.UserID, courseID, m.ID, it.ID, it.Position, it.Title, it.Type, it.Indent, it.HTMLURL, it.ContentID); err != nil {
					return fmt.Errorf("insert module item %d: %w", it.ID, err)
				}
			}
		}
		return nil
	})
}
