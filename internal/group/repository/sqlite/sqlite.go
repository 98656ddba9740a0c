package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/instructure/canvas-android-sub046/internal/group/repository"
	"github.com/instructure/canvas-android-sub046/internal/model"
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

func (r *implRepository) Groups(ctx context.Context, sc model.Scope) result.Result[[]model.Group] {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, course_id, concluded, is_favorite FROM user_groups
		 WHERE domain = ? AND user_id = ? ORDER BY position`, sc.Domain, sc.UserID)
	if err != nil {
		return result.Fail[[]model.Group](result.Exception(fmt.Errorf("query groups: %w", err)))
	}
	defer rows.Close()

	groups := []model.Group{}
	for rows.Next() {
		var (
			g                   model.Group
			concluded, favorite int
		)
		if err := rows.Scan(&g.ID, &g.Name, &g.CourseID, &concluded, &favorite); err != nil {
			return result.Fail[[]model.Group](result.Exception(fmt.Errorf("scan group: %w", err)))
		}
		g.Concluded = concluded == 1
		g.IsFavorite = favorite == 1
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return result.Fail[[]model.Group](result.Exception(fmt.Errorf("iterate groups: %w", err)))
	}
	return result.Success(groups)
}

// SaveGroups replaces every cached group of sc.
func (r *implRepository) SaveGroups(ctx context.Context, sc model.Scope, groups []model.Group) error {
	return sqlite.WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM user_groups WHERE domain = ? AND user_id = ?`, sc.Domain, sc.UserID); err != nil {
			return fmt.Errorf("clear groups: %w", err)
		}
		seen := make(map[int64]bool, len(groups))
		for i, g := range groups {
			if seen[g.ID] {
				continue
			}
			seen[g.ID] = true
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO user_groups (domain, user_id, id, position, name, course_id, concluded, is_favorite)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				sc.Domain, sc.UserID, g.ID, i, g.Name, g.CourseID, sqlite.Bool(g.Concluded), sqlite.Bool(g.IsFavorite)); err != nil {
				return fmt.Errorf("insert group %d: %w", g.ID, err)
			}
		}
		return nil
	})
}

func (r *implRepository) SetFavorite(ctx context.Context, sc model.Scope, groupID int64, favorite bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE user_groups SET is_favorite = ? WHERE domain = ? AND user_id = ? AND id = ?`,
		sqlite.Bool(favorite), sc.Domain, sc.UserID, groupID)
	if err != nil {
		return fmt.Errorf("update group %d favorite: %w", groupID, err)
	}
	return nil
}
