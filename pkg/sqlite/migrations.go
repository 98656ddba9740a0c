package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// migrations are applied in order; index+1 is the schema version. Append
// only.
var migrations = []string{
	`CREATE TABLE courses (
		domain            TEXT    NOT NULL,
		user_id           INTEGER NOT NULL,
		id                INTEGER NOT NULL,
		position          INTEGER NOT NULL,
		name              TEXT    NOT NULL,
		course_code       TEXT    NOT NULL DEFAULT '',
		workflow_state    TEXT    NOT NULL DEFAULT '',
		start_at          TEXT,
		end_at            TEXT,
		restrict_to_dates INTEGER NOT NULL DEFAULT 0,
		access_restricted INTEGER NOT NULL DEFAULT 0,
		is_favorite       INTEGER NOT NULL DEFAULT 0,
		term              TEXT,
		sections          TEXT,
		enrollments       TEXT,
		PRIMARY KEY (domain, user_id, id)
	)`,
	`CREATE TABLE user_groups (
		domain      TEXT    NOT NULL,
		user_id     INTEGER NOT NULL,
		id          INTEGER NOT NULL,
		position    INTEGER NOT NULL,
		name        TEXT    NOT NULL,
		course_id   INTEGER NOT NULL DEFAULT 0,
		concluded   INTEGER NOT NULL DEFAULT 0,
		is_favorite INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (domain, user_id, id)
	)`,
	`CREATE TABLE modules (
		domain      TEXT    NOT NULL,
		user_id     INTEGER NOT NULL,
		course_id   INTEGER NOT NULL,
		id          INTEGER NOT NULL,
		position    INTEGER NOT NULL,
		name        TEXT    NOT NULL,
		state       TEXT    NOT NULL DEFAULT '',
		unlock_at   TEXT,
		items_count INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (domain, user_id, course_id, id)
	)`,
	`CREATE TABLE module_items (
		domain     TEXT    NOT NULL,
		user_id    INTEGER NOT NULL,
		course_id  INTEGER NOT NULL,
		module_id  INTEGER NOT NULL,
		id         INTEGER NOT NULL,
		position   INTEGER NOT NULL,
		title      TEXT    NOT NULL,
		type       TEXT    NOT NULL DEFAULT '',
		indent     INTEGER NOT NULL DEFAULT 0,
		html_url   TEXT    NOT NULL DEFAULT '',
		content_id INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (domain, user_id, course_id, module_id, id)
	)`,
	`CREATE TABLE calendar_filters (
		domain      TEXT    NOT NULL,
		user_id     INTEGER NOT NULL,
		observee_id INTEGER NOT NULL DEFAULT 0,
		filters     TEXT    NOT NULL,
		updated_at  TEXT    NOT NULL,
		PRIMARY KEY (domain, user_id, observee_id)
	)`,
	`CREATE TABLE course_sync_settings (
		domain     TEXT    NOT NULL,
		user_id    INTEGER NOT NULL,
		course_id  INTEGER NOT NULL,
		full_sync  INTEGER NOT NULL DEFAULT 0,
		updated_at TEXT    NOT NULL,
		PRIMARY KEY (domain, user_id, course_id)
	)`,
	`CREATE TABLE environment_feature_flags (
		domain     TEXT    NOT NULL,
		user_id    INTEGER NOT NULL,
		flags      TEXT    NOT NULL,
		updated_at TEXT    NOT NULL,
		PRIMARY KEY (domain, user_id)
	)`,
}

// Migrate brings db up to the latest schema version. Each version runs in
// its own transaction together with its schema_migrations row.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version    INTEGER PRIMARY KEY,
		applied_at TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("sqlite: create schema_migrations: %w", err)
	}

	current, err := Version(ctx, db)
	if err != nil {
		return err
	}

	for i := current; i < len(migrations); i++ {
		version := i + 1
		stmt := migrations[i]
		err := WithTransaction(ctx, db, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx,
				`INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)`,
				version, time.Now().UTC().Format(time.RFC3339))
			return err
		})
		if err != nil {
			return fmt.Errorf("sqlite: migration %d: %w", version, err)
		}
	}
	return nil
}

// Version returns the applied schema version, 0 for a fresh database.
func Version(ctx context.Context, db *sql.DB) (int, error) {
	var version sql.NullInt64
	if err := db.QueryRowContext(ctx, `SELECT MAX(version) FROM schema_migrations`).Scan(&version); err != nil {
		return 0, fmt.Errorf("sqlite: read schema version: %w", err)
	}
	return int(version.Int64), nil
}

// LatestVersion is the version Migrate converges to.
func LatestVersion() int { return len(migrations) }
