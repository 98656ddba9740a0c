package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/instructure/canvas-android-sub046/internal/featureflag/repository"
	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/pkg/result"
)

type implRepository struct {
	db  *sql.DB
	now func() time.Time
}

// New returns a LocalDataSource on the shared cache database.
func New(db *sql.DB) repository.LocalDataSource {
	return &implRepository{db: db, now: time.Now}
}

func (r *implRepository) EnvironmentFlags(ctx context.Context, sc model.Scope) result.Result[model.FeatureFlags] {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT flags FROM environment_feature_flags WHERE domain = ? AND user_id = ?`,
		sc.Domain, sc.UserID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return result.Success(model.FeatureFlags{})
	}
	if err != nil {
		return result.Fail[model.FeatureFlags](result.Exception(fmt.Errorf("read feature flags: %w", err)))
	}

	flags := model.FeatureFlags{}
	if err := json.Unmarshal([]byte(raw), &flags); err != nil {
		return result.Fail[model.FeatureFlags](result.Exception(fmt.Errorf("decode feature flags: %w", err)))
	}
	return result.Success(flags)
}

func (r *implRepository) SaveEnvironmentFlags(ctx context.Context, sc model.Scope, flags model.FeatureFlags) error {
	raw, err := json.Marshal(flags)
	if err != nil {
		return fmt.Errorf("encode feature flags: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO environment_feature_flags (domain, user_id, flags, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (domain, user_id) DO UPDATE SET flags = excluded.flags, updated_at = excluded.updated_at`,
		sc.Domain, sc.UserID, string(raw), r.now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save feature flags: %w", err)
	}
	return nil
}
