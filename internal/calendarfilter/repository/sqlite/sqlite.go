package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/instructure/canvas-android-sub046/internal/calendarfilter/repository"
	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/pkg/result"
)

type implRepository struct {
	db *sql.DB
}

// New returns a Repository on the shared cache database.
func New(db *sql.DB) repository.Repository {
	return &implRepository{db: db}
}

func (r *implRepository) Filter(ctx context.Context, sc model.Scope, observeeID int64) (result.Result[model.CalendarFilter], bool) {
	var raw, updatedAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT filters, updated_at FROM calendar_filters WHERE domain = ? AND user_id = ? AND observee_id = ?`,
		sc.Domain, sc.UserID, observeeID).Scan(&raw, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return result.Success(model.CalendarFilter{ObserveeID: observeeID, Filters: []string{}}), false
	}
	if err != nil {
		return result.Fail[model.CalendarFilter](result.Exception(fmt.Errorf("read calendar filter: %w", err))), false
	}

	filter := model.CalendarFilter{ObserveeID: observeeID, Filters: []string{}}
	if err := json.Unmarshal([]byte(raw), &filter.Filters); err != nil {
		return result.Fail[model.CalendarFilter](result.Exception(fmt.Errorf("decode calendar filter: %w", err))), false
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		filter.UpdatedAt = t
	}
	return result.Success(filter), true
}

func (r *implRepository) SaveFilter(ctx context.Context, sc model.Scope, filter model.CalendarFilter) error {
	filters := filter.Filters
	if filters == nil {
		filters = []string{}
	}
	raw, err := json.Marshal(filters)
	if err != nil {
		return fmt.Errorf("encode calendar filter: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO calendar_filters (domain, user_id, observee_id, filters, updated_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (domain, user_id, observee_id) DO UPDATE SET filters = excluded.filters, updated_at = excluded.updated_at`,
		sc.Domain, sc.UserID, filter.ObserveeID, string(raw), filter.UpdatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save calendar filter: %w", err)
	}
	return nil
}
