package sqlite

import (
	"database/sql"
	"time"
)

// NullTime converts an optional time to a nullable RFC3339 column value.
func NullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(time.RFC3339), Valid: true}
}

// ParseNullTime is the inverse of NullTime. Unparseable values read as nil.
func ParseNullTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// Bool converts a bool to the 0/1 integer stored in SQLite.
func Bool(b bool) int {
	if b {
		return 1
	}
	return 0
}
