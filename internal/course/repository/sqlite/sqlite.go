package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/instructure/canvas-android-sub046/internal/course/repository"
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

const selectCourses = `SELECT id, name, course_code, workflow_state, start_at, end_at,
	restrict_to_dates, access_restricted, is_favorite, term, sections, enrollments
	FROM courses WHERE domain = ? AND user_id = ? ORDER BY position`

func (r *implRepository) Courses(ctx context.Context, sc model.Scope) result.Result[[]model.Course] {
	rows, err := r.db.QueryContext(ctx, selectCourses, sc.Domain, sc.UserID)
	if err != nil {
		return result.Fail[[]model.Course](result.Exception(fmt.Errorf("query courses: %w", err)))
	}
	defer rows.Close()

	courses := []model.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return result.Fail[[]model.Course](result.Exception(err))
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return result.Fail[[]model.Course](result.Exception(fmt.Errorf("iterate courses: %w", err)))
	}
	return result.Success(courses)
}

func scanCourse(rows *sql.Rows) (model.Course, error) {
	var (
		c                                       model.Course
		startAt, endAt, term, sections, enrolls sql.NullString
		restrict, restricted, favorite          int
	)
	if err := rows.Scan(&c.ID, &c.Name, &c.CourseCode, &c.WorkflowState, &startAt, &endAt,
		&restrict, &restricted, &favorite, &term, &sections, &enrolls); err != nil {
		return c, fmt.Errorf("scan course: %w", err)
	}
	c.StartAt = sqlite.ParseNullTime(startAt)
	c.EndAt = sqlite.ParseNullTime(endAt)
	c.RestrictToCourseDates = restrict == 1
	c.AccessRestrictedByDate = restricted == 1
	c.IsFavorite = favorite == 1

	if term.Valid && term.String != "" {
		c.Term = &model.Term{}
		if err := json.Unmarshal([]byte(term.String), c.Term); err != nil {
			return c, fmt.Errorf("decode term of course %d: %w", c.ID, err)
		}
	}
	if err := unmarshalList(sections, &c.Sections); err != nil {
		return c, fmt.Errorf("decode sections of course %d: %w", c.ID, err)
	}
	if err := unmarshalList(enrolls, &c.Enrollments); err != nil {
		return c, fmt.Errorf("decode enrollments of course %d: %w", c.ID, err)
	}
	return c, nil
}

func unmarshalList(s sql.NullString, out any) error {
	if !s.Valid || s.String == "" {
		return nil
	}
	return json.Unmarshal([]byte(s.String), out)
}

func marshalNull(v any, empty bool) (sql.NullString, error) {
	if empty {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

// SaveCourses replaces every cached course of sc.
func (r *implRepository) SaveCourses(ctx context.Context, sc model.Scope, courses []model.Course) error {
	return sqlite.WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM courses WHERE domain = ? AND user_id = ?`, sc.Domain, sc.UserID); err != nil {
			return fmt.Errorf("clear courses: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `INSERT INTO courses (domain, user_id, id, position, name, course_code,
			workflow_state, start_at, end_at, restrict_to_dates, access_restricted, is_favorite, term, sections, enrollments)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare course insert: %w", err)
		}
		defer stmt.Close()

		seen := make(map[int64]bool, len(courses))
		for i, c := range courses {
			// Pages can shift between requests; the first copy wins.
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			term, err := marshalNull(c.Term, c.Term == nil)
			if err != nil {
				return fmt.Errorf("encode term of course %d: %w", c.ID, err)
			}
			sections, err := marshalNull(c.Sections, len(c.Sections) == 0)
			if err != nil {
				return fmt.Errorf("encode sections of course %d: %w", c.ID, err)
			}
			enrolls, err := marshalNull(c.Enrollments, len(c.Enrollments) == 0)
			if err != nil {
				return fmt.Errorf("encode enrollments of course %d: %w", c.ID, err)
			}
			if _, err := stmt.ExecContext(ctx, sc.Domain, sc.UserID, c.ID, i, c.Name, c.CourseCode,
				c.WorkflowState, sqlite.NullTime(c.StartAt), sqlite.NullTime(c.EndAt),
				sqlite.Bool(c.RestrictToCourseDates), sqlite.Bool(c.AccessRestrictedByDate), sqlite.Bool(c.IsFavorite),
				term, sections, enrolls); err != nil {
				return fmt.Errorf("insert course %d: %w", c.ID, err)
			}
		}
		return nil
	})
}

func (r *implRepository) SetFavorite(ctx context.Context, sc model.Scope, courseID int64, favorite bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE courses SET is_favorite = ? WHERE domain = ? AND user_id = ? AND id = ?`,
		sqlite.Bool(favorite), sc.Domain, sc.UserID, courseID)
	if err != nil {
		return fmt.Errorf("update course %d favorite: %w", courseID, err)
	}
	return nil
}
