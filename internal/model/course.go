package model

import "time"

// Course workflow states.
const (
	CourseStateAvailable   = "available"
	CourseStateCompleted   = "completed"
	CourseStateUnpublished = "unpublished"
	CourseStateDeleted     = "deleted"
)

// Enrollment states.
const (
	EnrollmentStateActive          = "active"
	EnrollmentStateInvited         = "invited"
	EnrollmentStateCreationPending = "creation_pending"
	EnrollmentStateDeleted         = "deleted"
)

// Term is an enrollment term.
type Term struct {
	ID      int64      `json:"id"`
	Name    string     `json:"name"`
	StartAt *time.Time `json:"start_at,omitempty"`
	EndAt   *time.Time `json:"end_at,omitempty"`
}

// Section is a course section. Its dates only count when
// RestrictToSectionDates is set.
type Section struct {
	ID                     int64      `json:"id"`
	Name                   string     `json:"name"`
	StartAt                *time.Time `json:"start_at,omitempty"`
	EndAt                  *time.Time `json:"end_at,omitempty"`
	RestrictToSectionDates bool       `json:"restrict_enrollments_to_section_dates"`
}

// Enrollment is the caller's enrollment in a course.
type Enrollment struct {
	Type  string `json:"type"`
	Role  string `json:"role"`
	State string `json:"enrollment_state"`
}

// Course is a Canvas course as cached locally.
type Course struct {
	ID                     int64        `json:"id"`
	Name                   string       `json:"name"`
	CourseCode             string       `json:"course_code"`
	WorkflowState          string       `json:"workflow_state"`
	StartAt                *time.Time   `json:"start_at,omitempty"`
	EndAt                  *time.Time   `json:"end_at,omitempty"`
	RestrictToCourseDates  bool         `json:"restrict_enrollments_to_course_dates"`
	AccessRestrictedByDate bool         `json:"access_restricted_by_date"`
	IsFavorite             bool         `json:"is_favorite"`
	Term                   *Term        `json:"term,omitempty"`
	Sections               []Section    `json:"sections"`
	Enrollments            []Enrollment `json:"enrollments"`
}

func (c Course) IsNotDeleted() bool { return c.WorkflowState != CourseStateDeleted }
func (c Course) IsPublished() bool  { return c.WorkflowState != CourseStateUnpublished }
func (c Course) IsCompleted() bool  { return c.WorkflowState == CourseStateCompleted }

func (c Course) hasEnrollmentState(state string) bool {
	for _, e := range c.Enrollments {
		if e.State == state {
			return true
		}
	}
	return false
}

func (c Course) HasActiveEnrollment() bool { return c.hasEnrollmentState(EnrollmentStateActive) }
func (c Course) IsInvited() bool           { return c.hasEnrollmentState(EnrollmentStateInvited) }
func (c Course) IsEnrollmentDeleted() bool { return c.hasEnrollmentState(EnrollmentStateDeleted) }
func (c Course) IsCreationPending() bool   { return c.hasEnrollmentState(EnrollmentStateCreationPending) }

func (c Course) overrideSections() []Section {
	var out []Section
	for _, s := range c.Sections {
		if s.RestrictToSectionDates {
			out = append(out, s)
		}
	}
	return out
}

func (c Course) termDates() (start, end *time.Time) {
	if c.Term == nil {
		return nil, nil
	}
	return c.Term.StartAt, c.Term.EndAt
}

// withinDates treats a missing bound as open.
func withinDates(start, end *time.Time, now time.Time) bool {
	if start != nil && !now.After(*start) {
		return false
	}
	if end != nil && !now.Before(*end) {
		return false
	}
	return true
}

func before(t *time.Time, now time.Time) bool { return t != nil && t.Before(now) }
func after(t *time.Time, now time.Time) bool  { return t != nil && t.After(now) }

// IsCurrentEnrolment reports whether the course is running at now. Section
// date overrides win over course dates, which win over term dates.
func (c Course) IsCurrentEnrolment(now time.Time) bool {
	if c.AccessRestrictedByDate || c.IsCompleted() {
		return false
	}
	if sections := c.overrideSections(); len(sections) > 0 {
		for _, s := range sections {
			if withinDates(s.StartAt, s.EndAt, now) {
				return true
			}
		}
		return false
	}
	if c.RestrictToCourseDates {
		return withinDates(c.StartAt, c.EndAt, now)
	}
	start, end := c.termDates()
	return withinDates(start, end, now)
}

// IsPastEnrolment reports whether the course has ended. A completed course
// is always past.
func (c Course) IsPastEnrolment(now time.Time) bool {
	if c.AccessRestrictedByDate {
		return false
	}
	if c.IsCompleted() {
		return true
	}
	if sections := c.overrideSections(); len(sections) > 0 {
		for _, s := range sections {
			if before(s.EndAt, now) {
				return true
			}
		}
		return false
	}
	if c.RestrictToCourseDates {
		return before(c.EndAt, now)
	}
	_, end := c.termDates()
	return before(end, now)
}

// IsFutureEnrolment reports whether the course has not started yet. A
// pending enrollment is always future.
func (c Course) IsFutureEnrolment(now time.Time) bool {
	if c.AccessRestrictedByDate || c.IsCompleted() {
		return false
	}
	if c.IsCreationPending() {
		return true
	}
	if sections := c.overrideSections(); len(sections) > 0 {
		for _, s := range sections {
			if after(s.StartAt, now) {
				return true
			}
		}
		return false
	}
	if c.RestrictToCourseDates {
		return after(c.StartAt, now)
	}
	start, _ := c.termDates()
	return after(start, now)
}

// IsValidTerm reports whether the term (if any) has not ended.
func (c Course) IsValidTerm(now time.Time) bool {
	if c.Term == nil || c.Term.EndAt == nil {
		return true
	}
	return c.Term.EndAt.After(now)
}
