package usecase

import (
	"context"
	"fmt"

	"github.com/instructure/canvas-android-sub046/internal/dashboard"
	"github.com/instructure/canvas-android-sub046/internal/model"
)

func (uc *implUseCase) Load(ctx context.Context, sc model.Scope, input dashboard.LoadInput) (dashboard.LoadOutput, error) {
	courses, err := uc.courses.Courses(ctx, sc, input.ForceRefresh).Unwrap()
	if err != nil {
		uc.l.Errorf(ctx, "dashboard.usecase.Load: courses: %v", err)
		return dashboard.LoadOutput{}, fmt.Errorf("load courses: %w", err)
	}

	groups, err := uc.groups.Groups(ctx, sc, input.ForceRefresh).Unwrap()
	if err != nil {
		uc.l.Errorf(ctx, "dashboard.usecase.Load: groups: %v", err)
		return dashboard.LoadOutput{}, fmt.Errorf("load groups: %w", err)
	}

	synced, err := uc.synced.SyncedCourseIDs(ctx, sc).Unwrap()
	if err != nil {
		uc.l.Errorf(ctx, "dashboard.usecase.Load: synced courses: %v", err)
		return dashboard.LoadOutput{}, fmt.Errorf("load synced courses: %w", err)
	}

	now := uc.now()
	out := dashboard.LoadOutput{
		Current:         []model.Course{},
		Past:            []model.Course{},
		Future:          []model.Course{},
		Groups:          []model.Group{},
		Courses:         make(map[int64]model.Course, len(courses)),
		SyncedCourseIDs: synced,
		OfflineEnabled:  uc.selector.OfflineEnabled(ctx, sc),
		Online:          uc.selector.IsOnline(ctx),
	}

	for _, c := range courses {
		if !c.IsNotDeleted() || c.IsInvited() || c.IsEnrollmentDeleted() {
			continue
		}
		current := c.IsCurrentEnrolment(now)
		future := c.IsFutureEnrolment(now)
		listed := false
		if current && c.HasActiveEnrollment() {
			out.Current = append(out.Current, c)
			listed = true
		}
		if c.IsPastEnrolment(now) && !current && !future {
			out.Past = append(out.Past, c)
			listed = true
		}
		if future && !current {
			out.Future = append(out.Future, c)
			listed = true
		}
		if listed {
			out.Courses[c.ID] = c
		}
	}

	for _, g := range groups {
		var course *model.Course
		if c, ok := out.Courses[g.CourseID]; ok {
			course = &c
		}
		if g.IsActive(course, now) {
			out.Groups = append(out.Groups, g)
		}
	}
	return out, nil
}
