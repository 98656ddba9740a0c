package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/instructure/canvas-android-sub046/internal/calendarfilter"
	"github.com/instructure/canvas-android-sub046/internal/model"
)

var contextTypes = []string{"user_", "course_", "group_"}

func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, input calendarfilter.GetInput) (calendarfilter.GetOutput, error) {
	res, found := uc.repo.Filter(ctx, sc, input.ObserveeID)
	filter, err := res.Unwrap()
	if err != nil {
		uc.l.Errorf(ctx, "calendarfilter.usecase.Get: %v", err)
		return calendarfilter.GetOutput{}, fmt.Errorf("read calendar filter: %w", err)
	}
	return calendarfilter.GetOutput{Filter: filter, Found: found}, nil
}

func (uc *implUseCase) Save(ctx context.Context, sc model.Scope, input calendarfilter.SaveInput) (calendarfilter.SaveOutput, error) {
	filters := make([]string, 0, len(input.Filters))
	seen := make(map[string]bool, len(input.Filters))
	for _, code := range input.Filters {
		code = strings.TrimSpace(code)
		if !validContextCode(code) {
			return calendarfilter.SaveOutput{}, fmt.Errorf("%w: %q", calendarfilter.ErrInvalidContext, code)
		}
		if seen[code] {
			continue
		}
		seen[code] = true
		filters = append(filters, code)
	}
	if uc.limit > 0 && len(filters) > uc.limit {
		filters = filters[:uc.limit]
	}

	filter := model.CalendarFilter{
		ObserveeID: input.ObserveeID,
		Filters:    filters,
		UpdatedAt:  uc.now().UTC(),
	}
	if err := uc.repo.SaveFilter(ctx, sc, filter); err != nil {
		uc.l.Errorf(ctx, "calendarfilter.usecase.Save: %v", err)
		return calendarfilter.SaveOutput{}, err
	}
	return calendarfilter.SaveOutput{Filter: filter}, nil
}

// validContextCode accepts Canvas context codes such as "course_12".
func validContextCode(code string) bool {
	for _, prefix := range contextTypes {
		if id, ok := strings.CutPrefix(code, prefix); ok {
			n, err := strconv.ParseInt(id, 10, 64)
			return err == nil && n > 0
		}
	}
	return false
}
