package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/internal/module"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input module.ListInput) (module.ListOutput, error) {
	if input.CourseID <= 0 {
		return module.ListOutput{}, module.ErrInvalidCourseID
	}

	modules, err := uc.repo.Modules(ctx, sc, input.CourseID, input.ForceRefresh).Unwrap()
	if err != nil {
		uc.l.Errorf(ctx, "module.usecase.List: course %d: %v", input.CourseID, err)
		return module.ListOutput{}, fmt.Errorf("list modules of course %d: %w", input.CourseID, err)
	}

	sorted := make([]model.Module, len(modules))
	copy(sorted, modules)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })
	for i := range sorted {
		items := make([]model.ModuleItem, len(sorted[i].Items))
		copy(items, sorted[i].Items)
		sort.SliceStable(items, func(a, b int) bool { return items[a].Position < items[b].Position })
		sorted[i].Items = items
	}
	return module.ListOutput{Modules: sorted}, nil
}
