package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/instructure/canvas-android-sub046/internal/coursesync"
	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/pkg/result"
)

func (uc *implUseCase) Sync(ctx context.Context, sc model.Scope, input coursesync.SyncInput) (coursesync.SyncOutput, error) {
	if !uc.flags.OfflineEnabled(ctx, sc) {
		return coursesync.SyncOutput{}, coursesync.ErrOfflineDisabled
	}

	targets := uniqueIDs(input.CourseIDs)
	if len(targets) == 0 {
		ids, err := uc.repo.SyncedCourseIDs(ctx, sc).Unwrap()
		if err != nil {
			uc.l.Errorf(ctx, "coursesync.usecase.Sync: read synced ids: %v", err)
			return coursesync.SyncOutput{}, err
		}
		targets = ids
	}
	out := coursesync.SyncOutput{Synced: []int64{}, Skipped: []int64{}, Failed: []coursesync.CourseFailure{}}
	if len(targets) == 0 {
		return out, nil
	}

	courses, err := uc.courses.Courses(ctx, sc, true).Unwrap()
	if err != nil {
		uc.l.Errorf(ctx, "coursesync.usecase.Sync: refresh courses: %v", err)
		return coursesync.SyncOutput{}, fmt.Errorf("%w: %w", coursesync.ErrCourseListFailed, err)
	}
	known := make(map[int64]bool, len(courses))
	for _, c := range courses {
		known[c.ID] = true
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(uc.concurrency)
	for _, id := range targets {
		if !known[id] {
			out.Skipped = append(out.Skipped, id)
			continue
		}
		g.Go(func() error {
			_, err := uc.modules.Modules(ctx, sc, id, true).Unwrap()

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				uc.l.Warnf(ctx, "coursesync.usecase.Sync: course %d: %v", id, err)
				f := result.AsFailure(err)
				out.Failed = append(out.Failed, coursesync.CourseFailure{CourseID: id, Kind: f.Kind.String(), Message: f.Error()})
				return nil
			}
			out.Synced = append(out.Synced, id)
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(out.Synced, func(i, j int) bool { return out.Synced[i] < out.Synced[j] })
	sort.Slice(out.Failed, func(i, j int) bool { return out.Failed[i].CourseID < out.Failed[j].CourseID })
	uc.l.Infof(ctx, "coursesync.usecase.Sync: synced=%d skipped=%d failed=%d", len(out.Synced), len(out.Skipped), len(out.Failed))
	return out, nil
}

// uniqueIDs drops repeats, keeping first-seen order.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func (uc *implUseCase) SetSynced(ctx context.Context, sc model.Scope, input coursesync.SetSyncedInput) (coursesync.SetSyncedOutput, error) {
	if input.CourseID <= 0 {
		return coursesync.SetSyncedOutput{}, coursesync.ErrInvalidCourseID
	}

	if !input.Synced {
		if err := uc.repo.DeleteSettings(ctx, sc, input.CourseID); err != nil {
			uc.l.Errorf(ctx, "coursesync.usecase.SetSynced: %v", err)
			return coursesync.SetSyncedOutput{}, err
		}
		return coursesync.SetSyncedOutput{}, nil
	}

	settings := model.CourseSyncSettings{CourseID: input.CourseID, FullSync: input.FullSync, UpdatedAt: uc.now().UTC()}
	if err := uc.repo.SaveSettings(ctx, sc, settings); err != nil {
		uc.l.Errorf(ctx, "coursesync.usecase.SetSynced: %v", err)
		return coursesync.SetSyncedOutput{}, err
	}
	return coursesync.SetSyncedOutput{Settings: &settings}, nil
}
