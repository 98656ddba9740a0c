package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/instructure/canvas-android-sub046/internal/dashboard"
	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/internal/offline"
	"github.com/instructure/canvas-android-sub046/pkg/connectivity"
	"github.com/instructure/canvas-android-sub046/pkg/result"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockCourses struct {
	res       result.Result[[]model.Course]
	favorite  result.Result[bool]
	favoredID int64
}

func (m *mockCourses) Courses(ctx context.Context, sc model.Scope, forceRefresh bool) result.Result[[]model.Course] {
	return m.res
}

func (m *mockCourses) SetFavorite(ctx context.Context, sc model.Scope, courseID int64, favorite bool) result.Result[bool] {
	m.favoredID = courseID
	return m.favorite
}

type mockGroups struct {
	res      result.Result[[]model.Group]
	favorite result.Result[bool]
}

func (m *mockGroups) Groups(ctx context.Context, sc model.Scope, forceRefresh bool) result.Result[[]model.Group] {
	return m.res
}

func (m *mockGroups) SetFavorite(ctx context.Context, sc model.Scope, groupID int64, favorite bool) result.Result[bool] {
	return m.favorite
}

type mockSynced struct{ ids []int64 }

func (m *mockSynced) Settings(ctx context.Context, sc model.Scope) result.Result[[]model.CourseSyncSettings] {
	return result.Success([]model.CourseSyncSettings{})
}

func (m *mockSynced) SyncedCourseIDs(ctx context.Context, sc model.Scope) result.Result[[]int64] {
	return result.Success(m.ids)
}

func (m *mockSynced) SaveSettings(ctx context.Context, sc model.Scope, s model.CourseSyncSettings) error {
	return nil
}

func (m *mockSynced) DeleteSettings(ctx context.Context, sc model.Scope, courseID int64) error {
	return nil
}

var (
	sc  = model.Scope{UserID: 1, Domain: "d"}
	now = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
)

func day(n int) *time.Time {
	t := now.AddDate(0, 0, n)
	return &t
}

func newUseCase(courses *mockCourses, groups *mockGroups, online, offlineEnabled bool) *implUseCase {
	sel := offline.New(&mockLogger{}, connectivity.Static(online), offline.StaticFlags(offlineEnabled))
	uc := New(&mockLogger{}, sel, courses, groups, &mockSynced{ids: []int64{1}}).(*implUseCase)
	uc.now = func() time.Time { return now }
	return uc
}

func TestLoad(t *testing.T) {
	active := []model.Enrollment{{State: model.EnrollmentStateActive}}
	courses := &mockCourses{res: result.Success([]model.Course{
		{ID: 1, Name: "Current", Enrollments: active, Term: &model.Term{StartAt: day(-10), EndAt: day(10)}},
		{ID: 2, Name: "Past", Enrollments: active, WorkflowState: model.CourseStateCompleted},
		{ID: 3, Name: "Future", Enrollments: active, Term: &model.Term{StartAt: day(5)}},
		{ID: 4, Name: "Deleted", WorkflowState: model.CourseStateDeleted},
		{ID: 5, Name: "Invited", Enrollments: []model.Enrollment{{State: model.EnrollmentStateInvited}}},
	})}
	groups := &mockGroups{res: result.Success([]model.Group{
		{ID: 10, Name: "Current group", CourseID: 1},
		{ID: 11, Name: "Past group", CourseID: 2},
		{ID: 12, Name: "Account group"},
		{ID: 13, Name: "Concluded", Concluded: true},
	})}

	out, err := newUseCase(courses, groups, false, true).Load(context.Background(), sc, dashboard.LoadInput{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	ids := func(cs []model.Course) []int64 {
		var out []int64
		for _, c := range cs {
			out = append(out, c.ID)
		}
		return out
	}
	if got := ids(out.Current); len(got) != 1 || got[0] != 1 {
		t.Errorf("current = %v", got)
	}
	if got := ids(out.Past); len(got) != 1 || got[0] != 2 {
		t.Errorf("past = %v", got)
	}
	if got := ids(out.Future); len(got) != 1 || got[0] != 3 {
		t.Errorf("future = %v", got)
	}
	if len(out.Groups) != 2 || out.Groups[0].ID != 10 || out.Groups[1].ID != 12 {
		t.Errorf("groups = %+v", out.Groups)
	}
	if !out.OfflineEnabled || out.Online || len(out.SyncedCourseIDs) != 1 {
		t.Errorf("flags wrong: %+v", out)
	}
}

func TestLoadFailure(t *testing.T) {
	courses := &mockCourses{res: result.Fail[[]model.Course](result.HTTPStatus(401, ""))}
	_, err := newUseCase(courses, &mockGroups{}, true, false).Load(context.Background(), sc, dashboard.LoadInput{})
	if !errors.Is(err, result.ErrAuthorization) {
		t.Errorf("expected authorization error, got %v", err)
	}
}

func TestFavorite(t *testing.T) {
	ctx := context.Background()

	t.Run("Course", func(t *testing.T) {
		courses := &mockCourses{favorite: result.Success(true)}
		out, err := newUseCase(courses, &mockGroups{}, true, false).FavoriteCourse(ctx, sc, dashboard.FavoriteInput{ID: 7})
		if err != nil || !out.IsFavorite || courses.favoredID != 7 {
			t.Errorf("unexpected %+v (%v)", out, err)
		}
	})

	t.Run("Group failure", func(t *testing.T) {
		groups := &mockGroups{favorite: result.Fail[bool](result.Network("down", nil))}
		_, err := newUseCase(&mockCourses{}, groups, true, false).UnfavoriteGroup(ctx, sc, dashboard.FavoriteInput{ID: 3})
		if !errors.Is(err, result.ErrNetwork) {
			t.Errorf("expected network error, got %v", err)
		}
	})

	t.Run("Invalid id", func(t *testing.T) {
		_, err := newUseCase(&mockCourses{}, &mockGroups{}, true, false).FavoriteGroup(ctx, sc, dashboard.FavoriteInput{})
		if !errors.Is(err, dashboard.ErrInvalidID) {
			t.Errorf("expected ErrInvalidID, got %v", err)
		}
	})
}
