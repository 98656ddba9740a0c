// Package viewmodel is the state holder of the edit-dashboard screen.
package viewmodel

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/instructure/canvas-android-sub046/internal/dashboard"
	"github.com/instructure/canvas-android-sub046/internal/model"
	vm "github.com/instructure/canvas-android-sub046/internal/viewmodel"
	pkgLog "github.com/instructure/canvas-android-sub046/pkg/log"
)

// ViewModel owns one open dashboard editor. Every intent runs in its own
// goroutine inside the view model's scope.
type ViewModel struct {
	l    pkgLog.Logger
	uc   dashboard.UseCase
	sc   model.Scope
	msgs vm.Catalog
	now  func() time.Time

	scope  *vm.Scope
	store  *vm.Store[State]
	events *vm.Events[Event]

	mu     sync.Mutex
	data   dashboard.LoadOutput
	loaded bool
	query  string

	closeOnce sync.Once
}

// New creates the view model and starts the initial load.
func New(ctx context.Context, l pkgLog.Logger, uc dashboard.UseCase, sc model.Scope, msgs vm.Catalog) *ViewModel {
	v := &ViewModel{
		l:      l,
		uc:     uc,
		sc:     sc,
		msgs:   msgs,
		now:    time.Now,
		scope:  vm.NewScope(context.WithoutCancel(ctx)),
		store:  vm.NewStore(InitialState()),
		events: vm.NewEvents[Event](),
	}
	v.load(false)
	return v
}

// Store exposes the snapshot store for subscribers.
func (v *ViewModel) Store() *vm.Store[State] { return v.store }

// Events exposes the one-shot event stream.
func (v *ViewModel) Events() *vm.Events[Event] { return v.events }

// Snapshot returns the current state.
func (v *ViewModel) Snapshot() vm.Snapshot[State] { return v.store.Current() }

// Close cancels outstanding work and stops publishing. Results that arrive
// later are dropped.
func (v *ViewModel) Close() {
	v.closeOnce.Do(func() {
		v.scope.Close()
		v.store.Close()
		v.events.Close()
	})
}

// Dispatch routes an intent.
func (v *ViewModel) Dispatch(in Intent) error {
	switch in.Type {
	case IntentRefresh:
		v.Refresh()
	case IntentFilter:
		v.Filter(in.Query)
	case IntentToggleFavoriteCourse:
		return v.ToggleFavoriteCourse(in.ID)
	case IntentToggleFavoriteGroup:
		return v.ToggleFavoriteGroup(in.ID)
	case IntentSelectAllCourses:
		v.SetAllCourses(true)
	case IntentDeselectAllCourses:
		v.SetAllCourses(false)
	case IntentSelectAllGroups:
		v.SetAllGroups(true)
	case IntentDeselectAllGroups:
		v.SetAllGroups(false)
	default:
		return fmt.Errorf("%w: %q", dashboard.ErrUnsupportedIntent, in.Type)
	}
	return nil
}

// Refresh reloads from the network, keeping current items visible.
func (v *ViewModel) Refresh() {
	v.load(true)
}

func (v *ViewModel) load(forceRefresh bool) {
	v.store.Update(func(s State) State {
		if s.Status == StatusSuccess || s.Status == StatusEmpty {
			s.Refreshing = true
		} else {
			s.Status = StatusLoading
			s.Loading = true
			s.Error = ""
		}
		return s
	})

	v.scope.Launch(func(ctx context.Context) {
		out, err := v.uc.Load(ctx, v.sc, dashboard.LoadInput{ForceRefresh: forceRefresh})
		if !vm.Active(ctx) {
			return
		}
		if err != nil {
			v.l.Warnf(ctx, "dashboard.viewmodel.load: %v", err)
			v.loadFailed(err)
			return
		}

		v.mu.Lock()
		v.data = out
		v.loaded = true
		v.mu.Unlock()
		v.publish()
	})
}

// loadFailed keeps loaded items on screen and reports the failure as a
// snackbar. Without items the screen goes to the error state.
func (v *ViewModel) loadFailed(err error) {
	msg := v.msgs.ErrorText(err)
	snap, ok := v.store.Update(func(s State) State {
		if s.Refreshing {
			s.Refreshing = false
			return s
		}
		s.Status = StatusError
		s.Loading = false
		s.Error = msg
		s.Empty = nil
		return s
	})
	if ok && snap.State.Status != StatusError {
		v.events.Publish(Event{Type: EventSnackbar, Key: vm.ErrorKey(err), Message: msg})
	}
}

// Filter narrows the lists to names containing query.
func (v *ViewModel) Filter(query string) {
	v.mu.Lock()
	v.query = strings.TrimSpace(query)
	loaded := v.loaded
	v.mu.Unlock()
	if loaded {
		v.publish()
		return
	}
	v.store.Update(func(s State) State {
		s.Query = strings.TrimSpace(query)
		return s
	})
}

// ToggleFavoriteCourse flips the favorite flag at once and calls Canvas.
// A failed call flips it back.
func (v *ViewModel) ToggleFavoriteCourse(id int64) error {
	v.mu.Lock()
	c, ok := v.data.Courses[id]
	if !ok {
		v.mu.Unlock()
		return dashboard.ErrUnknownItem
	}
	if !v.favoritable(c) {
		v.mu.Unlock()
		return dashboard.ErrNotFavoritable
	}
	want := !c.IsFavorite
	v.setCourseFavoriteLocked(id, want)
	v.mu.Unlock()
	v.publish()

	v.scope.Launch(func(ctx context.Context) {
		in := dashboard.FavoriteInput{ID: id}
		var err error
		if want {
			_, err = v.uc.FavoriteCourse(ctx, v.sc, in)
		} else {
			_, err = v.uc.UnfavoriteCourse(ctx, v.sc, in)
		}
		v.finishToggle(ctx, err, want, func() { v.setCourseFavoriteLocked(id, !want) })
	})
	return nil
}

// ToggleFavoriteGroup is ToggleFavoriteCourse for groups.
func (v *ViewModel) ToggleFavoriteGroup(id int64) error {
	v.mu.Lock()
	idx := -1
	for i, g := range v.data.Groups {
		if g.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		v.mu.Unlock()
		return dashboard.ErrUnknownItem
	}
	want := !v.data.Groups[idx].IsFavorite
	v.setGroupFavoriteLocked(id, want)
	v.mu.Unlock()
	v.publish()

	v.scope.Launch(func(ctx context.Context) {
		in := dashboard.FavoriteInput{ID: id}
		var err error
		if want {
			_, err = v.uc.FavoriteGroup(ctx, v.sc, in)
		} else {
			_, err = v.uc.UnfavoriteGroup(ctx, v.sc, in)
		}
		v.finishToggle(ctx, err, want, func() { v.setGroupFavoriteLocked(id, !want) })
	})
	return nil
}

// SetAllCourses favorites (or unfavorites) every favoritable current and
// future course whose flag differs.
func (v *ViewModel) SetAllCourses(favorite bool) {
	v.mu.Lock()
	var ids []int64
	for _, list := range [][]model.Course{v.data.Current, v.data.Future} {
		for _, c := range list {
			c = v.data.Courses[c.ID]
			if c.IsFavorite != favorite && v.favoritable(c) {
				ids = append(ids, c.ID)
			}
		}
	}
	for _, id := range ids {
		v.setCourseFavoriteLocked(id, favorite)
	}
	v.mu.Unlock()

	v.runBulk(ids, favorite, func(ctx context.Context, in dashboard.FavoriteInput) error {
		var err error
		if favorite {
			_, err = v.uc.FavoriteCourse(ctx, v.sc, in)
		} else {
			_, err = v.uc.UnfavoriteCourse(ctx, v.sc, in)
		}
		return err
	}, v.setCourseFavoriteLocked)
}

// SetAllGroups favorites (or unfavorites) every group whose flag differs.
func (v *ViewModel) SetAllGroups(favorite bool) {
	v.mu.Lock()
	var ids []int64
	for _, g := range v.data.Groups {
		if g.IsFavorite != favorite {
			ids = append(ids, g.ID)
		}
	}
	for _, id := range ids {
		v.setGroupFavoriteLocked(id, favorite)
	}
	v.mu.Unlock()

	v.runBulk(ids, favorite, func(ctx context.Context, in dashboard.FavoriteInput) error {
		var err error
		if favorite {
			_, err = v.uc.FavoriteGroup(ctx, v.sc, in)
		} else {
			_, err = v.uc.UnfavoriteGroup(ctx, v.sc, in)
		}
		return err
	}, v.setGroupFavoriteLocked)
}

// runBulk publishes the already flipped items and issues one call per id.
// A failed call flips its own item back; a single confirmation is
// published once every call succeeded.
func (v *ViewModel) runBulk(ids []int64, favorite bool, call func(context.Context, dashboard.FavoriteInput) error, setLocked func(id int64, favorite bool)) {
	if len(ids) == 0 {
		return
	}
	v.publish()

	var (
		cmu       sync.Mutex
		succeeded int
	)
	for _, id := range ids {
		v.scope.Launch(func(ctx context.Context) {
			err := call(ctx, dashboard.FavoriteInput{ID: id})
			if !vm.Active(ctx) {
				return
			}
			if err != nil {
				v.finishToggle(ctx, err, favorite, func() { setLocked(id, !favorite) })
				return
			}
			cmu.Lock()
			succeeded++
			done := succeeded == len(ids)
			cmu.Unlock()
			if done {
				key := vm.MsgAllRemoved
				if favorite {
					key = vm.MsgAllAddedToDashboard
				}
				v.snackbar(key)
			}
		})
	}
}

func (v *ViewModel) finishToggle(ctx context.Context, err error, want bool, rollback func()) {
	if !vm.Active(ctx) {
		return
	}
	if err != nil {
		v.l.Warnf(ctx, "dashboard.viewmodel.toggle: %v", err)
		v.mu.Lock()
		rollback()
		v.mu.Unlock()
		v.publish()
		v.snackbar(vm.MsgErrorOccurred)
		return
	}
	if want {
		v.snackbar(vm.MsgAddedToDashboard)
	} else {
		v.snackbar(vm.MsgRemovedFromDashboard)
	}
}

func (v *ViewModel) snackbar(key vm.MessageKey) {
	v.events.Publish(Event{Type: EventSnackbar, Key: key, Message: v.msgs.Text(key)})
}

func (v *ViewModel) setCourseFavoriteLocked(id int64, favorite bool) {
	c, ok := v.data.Courses[id]
	if !ok {
		return
	}
	c.IsFavorite = favorite
	v.data.Courses[id] = c
}

func (v *ViewModel) setGroupFavoriteLocked(id int64, favorite bool) {
	groups := make([]model.Group, len(v.data.Groups))
	copy(groups, v.data.Groups)
	for i := range groups {
		if groups[i].ID == id {
			groups[i].IsFavorite = favorite
		}
	}
	v.data.Groups = groups
}

// favoritable matches the server rule: past courses and courses of an
// ended term cannot be favorited.
func (v *ViewModel) favoritable(c model.Course) bool {
	for _, p := range v.data.Past {
		if p.ID == c.ID {
			return false
		}
	}
	return c.IsValidTerm(v.now()) && c.IsNotDeleted() && c.IsPublished()
}

// publish rebuilds the state from the loaded data and the query.
func (v *ViewModel) publish() {
	v.mu.Lock()
	data := v.data
	query := v.query
	synced := make(map[int64]bool, len(data.SyncedCourseIDs))
	for _, id := range data.SyncedCourseIDs {
		synced[id] = true
	}
	current := v.courseItems(data.Current, query, synced, true)
	past := v.courseItems(data.Past, query, synced, false)
	future := v.courseItems(data.Future, query, synced, true)
	groups := groupItems(data, query)
	v.mu.Unlock()

	offlineMode := data.OfflineEnabled && !data.Online
	v.store.Update(func(s State) State {
		next := State{
			Status:      StatusSuccess,
			Query:       query,
			Current:     current,
			Past:        past,
			Future:      future,
			Groups:      groups,
			Online:      data.Online,
			OfflineNote: offlineMode,
		}
		if len(current)+len(past)+len(future)+len(groups) == 0 {
			next.Status = StatusEmpty
			next.Empty = v.emptyState(query != "", offlineMode)
		}
		return next
	})
}

func (v *ViewModel) emptyState(filtered, offlineMode bool) *Empty {
	switch {
	case filtered:
		return &Empty{Reason: EmptyFiltered, Title: v.msgs.Text(vm.MsgNoResultsTitle), Message: v.msgs.Text(vm.MsgNoResultsMessage)}
	case offlineMode:
		return &Empty{Reason: EmptyOffline, Title: v.msgs.Text(vm.MsgOfflineModeTitle), Message: v.msgs.Text(vm.MsgOfflineModeMessage)}
	default:
		return &Empty{Reason: EmptyNone, Title: v.msgs.Text(vm.MsgEmptyTitle), Message: v.msgs.Text(vm.MsgEmptyMessage)}
	}
}

func matches(name, query string) bool {
	return query == "" || strings.Contains(strings.ToLower(name), strings.ToLower(query))
}

func (v *ViewModel) courseItems(list []model.Course, query string, synced map[int64]bool, canFavorite bool) []CourseItem {
	items := []CourseItem{}
	now := v.now()
	for _, c := range list {
		c = v.data.Courses[c.ID]
		if !matches(c.Name, query) {
			continue
		}
		available := synced[c.ID]
		items = append(items, CourseItem{
			ID:               c.ID,
			Name:             c.Name,
			TermTitle:        termTitle(c),
			IsFavorite:       c.IsFavorite,
			Favoritable:      canFavorite && c.IsValidTerm(now) && c.IsNotDeleted() && c.IsPublished(),
			Openable:         c.IsNotDeleted() && c.IsPublished(),
			AvailableOffline: available,
			Enabled:          !v.data.OfflineEnabled || v.data.Online || available,
		})
	}
	return items
}

func groupItems(data dashboard.LoadOutput, query string) []GroupItem {
	items := []GroupItem{}
	for _, g := range data.Groups {
		if !matches(g.Name, query) {
			continue
		}
		item := GroupItem{ID: g.ID, Name: g.Name, IsFavorite: g.IsFavorite}
		if c, ok := data.Courses[g.CourseID]; ok {
			item.CourseName = c.Name
			if c.Term != nil {
				item.TermName = c.Term.Name
			}
		}
		items = append(items, item)
	}
	return items
}

func termTitle(c model.Course) string {
	enrollment := ""
	if len(c.Enrollments) > 0 {
		enrollment = c.Enrollments[0].Type
	}
	if c.Term == nil || c.Term.Name == "" {
		return enrollment
	}
	return c.Term.Name + " | " + enrollment
}
