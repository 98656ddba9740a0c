package dashboard

import "github.com/instructure/canvas-android-sub046/internal/model"

// LoadInput is the input for Load.
type LoadInput struct {
	ForceRefresh bool
}

// LoadOutput is everything the dashboard editor shows.
type LoadOutput struct {
	Current         []model.Course
	Past            []model.Course
	Future          []model.Course
	Groups          []model.Group
	Courses         map[int64]model.Course // every listed course, by id
	SyncedCourseIDs []int64
	OfflineEnabled  bool
	Online          bool
}

// FavoriteInput names the course or group to (un)favorite.
type FavoriteInput struct {
	ID int64
}

// FavoriteOutput is the favorite state after the call.
type FavoriteOutput struct {
	ID         int64 `json:"id"`
	IsFavorite bool  `json:"is_favorite"`
}
