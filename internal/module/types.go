package module

import "github.com/instructure/canvas-android-sub046/internal/model"

// ListInput is the input for listing a course's modules.
type ListInput struct {
	CourseID     int64
	ForceRefresh bool
}

// ListOutput is the result of List.
type ListOutput struct {
	Modules []model.Module `json:"modules"`
}
