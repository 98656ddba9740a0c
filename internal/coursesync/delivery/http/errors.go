package http

import (
	"errors"
	"net/http"

	"github.com/instructure/canvas-android-sub046/internal/coursesync"
	pkgErrors "github.com/instructure/canvas-android-sub046/pkg/errors"
	"github.com/instructure/canvas-android-sub046/pkg/result"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, coursesync.ErrInvalidCourseID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, coursesync.ErrOfflineDisabled):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, result.ErrAuthorization):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, coursesync.ErrCourseListFailed):
		return pkgErrors.ErrBadGateway
	default:
		return pkgErrors.ErrInternalServerError
	}
}
