package http

import (
	"errors"
	"net/http"

	"github.com/instructure/canvas-android-sub046/internal/dashboard"
	pkgErrors "github.com/instructure/canvas-android-sub046/pkg/errors"
)

var (
	errSessionNotFound = errors.New("dashboard session not found")
	errIDRequired      = errors.New("id is required for this intent")
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, errSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, errSessionNotFound.Error())
	case errors.Is(err, dashboard.ErrUnknownItem):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, dashboard.ErrNotFavoritable),
		errors.Is(err, dashboard.ErrUnsupportedIntent),
		errors.Is(err, dashboard.ErrInvalidID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
