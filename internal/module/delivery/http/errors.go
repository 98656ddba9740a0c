package http

import (
	"errors"
	"net/http"

	"github.com/instructure/canvas-android-sub046/internal/module"
	pkgErrors "github.com/instructure/canvas-android-sub046/pkg/errors"
)

var errSessionNotFound = errors.New("module session not found")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, errSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, errSessionNotFound.Error())
	case errors.Is(err, module.ErrInvalidCourseID),
		errors.Is(err, module.ErrUnsupportedIntent):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
