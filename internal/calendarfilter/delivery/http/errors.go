package http

import (
	"errors"
	"net/http"

	"github.com/instructure/canvas-android-sub046/internal/calendarfilter"
	pkgErrors "github.com/instructure/canvas-android-sub046/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, calendarfilter.ErrInvalidContext):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
