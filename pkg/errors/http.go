// Package errors holds the error types the HTTP delivery layer knows how to
// render.
package errors

import "net/http"

// HTTPError is an error that carries the status code it should be rendered
// with.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *HTTPError) Error() string { return e.Message }

// NewHTTPError builds an HTTPError whose application code equals the status.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{StatusCode: status, Code: status, Message: message}
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrServiceUnavailable  = NewHTTPError(http.StatusServiceUnavailable, "service unavailable")
	ErrBadGateway          = NewHTTPError(http.StatusBadGateway, "upstream request failed")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)
