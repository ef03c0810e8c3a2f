package apperr

import (
	"errors"
	"net/http"
)

// HTTPStatus maps err onto the status code handlers answer with.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Body is the JSON error payload: {"error": msg}, plus "field" for
// validation failures.
func Body(err error) map[string]string {
	body := map[string]string{"error": err.Error()}
	if f := Field(err); f != "" {
		body["field"] = f
	}
	return body
}
