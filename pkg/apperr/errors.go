// Package apperr holds the error taxonomy shared by the store, the services
// and the HTTP layer. Callers match with errors.Is against the sentinels or
// errors.As against the concrete types.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation failed")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// NotFoundError reports an operation on an id that does not exist.
type NotFoundError struct {
	Entity string
	ID     uint
}

func NotFound(entity string, id uint) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError names the input field that failed a precondition.
type ValidationError struct {
	Field  string
	Reason string
}

func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// UpstreamUnavailableError means the seed dataset could not be loaded.
type UpstreamUnavailableError struct {
	Source string
	Err    error
}

func Upstream(source string, err error) error {
	return &UpstreamUnavailableError{Source: source, Err: err}
}

func (e *UpstreamUnavailableError) Error() string {
	return fmt.Sprintf("seed source %q unavailable: %v", e.Source, e.Err)
}

func (e *UpstreamUnavailableError) Unwrap() error { return e.Err }

func (e *UpstreamUnavailableError) Is(target error) bool {
	return target == ErrUpstreamUnavailable
}

// Field returns the failing field of a validation error, or "".
func Field(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Field
	}
	return ""
}
