// Package apperror defines the tagged error type shared by storage adapters,
// services and the HTTP boundary. Callers switch on Kind instead of
// inspecting driver-specific fields.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	Internal Kind = iota
	Validation
	Unauthenticated
	Forbidden
	NotFound
	Conflict
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	default:
		return "internal"
	}
}

// AppError is an error tagged with a Kind. Message is safe to show to
// clients; Err carries the underlying cause for logs.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// StatusCode maps the kind to an HTTP status. Conflicts are reported as 400
// to match the duplicate-field response of the public API.
func (e *AppError) StatusCode() int {
	switch e.Kind {
	case Validation, Conflict:
		return http.StatusBadRequest
	case Unauthenticated:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func NewValidation(message string, err error) *AppError {
	return New(Validation, message, err)
}

func NewUnauthenticated(message string, err error) *AppError {
	return New(Unauthenticated, message, err)
}

func NewForbidden(message string, err error) *AppError {
	return New(Forbidden, message, err)
}

func NewNotFound(message string, err error) *AppError {
	return New(NotFound, message, err)
}

func NewConflict(message string, err error) *AppError {
	return New(Conflict, message, err)
}

func NewInternal(message string, err error) *AppError {
	return New(Internal, message, err)
}

// From returns the first *AppError in err's chain.
func From(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// KindOf reports the kind of err. Untagged errors are Internal.
func KindOf(err error) Kind {
	if ae, ok := From(err); ok {
		return ae.Kind
	}
	return Internal
}

func IsNotFound(err error) bool  { return err != nil && KindOf(err) == NotFound }
func IsForbidden(err error) bool { return err != nil && KindOf(err) == Forbidden }
func IsConflict(err error) bool  { return err != nil && KindOf(err) == Conflict }

func IsValidation(err error) bool {
	return err != nil && KindOf(err) == Validation
}

func IsUnauthenticated(err error) bool {
	return err != nil && KindOf(err) == Unauthenticated
}
