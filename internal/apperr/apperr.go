// Package apperr defines the domain error taxonomy shared by all services.
// Every error carries a machine-checkable kind so callers can distinguish
// retryable failures from domain-rule violations.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a domain error.
type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindInvalidArgument Kind = "invalid_argument"
	KindInvalidState    Kind = "invalid_state"
	KindAlreadyPaid     Kind = "already_paid"
	KindConflict        Kind = "conflict"
	KindUnauthorized    Kind = "unauthorized"
	KindInternal        Kind = "internal"
)

// Error is a domain error with a kind and a human-readable message.
// CurrentStatus and RequiredStatus are set for invalid-state rejections so
// handlers can surface them to the caller.
type Error struct {
	Kind           Kind
	Message        string
	CurrentStatus  string
	RequiredStatus string
	Err            error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// InvalidState creates an invalid-state error carrying the offending and
// required statuses.
func InvalidState(message, current, required string) *Error {
	return &Error{
		Kind:           KindInvalidState,
		Message:        message,
		CurrentStatus:  current,
		RequiredStatus: required,
	}
}

// KindOf returns the kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Retryable reports whether the caller may safely resubmit the operation.
// Only unclassified store or transport failures are retryable.
func Retryable(err error) bool {
	return KindOf(err) == KindInternal
}

// HTTPStatus maps an error to the HTTP status code surfaced to clients.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidArgument, KindInvalidState, KindAlreadyPaid:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
