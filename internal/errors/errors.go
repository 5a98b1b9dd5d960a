package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error so handlers can pick the right
// HTTP status without matching on message text.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindConflict      Kind = "conflict"
	KindAuthorization Kind = "authorization"
	KindNotFound      Kind = "not_found"
	KindIntegrity     Kind = "integrity"
	KindInvalidState  Kind = "invalid_state"
	KindInternal      Kind = "internal"
)

// AppError is an error with a Kind and a user-facing message.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func newf(kind Kind, format string, args ...interface{}) *AppError {
	return &AppError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...interface{}) *AppError {
	return newf(KindValidation, format, args...)
}

func Conflict(format string, args ...interface{}) *AppError {
	return newf(KindConflict, format, args...)
}

func Authorization(format string, args ...interface{}) *AppError {
	return newf(KindAuthorization, format, args...)
}

func NotFound(format string, args ...interface{}) *AppError {
	return newf(KindNotFound, format, args...)
}

func Integrity(format string, args ...interface{}) *AppError {
	return newf(KindIntegrity, format, args...)
}

func InvalidState(format string, args ...interface{}) *AppError {
	return newf(KindInvalidState, format, args...)
}

// Internal wraps an unexpected error. The wrapped error is kept for logs;
// the message is what callers may show.
func Internal(err error, format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindInternal, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the Kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error to the HTTP status code the handlers respond with.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindIntegrity:
		return http.StatusConflict
	case KindInvalidState:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
