// Package apperr defines the typed errors services return and the HTTP
// layer translates into structured responses.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an application error carrying the HTTP status it maps to.
type Error struct {
	StatusCode int
	Message    string
	Err        error // underlying cause
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

// Validation marks malformed input.
func Validation(message string) *Error {
	return &Error{StatusCode: http.StatusBadRequest, Message: message}
}

// Authentication marks bad credentials or tokens.
func Authentication(message string) *Error {
	if message == "" {
		message = "Authentication failed"
	}
	return &Error{StatusCode: http.StatusUnauthorized, Message: message}
}

// Authorization marks a denied action.
func Authorization(message string) *Error {
	if message == "" {
		message = "Access denied"
	}
	return &Error{StatusCode: http.StatusForbidden, Message: message}
}

// NotFound marks a missing entity. The resource name becomes the message.
func NotFound(resource string) *Error {
	return &Error{StatusCode: http.StatusNotFound, Message: resource + " not found"}
}

// Conflict marks a duplicate unique field.
func Conflict(message string) *Error {
	return &Error{StatusCode: http.StatusConflict, Message: message}
}

// Internal marks an unexpected failure, wrapping the cause.
func Internal(message string, err error) *Error {
	if message == "" {
		message = "Internal server error"
	}
	return &Error{StatusCode: http.StatusInternalServerError, Message: message, Err: err}
}

// From classifies err: an *Error passes through unchanged, anything else
// becomes an Internal error so callers never leak raw failures.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("Internal server error", err)
}

// IsNotFound reports whether err maps to a 404.
func IsNotFound(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.StatusCode == http.StatusNotFound
}

// IsConflict reports whether err maps to a 409.
func IsConflict(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.StatusCode == http.StatusConflict
}
