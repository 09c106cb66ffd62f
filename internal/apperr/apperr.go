// Package apperr defines the error type API handlers return. Each AppError
// knows its HTTP status and a client-safe message; the underlying cause is
// kept for logs only.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the canonical API error.
type AppError struct {
	// Code is a machine-readable identifier such as NOT_FOUND.
	Code string `json:"code"`
	// Message is safe to show to the client.
	Message string `json:"error"`
	// HTTPStatus is the response status code.
	HTTPStatus int `json:"-"`
	// Cause is logged server side and never sent to the client.
	Cause error `json:"-"`
	// Details lists per-field validation failures.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Cause }

// Wrap returns a copy of e carrying cause.
func (e *AppError) Wrap(cause error) *AppError {
	c := *e
	c.Cause = cause
	return &c
}

// WithMessage returns a copy of e with a different client message.
func (e *AppError) WithMessage(msg string) *AppError {
	c := *e
	c.Message = msg
	return &c
}

// NotFound creates a 404 for a named resource.
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// Gone creates a 410 for a resource that existed but has expired.
func Gone(msg string) *AppError {
	return &AppError{Code: "GONE", Message: msg, HTTPStatus: http.StatusGone}
}

// Unauthorized creates a 401.
func Unauthorized(msg string) *AppError {
	return &AppError{Code: "UNAUTHORIZED", Message: msg, HTTPStatus: http.StatusUnauthorized}
}

// Forbidden creates a 403.
func Forbidden(msg string) *AppError {
	return &AppError{Code: "FORBIDDEN", Message: msg, HTTPStatus: http.StatusForbidden}
}

// Conflict creates a 409 for duplicates.
func Conflict(msg string) *AppError {
	return &AppError{Code: "CONFLICT", Message: msg, HTTPStatus: http.StatusConflict}
}

// ValidationError creates a 400 with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// RateLimited creates a 429.
func RateLimited(retryAfterSeconds int) *AppError {
	return &AppError{
		Code:       "RATE_LIMITED",
		Message:    fmt.Sprintf("Too many requests. Try again in %ds.", retryAfterSeconds),
		HTTPStatus: http.StatusTooManyRequests,
	}
}

// Internal creates a 500 wrapping an unexpected error.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// Unavailable creates a 503 for a dependency that is not configured.
func Unavailable(msg string) *AppError {
	return &AppError{Code: "SERVICE_UNAVAILABLE", Message: msg, HTTPStatus: http.StatusServiceUnavailable}
}

// As extracts the *AppError from err's chain, or nil.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
