// Package respond writes JSON API responses. Success bodies are written as
// given; every error goes out in the same {error, code, details} envelope.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/apperr"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/ctxkey"
)

// MaxBodyBytes caps JSON request bodies.
const MaxBodyBytes = 1 << 20

// ErrorEnvelope is the JSON body of every error response.
type ErrorEnvelope struct {
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// JSON writes payload with the given status.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// OK writes a 200 response.
func OK(w http.ResponseWriter, payload any) {
	JSON(w, http.StatusOK, payload)
}

// Created writes a 201 response.
func Created(w http.ResponseWriter, payload any) {
	JSON(w, http.StatusCreated, payload)
}

// NoContent writes a 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error converts err into an error response. Errors that are not AppErrors
// become a 500 whose details are logged but never sent.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	ae := apperr.As(err)
	if ae == nil {
		ae = apperr.Internal(err)
	}
	if ae.HTTPStatus >= 500 {
		Logger(r).ErrorContext(r.Context(), "api server error",
			"code", ae.Code,
			"request_id", RequestID(r),
			"error", ae.Cause,
		)
	}
	JSON(w, ae.HTTPStatus, ErrorEnvelope{Error: ae.Message, Code: ae.Code, Details: ae.Details})
}

// Logger returns the request's logger, or the default one.
func Logger(r *http.Request) *slog.Logger {
	if l, ok := r.Context().Value(ctxkey.KeyLogger).(*slog.Logger); ok && l != nil {
		return l
	}
	return slog.Default()
}

// RequestID returns the X-Request-ID assigned by the logging middleware.
func RequestID(r *http.Request) string {
	id, _ := r.Context().Value(ctxkey.KeyRequestID).(string)
	return id
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decode reads a JSON body into dst and validates its `validate` tags.
// Failures come back as a 400 AppError.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.ValidationError("Request body is required")
		}
		return apperr.ValidationError("Invalid JSON payload").Wrap(err)
	}
	return Validate(dst)
}

// Validate checks the `validate` tags of v.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.ValidationError("Invalid request").Wrap(err)
	}
	details := make([]apperr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, apperr.FieldError{Field: fe.Field(), Message: describe(fe)})
	}
	return apperr.ValidationError("Validation failed", details...)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return fmt.Sprintf("Minimum %s", fe.Param())
	case "max":
		return fmt.Sprintf("Maximum %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	case "url", "http_url":
		return "Must be a valid URL"
	}
	return fmt.Sprintf("Failed the %q rule", fe.Tag())
}
