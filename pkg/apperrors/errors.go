package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind classifies an error for the API layer. The values are stable
// wire-level identifiers, not display strings.
type Kind string

const (
	KindValidation Kind = "VALIDATION_ERROR"
	KindNotFound   Kind = "NOT_FOUND"
	KindConflict   Kind = "CONFLICT"
	KindBadRequest Kind = "BAD_REQUEST"
	KindInternal   Kind = "INTERNAL_ERROR"
)

// AppError is the error type surfaced by every usecase. Details carries
// field-level messages for validation failures; Err is the wrapped internal
// cause and is logged, never serialized.
type AppError struct {
	Kind    Kind                `json:"error"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
	Err     error               `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	if len(e.Details) > 0 {
		fields := make([]string, 0, len(e.Details))
		for f := range e.Details {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, strings.Join(fields, ", "))
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap supports errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches two AppErrors by kind and message, so sentinel errors defined
// with New can be compared with errors.Is.
func (e *AppError) Is(target error) bool {
	var other *AppError
	if !errors.As(target, &other) {
		return false
	}
	return e.Kind == other.Kind && e.Message == other.Message
}

// New creates an AppError with the given kind and message.
func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// Newf creates an AppError with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *AppError {
	return &AppError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap converts an unexpected internal failure (database, broker, ...)
// into an INTERNAL_ERROR carrying the cause.
func Wrap(err error, message string) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// Validation creates a VALIDATION_ERROR with aggregated field details.
func Validation(details map[string][]string) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Message: "invalid input",
		Details: details,
	}
}

// KindOf extracts the kind of err, or KindInternal when err is not an
// AppError.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Get extracts the AppError from err, wrapping foreign errors as internal.
func Get(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "unexpected error")
}

// FieldErrors accumulates per-field validation messages so a single
// response can report every detectable issue instead of the first one.
type FieldErrors map[string][]string

// Add records a message for a field.
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// Merge folds another error into the collector under the given field.
// AppError details are flattened; other errors contribute their message.
func (f FieldErrors) Merge(field string, err error) {
	if err == nil {
		return
	}
	var appErr *AppError
	if errors.As(err, &appErr) && len(appErr.Details) > 0 {
		for _, msgs := range appErr.Details {
			f[field] = append(f[field], msgs...)
		}
		return
	}
	if errors.As(err, &appErr) {
		f[field] = append(f[field], appErr.Message)
		return
	}
	f[field] = append(f[field], err.Error())
}

// Err returns the aggregated VALIDATION_ERROR, or nil when no field failed.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return Validation(f)
}
