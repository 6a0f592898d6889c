package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError wraps a lower-level error with a status code and a message that is
// safe to surface to callers. Repositories use it to annotate store failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that unwraps to ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// IsTransient reports whether err looks like a temporary store failure that a
// caller may retry or degrade around. Server-coded AppErrors from the
// repositories qualify; domain sentinels (not found, shift not open) do not.
func IsTransient(err error) bool {
	if errors.Is(err, ErrStoreUnavailable) {
		return true
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code >= http.StatusInternalServerError && !errors.Is(err, ErrNotFound)
	}
	return false
}
