package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInternal     = errors.New("internal server error")
	ErrValidation   = errors.New("validation error")

	ErrDuplicateEmail          = errors.New("email already registered")
	ErrDuplicateActiveRelation = errors.New("active relation already exists for this trainer and student")
	ErrProfileAlreadyExists    = errors.New("profile already exists for this user")
	ErrRoleMismatch            = errors.New("user role does not match profile type")
	ErrInvalidProgress         = errors.New("invalid progress values")
	ErrSessionAlreadyClosed    = errors.New("focus session already closed")
	ErrFutureDate              = errors.New("date cannot be in the future")
	ErrInvalidTransition       = errors.New("invalid application status transition")
	ErrAlreadyClosed           = errors.New("relation already closed")
	ErrStorageUnavailable      = errors.New("storage unavailable")
)

// AppError is a custom error type that can hold an HTTP status code
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// MapErrorToStatus maps domain errors to HTTP status codes
func MapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrDuplicateEmail),
		errors.Is(err, ErrDuplicateActiveRelation),
		errors.Is(err, ErrProfileAlreadyExists),
		errors.Is(err, ErrAlreadyClosed),
		errors.Is(err, ErrSessionAlreadyClosed):
		return http.StatusConflict
	case errors.Is(err, ErrRoleMismatch),
		errors.Is(err, ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrInvalidProgress),
		errors.Is(err, ErrFutureDate):
		return http.StatusBadRequest
	case errors.Is(err, ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// Retryable reports whether the caller may retry the failed operation.
// Only transient storage outages qualify; every other kind is terminal
// for the triggering request.
func Retryable(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}
