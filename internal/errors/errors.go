package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeUnknownAlgorithm   = "UNKNOWN_ALGORITHM"
	ErrCodeRangeTooSmall      = "RANGE_TOO_SMALL"
	ErrCodePersistenceFailure = "PERSISTENCE_FAILURE"
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// Sentinels for errors.Is checks; an AppError matches the sentinel with the same code.
var (
	ErrNotFound         = &AppError{Code: ErrCodeNotFound, Status: http.StatusNotFound}
	ErrUnknownAlgorithm = &AppError{Code: ErrCodeUnknownAlgorithm, Status: http.StatusBadRequest}
	ErrRangeTooSmall    = &AppError{Code: ErrCodeRangeTooSmall, Status: http.StatusInternalServerError}
	ErrPersistence      = &AppError{Code: ErrCodePersistenceFailure, Status: http.StatusInternalServerError}
)

// AppError represents an application error with HTTP status code and error code
type AppError struct {
	Code    string // Error code (e.g., "NOT_FOUND", "VALIDATION_ERROR")
	Message string // Human-readable error message
	Status  int    // HTTP status code
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any AppError carrying the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As extracts an *AppError from err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  http.StatusNotFound,
	}
}

// NewUnknownAlgorithmError reports an algorithm with no executable sort.
func NewUnknownAlgorithmError(algorithm string) *AppError {
	return &AppError{
		Code:    ErrCodeUnknownAlgorithm,
		Message: fmt.Sprintf("unknown algorithm: %q", algorithm),
		Status:  http.StatusBadRequest,
	}
}

// NewRangeTooSmallError reports a level whose value range cannot supply size distinct values.
func NewRangeTooSmallError(levelID, size, width int) *AppError {
	return &AppError{
		Code:    ErrCodeRangeTooSmall,
		Message: fmt.Sprintf("level %d: range of %d values cannot hold %d distinct elements", levelID, width, size),
		Status:  http.StatusInternalServerError,
	}
}

// NewPersistenceError wraps a storage failure.
func NewPersistenceError(err error) *AppError {
	return &AppError{
		Code:    ErrCodePersistenceFailure,
		Message: "progress store unavailable",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Status:  http.StatusBadRequest,
	}
}

// NewUnauthorizedError is returned when a request needs an identity and has none.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Status:  http.StatusUnauthorized,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// NewBadRequestError creates a new BAD_REQUEST error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}
