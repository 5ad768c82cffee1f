package errors

import "fmt"

// Error codes
const (
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeInternal         = "INTERNAL_ERROR"
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeUnauthorized     = "UNAUTHORIZED"
	ErrCodeInvalidSeed      = "INVALID_SEED"
	ErrCodeEmptyInput       = "EMPTY_INPUT"
	ErrCodeOutOfOrder       = "OUT_OF_ORDER_COMPLETION"
	ErrCodeUnknownKind      = "UNKNOWN_PUZZLE_KIND"
	ErrCodeStoreUnavailable = "STORE_UNAVAILABLE"
)

// AppError represents an application error with HTTP status code and error code
type AppError struct {
	Code    string // Error code (e.g., "NOT_FOUND", "INVALID_SEED")
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

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  404,
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Status:  400,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  500,
		Err:     err,
	}
}

// NewBadRequestError creates a new BAD_REQUEST error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  400,
	}
}

// NewUnauthorizedError creates a new UNAUTHORIZED error
func NewUnauthorizedError(reason string) *AppError {
	return &AppError{
		Code:    ErrCodeUnauthorized,
		Message: reason,
		Status:  401,
	}
}

// NewInvalidSeedError reports a malformed or negative generator seed.
func NewInvalidSeedError(seed int) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidSeed,
		Message: fmt.Sprintf("seed must be a non-negative integer, got %d", seed),
		Status:  400,
	}
}

// NewEmptyInputError reports a choice or shuffle over an empty set.
func NewEmptyInputError(operation string) *AppError {
	return &AppError{
		Code:    ErrCodeEmptyInput,
		Message: fmt.Sprintf("%s requires a non-empty input", operation),
		Status:  400,
	}
}

// NewOutOfOrderCompletionError reports a completion dated before the user's
// last recorded completion.
func NewOutOfOrderCompletionError(lastDate, date string) *AppError {
	return &AppError{
		Code:    ErrCodeOutOfOrder,
		Message: fmt.Sprintf("completion date %s precedes last completed date %s", date, lastDate),
		Status:  409,
	}
}

// NewUnknownPuzzleKindError reports a request for a puzzle kind that has no
// registered generator.
func NewUnknownPuzzleKindError(kind string) *AppError {
	return &AppError{
		Code:    ErrCodeUnknownKind,
		Message: fmt.Sprintf("unknown puzzle kind: %s", kind),
		Status:  400,
	}
}

// NewStoreUnavailableError wraps a storage collaborator failure. The
// underlying error is preserved, never swallowed.
func NewStoreUnavailableError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeStoreUnavailable,
		Message: "storage unavailable",
		Status:  503,
		Err:     err,
	}
}
