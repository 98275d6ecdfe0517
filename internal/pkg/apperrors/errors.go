package apperrors

import "errors"

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountExists      = errors.New("an account with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
	ErrResetTokenInvalid  = errors.New("invalid or expired reset token")
)

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
)

// Record errors
var (
	ErrStudentNotFound  = errors.New("student not found")
	ErrCourseNotFound   = errors.New("course not found")
	ErrCourseCodeExists = errors.New("course with this code already exists")
)

// Export errors
var (
	// ErrCourseUnresolved signals a student whose course reference does not
	// resolve to an existing course. The exporter surfaces this instead of
	// silently skipping the row.
	ErrCourseUnresolved = errors.New("student references a missing course")
)

// CustomError carries a user-facing message alongside a sentinel error so
// the presentation layer can both match with errors.Is and show something
// readable.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error with a specific message.
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewNotFoundError wraps a not-found sentinel with a specific message.
func NewNotFoundError(err error, message string) error {
	return &CustomError{Err: err, Message: message}
}
