package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors, one per failure class the pipeline distinguishes.
var (
	ErrConfiguration      = errors.New("configuration error")
	ErrUnsupportedFormat  = errors.New("unsupported format")
	ErrUnreadableEncoding = errors.New("unreadable content")
	ErrEmptyContent       = errors.New("empty content")
	ErrValidation         = errors.New("validation failed")
	ErrCompletion         = errors.New("completion request failed")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Validationf builds a reply-validation error; errors.Is(err, ErrValidation) holds.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

// Completionf builds a completion-transport error; errors.Is(err, ErrCompletion) holds.
func Completionf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrCompletion}, args...)...)
}
