package common

import "fmt"

// ValidationError represents a field-level validation failure on an extracted record.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

// Unwrap folds field-level failures into the ErrValidation class so callers
// can test with errors.Is.
func (e ValidationError) Unwrap() error {
	return ErrValidation
}
