package brief

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every ValidationError.
var ErrInvalidInput = errors.New("invalid brief input")

// ValidationError reports the first schema violation found in raw input.
type ValidationError struct {
	Path    string // dotted path, e.g. "proposals[2].titulo"
	Message string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return fmt.Sprintf("validation error on field '%s': %s", e.Path, e.Message)
}

// Unwrap lets callers match with errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError creates a new validation error
func NewValidationError(path, message string) *ValidationError {
	return &ValidationError{Path: path, Message: message}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
