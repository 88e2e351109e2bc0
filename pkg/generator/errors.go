package generator

import (
	"errors"
	"fmt"
)

// ErrSerialization marks failures while writing the output container.
var ErrSerialization = errors.New("brief serialization failed")

// InternalError wraps failures that are not the caller's fault. Callers
// distinguish it from *brief.ValidationError to pick 500 over 400.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is matches ErrSerialization for every internal error.
func (e *InternalError) Is(target error) bool {
	return target == ErrSerialization
}
