package habit

import (
	"errors"
	"fmt"
)

// ErrNotFound reports an operation on a habit id that no longer exists.
var ErrNotFound = errors.New("habit not found")

// ValidationError rejects bad user input before anything is written.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StoreError wraps a failure from the underlying database. Operations are
// never retried; the caller surfaces the failure and leaves view state
// untouched.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
