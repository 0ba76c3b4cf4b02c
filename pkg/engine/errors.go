package engine

import (
	"errors"
	"fmt"
)

// ErrUnsupportedCategory is returned by the compiler when it has no
// routine for the resolved category. With the closed Category enum this
// is defensive only.
var ErrUnsupportedCategory = errors.New("no query routine for category")

// UnsafeQueryError is returned when a compiled query fails the
// read-only gate. It is always surfaced as a blocked request, never
// silently fixed or partially executed.
type UnsafeQueryError struct {
	Reason string
}

func (e *UnsafeQueryError) Error() string {
	return fmt.Sprintf("query blocked by read-only gate: %s", e.Reason)
}

// ExecutionError wraps a graph-store failure (syntax, connectivity,
// timeout). The request terminates with the underlying message; there
// are no retries.
type ExecutionError struct {
	Err error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("graph execution failed: %v", e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
