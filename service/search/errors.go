package search

import (
	"context"
	"errors"
	"fmt"
)

// ValidationError reports a malformed or out-of-range filter field. The caller
// fixes the input; nothing is retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

// ErrStoreTimeout marks a catalog store query that exceeded its deadline.
// Detect with errors.Is.
var ErrStoreTimeout = errors.New("catalog store timeout")

// StoreError wraps a failed catalog store query. Dimension names the failing
// query ("page", "count", "facet:category", "facet:price", "facet:color", ...).
type StoreError struct {
	Dimension string
	Err       error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("catalog store: %s: %v", e.Dimension, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// storeErr wraps err as a StoreError, mapping context deadlines to ErrStoreTimeout.
func storeErr(dimension string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &StoreError{Dimension: dimension, Err: ErrStoreTimeout}
	}
	return &StoreError{Dimension: dimension, Err: err}
}
