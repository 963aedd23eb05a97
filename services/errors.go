package services

import (
	"errors"
	"fmt"
)

// ErrNotFound is the distinguished outcome for a single-row fetch that
// matched no visible property. It is not a store failure; callers render
// "listing not found" instead of "try again".
var ErrNotFound = errors.New("property not found")

// StoreError wraps any failure returned by the backing store: network
// errors, rejected queries, constraint violations. It is always propagated
// to the caller; this layer performs no retries.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func storeErr(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
