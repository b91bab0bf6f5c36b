package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking. The taxonomy is deliberately
// flat: every failure surfaced by the core is exactly one of these kinds.
var (
	// ErrValidation marks caller input that failed validation (InvalidArgument).
	ErrValidation = errors.New("invalid argument")

	// ErrNotFound marks a read or mutation whose target is missing or
	// soft-deleted.
	ErrNotFound = errors.New("not found")

	// ErrInternal marks any store failure, including rows that fail to decode.
	ErrInternal = errors.New("internal error")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// StoreError wraps a failure returned by the relational store or by row
// decoding. Op names the repository operation that failed.
type StoreError struct {
	Op  string
	Err error
}

// NewStoreError wraps err as a StoreError for the given operation.
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrInternal.Error(), e.Op, e.Err)
}

// Unwrap exposes both the ErrInternal kind and the underlying driver error.
func (e *StoreError) Unwrap() []error {
	return []error{ErrInternal, e.Err}
}
