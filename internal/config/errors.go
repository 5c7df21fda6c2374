package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrKindMismatch indicates a typed extraction was requested for a
	// kind other than the value's active kind.
	ErrKindMismatch = errors.New("kind mismatch")

	// ErrUnsupportedType indicates Set was called with a dynamic type
	// that cannot be converted to any scalar kind.
	ErrUnsupportedType = errors.New("unsupported value type")
)

// KindError describes a kind-mismatch extraction in detail.
type KindError struct {
	// Name is the item name, empty for a bare value.
	Name string
	// Requested is the kind asked for.
	Requested Kind
	// Actual is the value's active kind.
	Actual Kind
}

// Error implements the error interface.
func (e *KindError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: requested %s, holds %s: %v", e.Name, e.Requested, e.Actual, ErrKindMismatch)
	}
	return fmt.Sprintf("requested %s, holds %s: %v", e.Requested, e.Actual, ErrKindMismatch)
}

// Unwrap returns ErrKindMismatch so callers can match with errors.Is.
func (e *KindError) Unwrap() error {
	return ErrKindMismatch
}
