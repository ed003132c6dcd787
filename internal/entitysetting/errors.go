package entitysetting

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedType is returned when no catalog entry exists for an entity type.
	ErrUnsupportedType = errors.New("this entity type is not support for entity settings")

	// ErrMalformedConfiguration is returned when stored attributes configuration can not be decoded.
	ErrMalformedConfiguration = errors.New("malformed attributes configuration")

	// ErrNilCache is returned when a resolver is created without a cache.
	ErrNilCache = errors.New("entity cache is nil")
)

// UnsupportedTypeError carries the entity type that has no catalog entry.
type UnsupportedTypeError struct {
	TargetType string
}

// Error implements the error interface.
func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("%s (target_type=%s)", ErrUnsupportedType.Error(), e.TargetType)
}

// Unwrap allows errors.Is(err, ErrUnsupportedType).
func (e *UnsupportedTypeError) Unwrap() error {
	return ErrUnsupportedType
}

// Context returns the structured error context.
func (e *UnsupportedTypeError) Context() map[string]any {
	return map[string]any{"target_type": e.TargetType}
}

// MalformedConfigurationError is returned when the stored attributes
// configuration of a row is not valid JSON of the expected shape.
type MalformedConfigurationError struct {
	TargetType string
	Err        error
}

// Error implements the error interface.
func (e *MalformedConfigurationError) Error() string {
	return fmt.Sprintf("%s (target_type=%s): %v", ErrMalformedConfiguration.Error(), e.TargetType, e.Err)
}

// Unwrap returns both the sentinel and the decoding error.
func (e *MalformedConfigurationError) Unwrap() []error {
	return []error{ErrMalformedConfiguration, e.Err}
}
