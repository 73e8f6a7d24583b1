package bytesrepr

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEnd is returned when the input is shorter than the
	// value being decoded requires.
	ErrUnexpectedEnd = errors.New("bytesrepr: unexpected end of input")

	// ErrUnknownDiscriminant is returned when a union tag byte does not
	// name any known variant.
	ErrUnknownDiscriminant = errors.New("bytesrepr: unknown discriminant")

	// ErrAllocation is returned when a buffer of the reported serialized
	// length cannot be obtained.
	ErrAllocation = errors.New("bytesrepr: buffer allocation failed")

	// ErrFormatting is returned for structurally malformed values, such
	// as a big integer whose length prefix exceeds its width.
	ErrFormatting = errors.New("bytesrepr: malformed value")

	// ErrLeftOverBytes is returned by Deserialize when input remains
	// after a complete value was decoded.
	ErrLeftOverBytes = errors.New("bytesrepr: left over bytes")
)

// FieldError records which field of a composite value failed to
// decode. It unwraps to the underlying cause, so errors.Is against
// the sentinels above keeps working.
type FieldError struct {
	Type  string
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Type, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// WrapField wraps err with the type and field name, or returns nil
// when err is nil.
func WrapField(typ, field string, err error) error {
	if err == nil {
		return nil
	}
	return &FieldError{Type: typ, Field: field, Err: err}
}

// IsFieldError checks whether err is a FieldError and returns the
// innermost one, which names the field that actually failed.
func IsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if !errors.As(err, &fe) {
		return nil, false
	}
	for {
		var inner *FieldError
		if !errors.As(fe.Err, &inner) {
			return fe, true
		}
		fe = inner
	}
}
