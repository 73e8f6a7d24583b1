package cltypes

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is returned by a Store when no value is stored under
// the requested name.
var ErrKeyNotFound = errors.New("cltypes: key not found")

// KeyError records the named key and operation that failed while a
// value crossed the storage boundary, whether the store or the codec
// was at fault.
type KeyError struct {
	Op   string
	Name string
	Err  error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Name, e.Err)
}

func (e *KeyError) Unwrap() error { return e.Err }

// NewKeyError creates a new KeyError.
func NewKeyError(op, name string, err error) *KeyError {
	return &KeyError{Op: op, Name: name, Err: err}
}

// IsKeyError checks whether an error is a KeyError and returns it.
func IsKeyError(err error) (*KeyError, bool) {
	var k *KeyError
	if errors.As(err, &k) {
		return k, true
	}
	return nil, false
}
