package cltypes

import (
	"errors"
	"fmt"
	"testing"
)

func TestKeyError(t *testing.T) {
	err := NewKeyError("get", "mem1", ErrKeyNotFound)
	if err.Op != "get" {
		t.Errorf("expected op get, got %s", err.Op)
	}
	if err.Name != "mem1" {
		t.Errorf("unexpected name: %s", err.Name)
	}

	expected := `get "mem1": cltypes: key not found`
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
	if !errors.Is(err, ErrKeyNotFound) {
		t.Error("expected KeyError to unwrap to ErrKeyNotFound")
	}
}

func TestIsKeyError(t *testing.T) {
	keyErr := NewKeyError("put", "test", errors.New("disk full"))

	// Direct.
	k, ok := IsKeyError(keyErr)
	if !ok {
		t.Fatal("expected IsKeyError to return true")
	}
	if k.Name != "test" {
		t.Errorf("expected name test, got %s", k.Name)
	}

	// Wrapped.
	wrapped := fmt.Errorf("wrapped: %w", keyErr)
	k2, ok2 := IsKeyError(wrapped)
	if !ok2 {
		t.Fatal("expected IsKeyError to unwrap wrapped error")
	}
	if k2.Op != "put" {
		t.Errorf("expected op put, got %s", k2.Op)
	}

	// Non-key error.
	_, ok3 := IsKeyError(fmt.Errorf("just a regular error"))
	if ok3 {
		t.Fatal("expected IsKeyError to return false for non-key error")
	}

	// Nil.
	_, ok4 := IsKeyError(nil)
	if ok4 {
		t.Fatal("expected IsKeyError to return false for nil")
	}
}
