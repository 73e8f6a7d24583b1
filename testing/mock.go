// Package cltest provides test utilities for code that crosses the
// storage boundary, including a configurable mock store, a test
// harness, and a Store compliance test suite.
package cltest

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/blockberries/cltypes"
)

// Compile-time interface check.
var _ cltypes.Store = (*MockStore)(nil)

// MockStore is a configurable mock Store. All methods are
// configurable via function fields. Unconfigured methods fall back to
// an in-memory map, so a zero MockStore behaves like a working store.
type MockStore struct {
	mu   sync.Mutex
	data map[string][]byte

	// Configurable handlers. If nil, defaults are used.
	PutKeyFn func(ctx context.Context, name string, value []byte) error
	GetKeyFn func(ctx context.Context, name string) ([]byte, error)
	CloseFn  func() error

	// Call counters (atomic for concurrent access).
	PutKeyCalls atomic.Int64
	GetKeyCalls atomic.Int64
	CloseCalls  atomic.Int64
}

func (m *MockStore) PutKey(ctx context.Context, name string, value []byte) error {
	m.PutKeyCalls.Add(1)
	if m.PutKeyFn != nil {
		return m.PutKeyFn(ctx, name, value)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	m.data[name] = append([]byte(nil), value...)
	return nil
}

func (m *MockStore) GetKey(ctx context.Context, name string) ([]byte, error) {
	m.GetKeyCalls.Add(1)
	if m.GetKeyFn != nil {
		return m.GetKeyFn(ctx, name)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[name]
	if !ok {
		return nil, cltypes.ErrKeyNotFound
	}
	return append([]byte{}, v...), nil
}

func (m *MockStore) Close() error {
	m.CloseCalls.Add(1)
	if m.CloseFn != nil {
		return m.CloseFn()
	}
	return nil
}
