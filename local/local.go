// Package local provides an in-process Store.
//
// For hosts compiled into the same binary as the contract code, this
// adapter keeps payloads in memory with no transport in between. It
// copies on the way in and on the way out, so callers never share a
// buffer with the store.
package local

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/blockberries/cltypes"
)

// Compile-time interface check.
var _ cltypes.Store = (*Store)(nil)

// ErrClosed is returned by operations on a closed Store.
var ErrClosed = errors.New("local: store closed")

// Store is a map-backed named-key store.
type Store struct {
	mu     sync.RWMutex
	data   map[string][]byte
	closed bool
}

// NewStore creates an empty in-process store.
func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) PutKey(ctx context.Context, name string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.data[name] = append([]byte(nil), value...)
	return nil
}

func (s *Store) GetKey(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}
	v, ok := s.data[name]
	if !ok {
		return nil, cltypes.ErrKeyNotFound
	}
	return append([]byte{}, v...), nil
}

// Keys returns the stored names in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.data = nil
	return nil
}
