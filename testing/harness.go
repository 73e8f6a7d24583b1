package cltest

import (
	"context"
	"testing"

	"github.com/blockberries/cltypes"
	"github.com/blockberries/cltypes/bytesrepr"
	"github.com/blockberries/cltypes/types"
)

// Harness wraps a Store with helpers that fail the test on error,
// for writing and reading contract values by name.
type Harness struct {
	t     *testing.T
	store cltypes.Store
}

// NewHarness creates a test harness over the given store.
func NewHarness(t *testing.T, store cltypes.Store) *Harness {
	t.Helper()
	return &Harness{t: t, store: store}
}

// Store returns the underlying store for direct access.
func (h *Harness) Store() cltypes.Store {
	return h.store
}

// Put encodes v and writes it under name.
func (h *Harness) Put(name string, v bytesrepr.Encoder) {
	h.t.Helper()
	if err := cltypes.Put(context.Background(), h.store, name, v); err != nil {
		h.t.Fatalf("Put %q failed: %v", name, err)
	}
}

// PutRaw writes raw bytes under name.
func (h *Harness) PutRaw(name string, value []byte) {
	h.t.Helper()
	if err := h.store.PutKey(context.Background(), name, value); err != nil {
		h.t.Fatalf("PutKey %q failed: %v", name, err)
	}
}

// Raw reads the bytes stored under name.
func (h *Harness) Raw(name string) []byte {
	h.t.Helper()
	data, err := h.store.GetKey(context.Background(), name)
	if err != nil {
		h.t.Fatalf("GetKey %q failed: %v", name, err)
	}
	return data
}

// Payment reads and decodes the Payment stored under name.
func (h *Harness) Payment(name string) types.Payment {
	h.t.Helper()
	p, err := cltypes.GetPayment(context.Background(), h.store, name)
	if err != nil {
		h.t.Fatalf("GetPayment %q failed: %v", name, err)
	}
	return p
}

// Offer reads and decodes the Offer stored under name.
func (h *Harness) Offer(name string) types.Offer {
	h.t.Helper()
	o, err := cltypes.GetOffer(context.Background(), h.store, name)
	if err != nil {
		h.t.Fatalf("GetOffer %q failed: %v", name, err)
	}
	return o
}

// MustBeMissing asserts that nothing is stored under name.
func (h *Harness) MustBeMissing(name string) {
	h.t.Helper()
	if _, err := h.store.GetKey(context.Background(), name); err == nil {
		h.t.Fatalf("expected %q to be missing", name)
	} else if !isNotFound(err) {
		h.t.Fatalf("GetKey %q: expected ErrKeyNotFound, got %v", name, err)
	}
}
