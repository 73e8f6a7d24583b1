package cltest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/blockberries/cltypes"
	"github.com/blockberries/cltypes/bytesrepr"
	"github.com/blockberries/cltypes/types"
)

// RunComplianceSuite runs a standard compliance test suite against a
// Store implementation to verify the storage boundary contract.
//
// The factory function should return a fresh, empty store for each
// test. The suite closes every store it creates.
func RunComplianceSuite(t *testing.T, factory func(t *testing.T) cltypes.Store) {
	t.Helper()

	newHarness := func(t *testing.T) *Harness {
		s := factory(t)
		t.Cleanup(func() { s.Close() })
		return NewHarness(t, s)
	}

	t.Run("missing_key", func(t *testing.T) {
		h := newHarness(t)
		h.MustBeMissing("absent")
	})

	t.Run("put_then_get", func(t *testing.T) {
		h := newHarness(t)
		h.PutRaw("k", []byte{0x01, 0x02, 0x03})
		if got := h.Raw("k"); !bytes.Equal(got, []byte{0x01, 0x02, 0x03}) {
			t.Errorf("unexpected value %x", got)
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		h := newHarness(t)
		h.PutRaw("k", []byte("first value, longer"))
		h.PutRaw("k", []byte("second"))
		if got := h.Raw("k"); string(got) != "second" {
			t.Errorf("expected overwrite, got %q", got)
		}
	})

	t.Run("empty_value", func(t *testing.T) {
		h := newHarness(t)
		h.PutRaw("empty", []byte{})
		if got := h.Raw("empty"); len(got) != 0 {
			t.Errorf("expected empty value, got %x", got)
		}
	})

	t.Run("keys_are_independent", func(t *testing.T) {
		h := newHarness(t)
		h.PutRaw("a", []byte{0xAA})
		h.PutRaw("b", []byte{0xBB})
		if got := h.Raw("a"); !bytes.Equal(got, []byte{0xAA}) {
			t.Errorf("a: unexpected value %x", got)
		}
		if got := h.Raw("b"); !bytes.Equal(got, []byte{0xBB}) {
			t.Errorf("b: unexpected value %x", got)
		}
	})

	t.Run("value_not_aliased", func(t *testing.T) {
		h := newHarness(t)
		in := []byte{1, 2, 3}
		h.PutRaw("k", in)
		in[0] = 0xFF

		out := h.Raw("k")
		if out[0] != 1 {
			t.Fatalf("store kept a reference to the caller's buffer")
		}
		out[1] = 0xFF
		if again := h.Raw("k"); again[1] != 2 {
			t.Fatalf("store returned its own buffer")
		}
	})

	t.Run("payment_round_trip", func(t *testing.T) {
		h := newHarness(t)
		for i, p := range samplePayments() {
			name := fmt.Sprintf("mem%d", i+1)
			h.Put(name, p)
			if got := h.Payment(name); got != p {
				t.Errorf("%s: got %#v, want %#v", name, got, p)
			}
		}
	})

	t.Run("offer_round_trip", func(t *testing.T) {
		h := newHarness(t)
		offer := sampleOffer()
		h.Put("test", offer)
		got := h.Offer("test")
		if got.ID != offer.ID || got.TokenID != offer.TokenID || len(got.Offers) != len(offer.Offers) {
			t.Fatalf("got %+v, want %+v", got, offer)
		}
		for i := range offer.Offers {
			if got.Offers[i] != offer.Offers[i] {
				t.Errorf("offer %d: got %+v, want %+v", i, got.Offers[i], offer.Offers[i])
			}
		}
	})

	t.Run("corrupt_payload_rejected", func(t *testing.T) {
		h := newHarness(t)
		h.PutRaw("bad", []byte{0x03, 0x01, 0x7B})
		_, err := cltypes.GetPayment(context.Background(), h.Store(), "bad")
		if !errors.Is(err, bytesrepr.ErrUnknownDiscriminant) {
			t.Fatalf("expected ErrUnknownDiscriminant, got %v", err)
		}
		k, ok := cltypes.IsKeyError(err)
		if !ok || k.Op != "decode" || k.Name != "bad" {
			t.Fatalf("expected decode KeyError for %q, got %v", "bad", err)
		}
	})

	t.Run("canceled_context", func(t *testing.T) {
		h := newHarness(t)
		h.PutRaw("k", []byte{1})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if err := h.Store().PutKey(ctx, "k", []byte{2}); !errors.Is(err, context.Canceled) {
			t.Fatalf("PutKey: expected context.Canceled, got %v", err)
		}
		if _, err := h.Store().GetKey(ctx, "k"); !errors.Is(err, context.Canceled) {
			t.Fatalf("GetKey: expected context.Canceled, got %v", err)
		}
		if got := h.Raw("k"); !bytes.Equal(got, []byte{1}) {
			t.Fatalf("canceled PutKey changed the value to %x", got)
		}
	})

	t.Run("concurrent_access", func(t *testing.T) {
		h := newHarness(t)
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				name := fmt.Sprintf("k%d", i)
				ctx := context.Background()
				if err := h.Store().PutKey(ctx, name, []byte{byte(i)}); err != nil {
					t.Errorf("concurrent PutKey failed: %v", err)
					return
				}
				v, err := h.Store().GetKey(ctx, name)
				if err != nil {
					t.Errorf("concurrent GetKey failed: %v", err)
					return
				}
				if len(v) != 1 || v[0] != byte(i) {
					t.Errorf("%s: unexpected value %x", name, v)
				}
			}(i)
		}
		wg.Wait()
	})
}

func samplePayments() []types.Payment {
	contract := types.ContractHash{0x03, 0x3A}
	return []types.Payment{
		types.CSPR{Amount: bytesrepr.NewU512(123)},
		types.ERC20{ContractHash: contract, Amount: bytesrepr.NewU256(1)},
		types.CEP47{Collection: contract, TokenID: bytesrepr.NewU256(1)},
	}
}

func sampleOffer() types.Offer {
	item := types.OfferItem{Maker: types.AccountHash{0xAD, 0x7E}, Price: bytesrepr.NewU512(100), OfferTime: 1234}
	return types.Offer{
		ID:      bytesrepr.NewU256(1),
		TokenID: bytesrepr.NewU256(100),
		Offers:  []types.OfferItem{item, item},
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, cltypes.ErrKeyNotFound)
}
