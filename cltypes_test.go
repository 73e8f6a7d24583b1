package cltypes_test

import (
	"context"
	"errors"
	"testing"

	"github.com/blockberries/cltypes"
	"github.com/blockberries/cltypes/bytesrepr"
	"github.com/blockberries/cltypes/local"
	"github.com/blockberries/cltypes/types"
)

func TestPutGet_Offer(t *testing.T) {
	ctx := context.Background()
	s := local.NewStore()
	defer s.Close()

	offer := types.Offer{
		ID:      bytesrepr.NewU256(1),
		TokenID: bytesrepr.NewU256(100),
	}
	if err := cltypes.Put(ctx, s, "test", offer); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := cltypes.GetOffer(ctx, s, "test")
	if err != nil {
		t.Fatalf("GetOffer: %v", err)
	}
	if got.ID != offer.ID || got.TokenID != offer.TokenID || len(got.Offers) != 0 {
		t.Fatalf("unexpected offer %+v", got)
	}
}

func TestPut_ReplacesValue(t *testing.T) {
	ctx := context.Background()
	s := local.NewStore()
	defer s.Close()

	if err := cltypes.Put(ctx, s, "mem1", types.CSPR{Amount: bytesrepr.NewU512(1)}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := cltypes.Put(ctx, s, "mem1", types.CEP47{TokenID: bytesrepr.NewU256(7)}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	p, err := cltypes.GetPayment(ctx, s, "mem1")
	if err != nil {
		t.Fatalf("GetPayment: %v", err)
	}
	if p != (types.CEP47{TokenID: bytesrepr.NewU256(7)}) {
		t.Fatalf("unexpected payment %#v", p)
	}
}

func TestGet_Missing(t *testing.T) {
	ctx := context.Background()
	s := local.NewStore()
	defer s.Close()

	var u bytesrepr.U512
	err := cltypes.Get(ctx, s, "absent", &u)
	if !errors.Is(err, cltypes.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	if k, ok := cltypes.IsKeyError(err); !ok || k.Op != "get" || k.Name != "absent" {
		t.Fatalf("expected get KeyError, got %v", err)
	}
	if _, err := cltypes.GetPayment(ctx, s, "absent"); !errors.Is(err, cltypes.ErrKeyNotFound) {
		t.Fatalf("GetPayment: expected ErrKeyNotFound, got %v", err)
	}
}

func TestGet_Truncated(t *testing.T) {
	ctx := context.Background()
	s := local.NewStore()
	defer s.Close()

	if err := s.PutKey(ctx, "test", []byte{1, 1, 1}); err != nil {
		t.Fatalf("PutKey: %v", err)
	}
	_, err := cltypes.GetOffer(ctx, s, "test")
	if !errors.Is(err, bytesrepr.ErrUnexpectedEnd) {
		t.Fatalf("expected ErrUnexpectedEnd, got %v", err)
	}
	if k, ok := cltypes.IsKeyError(err); !ok || k.Op != "decode" {
		t.Fatalf("expected decode KeyError, got %v", err)
	}
}
