// Package cltypes moves contract values across the host storage
// boundary.
//
// Values are encoded with their bytesrepr codec and written under a
// caller-chosen name in a [Store]; reading a name back decodes the
// stored bytes into a fresh value. The store only ever sees opaque
// byte payloads. Adapters live in the local, redisstore and grpc
// packages.
package cltypes

import (
	"context"

	"github.com/blockberries/cltypes/bytesrepr"
	"github.com/blockberries/cltypes/types"
)

// Store is a named-key byte store on the host side of the boundary.
// Implementations must be safe for concurrent use.
type Store interface {
	// PutKey writes value under name, replacing whatever was stored
	// there. There is no partial update.
	PutKey(ctx context.Context, name string, value []byte) error

	// GetKey returns the bytes stored under name, or ErrKeyNotFound.
	// The returned slice is owned by the caller.
	GetKey(ctx context.Context, name string) ([]byte, error)

	// Close releases the store's resources.
	Close() error
}

// Put encodes v and writes it under name. Nothing is written if
// encoding fails.
func Put(ctx context.Context, s Store, name string, v bytesrepr.Encoder) error {
	data, err := bytesrepr.ToBytes(v)
	if err != nil {
		return NewKeyError("encode", name, err)
	}
	if err := s.PutKey(ctx, name, data); err != nil {
		return NewKeyError("put", name, err)
	}
	return nil
}

// Get reads name and decodes it into d. The stored bytes must hold
// exactly one value.
func Get(ctx context.Context, s Store, name string, d bytesrepr.Decoder) error {
	data, err := s.GetKey(ctx, name)
	if err != nil {
		return NewKeyError("get", name, err)
	}
	if err := bytesrepr.Deserialize(data, d); err != nil {
		return NewKeyError("decode", name, err)
	}
	return nil
}

// GetPayment reads the Payment stored under name.
func GetPayment(ctx context.Context, s Store, name string) (types.Payment, error) {
	data, err := s.GetKey(ctx, name)
	if err != nil {
		return nil, NewKeyError("get", name, err)
	}
	p, err := types.UnmarshalPayment(data)
	if err != nil {
		return nil, NewKeyError("decode", name, err)
	}
	return p, nil
}

// GetOffer reads the Offer stored under name.
func GetOffer(ctx context.Context, s Store, name string) (types.Offer, error) {
	var o types.Offer
	if err := Get(ctx, s, name, &o); err != nil {
		return types.Offer{}, err
	}
	return o, nil
}
