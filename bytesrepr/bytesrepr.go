// Package bytesrepr implements the binary representation used to move
// contract values across the host storage boundary.
//
// Every encodable value reports its exact serialized length up front,
// appends its encoding to a buffer sized to that length, and decodes by
// consuming a prefix of its input and returning the unconsumed
// remainder. Composite values are built purely by composing the
// primitives in this package, field by field, in declaration order.
//
// The layout is little-endian throughout:
//
//	u8        [1]value
//	u32, u64  [4|8]little-endian value
//	U256/U512 [1]n [n]little-endian magnitude, trailing zero bytes dropped
//	hash      [32]raw bytes
//	Vec[T]    [4]u32 element count, then each element
package bytesrepr

import (
	"fmt"
	"math"
)

// MaxSerializedLength is the largest encoding AllocateBuffer will hand
// out. Lengths are carried as u32 on the host side, less the u32
// length prefix the host adds when it stores a value.
const MaxSerializedLength uint64 = math.MaxUint32 - U32SerializedLength

// Encoder is implemented by values with a binary representation.
type Encoder interface {
	// SerializedLength returns the exact number of bytes AppendBytes
	// will append.
	SerializedLength() int

	// AppendBytes appends the encoding of the value to dst and returns
	// the extended slice.
	AppendBytes(dst []byte) ([]byte, error)
}

// Decoder is implemented by pointers to values with a binary
// representation.
type Decoder interface {
	// FromBytes decodes one value from the front of b into the
	// receiver and returns the unconsumed remainder.
	FromBytes(b []byte) ([]byte, error)
}

// AllocateBuffer returns an empty buffer with capacity for exactly the
// serialized length of v.
func AllocateBuffer(v Encoder) ([]byte, error) {
	n := v.SerializedLength()
	if n < 0 || uint64(n) > MaxSerializedLength {
		return nil, fmt.Errorf("%w: %d bytes", ErrAllocation, n)
	}
	return make([]byte, 0, n), nil
}

// ToBytes encodes v into a freshly allocated buffer whose length equals
// v.SerializedLength().
func ToBytes(v Encoder) ([]byte, error) {
	buf, err := AllocateBuffer(v)
	if err != nil {
		return nil, err
	}
	buf, err = v.AppendBytes(buf)
	if err != nil {
		return nil, err
	}
	if want := v.SerializedLength(); len(buf) != want {
		return nil, fmt.Errorf("bytesrepr: %T encoded to %d bytes, reported %d", v, len(buf), want)
	}
	return buf, nil
}

// Deserialize decodes exactly one value from b into d. Unlike
// FromBytes, the whole input must be consumed.
func Deserialize(b []byte, d Decoder) error {
	rest, err := d.FromBytes(b)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return fmt.Errorf("%w: %d trailing", ErrLeftOverBytes, len(rest))
	}
	return nil
}

// take splits the first n bytes off b.
func take(b []byte, n int) (head, rest []byte, err error) {
	if len(b) < n {
		return nil, nil, ErrUnexpectedEnd
	}
	return b[:n], b[n:], nil
}
