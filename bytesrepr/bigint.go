package bytesrepr

import (
	"fmt"
	"math/big"
	"math/bits"
)

// U256 is an unsigned 256-bit integer stored as little-endian 64-bit
// limbs. The zero value is 0 and values compare with ==.
type U256 [4]uint64

// U512 is an unsigned 512-bit integer stored as little-endian 64-bit
// limbs. The zero value is 0 and values compare with ==.
type U512 [8]uint64

// NewU256 returns v as a U256.
func NewU256(v uint64) U256 { return U256{v} }

// NewU512 returns v as a U512.
func NewU512(v uint64) U512 { return U512{v} }

// U256FromBig converts x, which must be in [0, 2^256).
func U256FromBig(x *big.Int) (U256, error) {
	var u U256
	if err := limbsFromBig(u[:], x); err != nil {
		return U256{}, fmt.Errorf("U256: %w", err)
	}
	return u, nil
}

// U512FromBig converts x, which must be in [0, 2^512).
func U512FromBig(x *big.Int) (U512, error) {
	var u U512
	if err := limbsFromBig(u[:], x); err != nil {
		return U512{}, fmt.Errorf("U512: %w", err)
	}
	return u, nil
}

// Big returns u as a new big.Int.
func (u U256) Big() *big.Int { return limbsToBig(u[:]) }

// String returns u in decimal.
func (u U256) String() string { return u.Big().String() }

// IsZero reports whether u is zero.
func (u U256) IsZero() bool { return u == U256{} }

// Big returns u as a new big.Int.
func (u U512) Big() *big.Int { return limbsToBig(u[:]) }

// String returns u in decimal.
func (u U512) String() string { return u.Big().String() }

// IsZero reports whether u is zero.
func (u U512) IsZero() bool { return u == U512{} }

func (u U256) SerializedLength() int { return U8SerializedLength + magnitudeLen(u[:]) }

func (u U256) AppendBytes(dst []byte) ([]byte, error) { return appendLimbs(dst, u[:]), nil }

func (u *U256) FromBytes(b []byte) ([]byte, error) {
	var v U256
	rest, err := decodeLimbs(b, v[:])
	if err != nil {
		return nil, err
	}
	*u = v
	return rest, nil
}

func (u U512) SerializedLength() int { return U8SerializedLength + magnitudeLen(u[:]) }

func (u U512) AppendBytes(dst []byte) ([]byte, error) { return appendLimbs(dst, u[:]), nil }

func (u *U512) FromBytes(b []byte) ([]byte, error) {
	var v U512
	rest, err := decodeLimbs(b, v[:])
	if err != nil {
		return nil, err
	}
	*u = v
	return rest, nil
}

// magnitudeLen is the number of bytes needed for the value with
// trailing (most significant) zero bytes dropped.
func magnitudeLen(limbs []uint64) int {
	for i := len(limbs) - 1; i >= 0; i-- {
		if limbs[i] != 0 {
			return i*8 + (bits.Len64(limbs[i])+7)/8
		}
	}
	return 0
}

func appendLimbs(dst []byte, limbs []uint64) []byte {
	n := magnitudeLen(limbs)
	dst = append(dst, byte(n))
	for i := 0; i < n; i++ {
		dst = append(dst, byte(limbs[i/8]>>(8*(i%8))))
	}
	return dst
}

// decodeLimbs fills limbs, which must be zeroed, from the front of b.
// Non-minimal encodings with trailing zero bytes are accepted.
func decodeLimbs(b []byte, limbs []uint64) ([]byte, error) {
	n, rest, err := DecodeU8(b)
	if err != nil {
		return nil, err
	}
	if int(n) > len(limbs)*8 {
		return nil, fmt.Errorf("%w: %d-byte magnitude for %d-bit integer", ErrFormatting, n, len(limbs)*64)
	}
	mag, rest, err := take(rest, int(n))
	if err != nil {
		return nil, err
	}
	for i, c := range mag {
		limbs[i/8] |= uint64(c) << (8 * (i % 8))
	}
	return rest, nil
}

func limbsFromBig(limbs []uint64, x *big.Int) error {
	if x.Sign() < 0 {
		return fmt.Errorf("negative value %s", x)
	}
	if x.BitLen() > len(limbs)*64 {
		return fmt.Errorf("value %s overflows %d bits", x, len(limbs)*64)
	}
	be := x.FillBytes(make([]byte, len(limbs)*8))
	for i := range be {
		c := be[len(be)-1-i]
		limbs[i/8] |= uint64(c) << (8 * (i % 8))
	}
	return nil
}

func limbsToBig(limbs []uint64) *big.Int {
	be := make([]byte, len(limbs)*8)
	for i := range be {
		be[len(be)-1-i] = byte(limbs[i/8] >> (8 * (i % 8)))
	}
	return new(big.Int).SetBytes(be)
}
