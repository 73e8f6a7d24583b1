package types

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/blockberries/cltypes/bytesrepr"
)

// Textual prefixes of the formatted identifier strings.
const (
	AccountHashPrefix  = "account-hash-"
	ContractHashPrefix = "hash-"
)

// ErrInvalidHashFormat is returned when a formatted identifier cannot
// be parsed.
var ErrInvalidHashFormat = errors.New("types: invalid formatted hash")

// AccountHash identifies an account. On the wire it is its 32 raw bytes.
type AccountHash bytesrepr.Hash

// ContractHash identifies a deployed contract. On the wire it is its
// 32 raw bytes.
type ContractHash bytesrepr.Hash

// ParseAccountHash parses the "account-hash-<64 hex>" form.
func ParseAccountHash(s string) (AccountHash, error) {
	h, err := parseFormatted(s, AccountHashPrefix)
	return AccountHash(h), err
}

// ParseContractHash parses the "hash-<64 hex>" form.
func ParseContractHash(s string) (ContractHash, error) {
	h, err := parseFormatted(s, ContractHashPrefix)
	return ContractHash(h), err
}

// MustParseAccountHash is ParseAccountHash that panics on error, for
// package-level fixtures.
func MustParseAccountHash(s string) AccountHash {
	h, err := ParseAccountHash(s)
	if err != nil {
		panic(err)
	}
	return h
}

// MustParseContractHash is ParseContractHash that panics on error.
func MustParseContractHash(s string) ContractHash {
	h, err := ParseContractHash(s)
	if err != nil {
		panic(err)
	}
	return h
}

func (h AccountHash) String() string {
	return AccountHashPrefix + hex.EncodeToString(h[:])
}

func (h ContractHash) String() string {
	return ContractHashPrefix + hex.EncodeToString(h[:])
}

func (h AccountHash) SerializedLength() int { return bytesrepr.HashLength }

func (h AccountHash) AppendBytes(dst []byte) ([]byte, error) {
	return bytesrepr.Hash(h).AppendBytes(dst)
}

func (h *AccountHash) FromBytes(b []byte) ([]byte, error) {
	return (*bytesrepr.Hash)(h).FromBytes(b)
}

func (h ContractHash) SerializedLength() int { return bytesrepr.HashLength }

func (h ContractHash) AppendBytes(dst []byte) ([]byte, error) {
	return bytesrepr.Hash(h).AppendBytes(dst)
}

func (h *ContractHash) FromBytes(b []byte) ([]byte, error) {
	return (*bytesrepr.Hash)(h).FromBytes(b)
}

func parseFormatted(s, prefix string) (bytesrepr.Hash, error) {
	var h bytesrepr.Hash
	rest, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return h, fmt.Errorf("%w: %q: missing %q prefix", ErrInvalidHashFormat, s, prefix)
	}
	if len(rest) != hex.EncodedLen(bytesrepr.HashLength) {
		return h, fmt.Errorf("%w: %q: want %d hex digits", ErrInvalidHashFormat, s, hex.EncodedLen(bytesrepr.HashLength))
	}
	if _, err := hex.Decode(h[:], []byte(rest)); err != nil {
		return h, fmt.Errorf("%w: %q: %v", ErrInvalidHashFormat, s, err)
	}
	return h, nil
}
