package types

import (
	"errors"
	"fmt"

	"github.com/blockberries/cltypes/bytesrepr"
)

// Tag is the discriminant byte that prefixes an encoded Payment.
//
// Values are part of the stored format. New variants take the next
// unused value; existing values are never reassigned.
type Tag uint8

const (
	TagCSPR  Tag = 0
	TagERC20 Tag = 1
	TagCEP47 Tag = 2
)

func (t Tag) String() string {
	switch t {
	case TagCSPR:
		return "CSPR"
	case TagERC20:
		return "ERC20"
	case TagCEP47:
		return "CEP47"
	default:
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
}

// Payment is a settlement method: exactly one of CSPR, ERC20 or CEP47.
// Every variant encodes as its Tag byte followed by its fields.
type Payment interface {
	bytesrepr.Encoder
	Tag() Tag
	isPayment()
}

// Compile-time interface checks.
var (
	_ Payment = CSPR{}
	_ Payment = ERC20{}
	_ Payment = CEP47{}
)

// CSPR pays in native motes.
type CSPR struct {
	Amount bytesrepr.U512
}

// ERC20 pays in a fungible token held by the contract at ContractHash.
type ERC20 struct {
	ContractHash ContractHash
	Amount       bytesrepr.U256
}

// CEP47 pays with the NFT TokenID from the Collection contract.
//
// Its byte layout is identical to ERC20; only the tag tells them apart.
type CEP47 struct {
	Collection ContractHash
	TokenID    bytesrepr.U256
}

func (CSPR) Tag() Tag  { return TagCSPR }
func (ERC20) Tag() Tag { return TagERC20 }
func (CEP47) Tag() Tag { return TagCEP47 }

func (CSPR) isPayment()  {}
func (ERC20) isPayment() {}
func (CEP47) isPayment() {}

func (p CSPR) SerializedLength() int {
	return bytesrepr.U8SerializedLength + p.Amount.SerializedLength()
}

func (p CSPR) AppendBytes(dst []byte) ([]byte, error) {
	dst = bytesrepr.AppendU8(dst, uint8(TagCSPR))
	return p.Amount.AppendBytes(dst)
}

func (p ERC20) SerializedLength() int {
	return bytesrepr.U8SerializedLength + p.ContractHash.SerializedLength() + p.Amount.SerializedLength()
}

func (p ERC20) AppendBytes(dst []byte) ([]byte, error) {
	dst = bytesrepr.AppendU8(dst, uint8(TagERC20))
	dst, err := p.ContractHash.AppendBytes(dst)
	if err != nil {
		return nil, err
	}
	return p.Amount.AppendBytes(dst)
}

func (p CEP47) SerializedLength() int {
	return bytesrepr.U8SerializedLength + p.Collection.SerializedLength() + p.TokenID.SerializedLength()
}

func (p CEP47) AppendBytes(dst []byte) ([]byte, error) {
	dst = bytesrepr.AppendU8(dst, uint8(TagCEP47))
	dst, err := p.Collection.AppendBytes(dst)
	if err != nil {
		return nil, err
	}
	return p.TokenID.AppendBytes(dst)
}

// MarshalPayment encodes p into a buffer of exactly
// p.SerializedLength() bytes.
func MarshalPayment(p Payment) ([]byte, error) {
	if p == nil {
		return nil, errors.New("types: marshal nil Payment")
	}
	return bytesrepr.ToBytes(p)
}

// DecodePayment decodes one Payment from the front of b and returns
// the unconsumed remainder.
func DecodePayment(b []byte) (Payment, []byte, error) {
	tag, rest, err := bytesrepr.DecodeU8(b)
	if err != nil {
		return nil, nil, bytesrepr.WrapField("Payment", "tag", err)
	}
	switch Tag(tag) {
	case TagCSPR:
		var p CSPR
		if rest, err = p.Amount.FromBytes(rest); err != nil {
			return nil, nil, bytesrepr.WrapField("CSPR", "amount", err)
		}
		return p, rest, nil
	case TagERC20:
		var p ERC20
		if rest, err = p.ContractHash.FromBytes(rest); err != nil {
			return nil, nil, bytesrepr.WrapField("ERC20", "contract_hash", err)
		}
		if rest, err = p.Amount.FromBytes(rest); err != nil {
			return nil, nil, bytesrepr.WrapField("ERC20", "amount", err)
		}
		return p, rest, nil
	case TagCEP47:
		var p CEP47
		if rest, err = p.Collection.FromBytes(rest); err != nil {
			return nil, nil, bytesrepr.WrapField("CEP47", "collection", err)
		}
		if rest, err = p.TokenID.FromBytes(rest); err != nil {
			return nil, nil, bytesrepr.WrapField("CEP47", "token_id", err)
		}
		return p, rest, nil
	default:
		return nil, nil, fmt.Errorf("%w: payment tag %d", bytesrepr.ErrUnknownDiscriminant, tag)
	}
}

// UnmarshalPayment decodes a Payment that must occupy all of b.
func UnmarshalPayment(b []byte) (Payment, error) {
	p, rest, err := DecodePayment(b)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing after Payment", bytesrepr.ErrLeftOverBytes, len(rest))
	}
	return p, nil
}
