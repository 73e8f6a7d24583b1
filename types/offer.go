package types

import "github.com/blockberries/cltypes/bytesrepr"

// OfferItem is a single bid.
type OfferItem struct {
	Maker AccountHash
	Price bytesrepr.U512
	// OfferTime is a logical timestamp supplied by the caller.
	OfferTime uint64
}

// Offer collects the bids placed on one token. Offers is kept in bid
// order and may contain duplicates.
type Offer struct {
	ID      bytesrepr.U256
	TokenID bytesrepr.U256
	Offers  []OfferItem
}

// Compile-time interface checks.
var (
	_ bytesrepr.Encoder = OfferItem{}
	_ bytesrepr.Decoder = (*OfferItem)(nil)
	_ bytesrepr.Encoder = Offer{}
	_ bytesrepr.Decoder = (*Offer)(nil)
)

func (o OfferItem) SerializedLength() int {
	return o.Maker.SerializedLength() + o.Price.SerializedLength() + bytesrepr.U64SerializedLength
}

func (o OfferItem) AppendBytes(dst []byte) ([]byte, error) {
	dst, err := o.Maker.AppendBytes(dst)
	if err != nil {
		return nil, err
	}
	if dst, err = o.Price.AppendBytes(dst); err != nil {
		return nil, err
	}
	return bytesrepr.AppendU64(dst, o.OfferTime), nil
}

func (o *OfferItem) FromBytes(b []byte) ([]byte, error) {
	var item OfferItem
	rest, err := item.Maker.FromBytes(b)
	if err != nil {
		return nil, bytesrepr.WrapField("OfferItem", "maker", err)
	}
	if rest, err = item.Price.FromBytes(rest); err != nil {
		return nil, bytesrepr.WrapField("OfferItem", "price", err)
	}
	if item.OfferTime, rest, err = bytesrepr.DecodeU64(rest); err != nil {
		return nil, bytesrepr.WrapField("OfferItem", "offer_time", err)
	}
	*o = item
	return rest, nil
}

func (o Offer) SerializedLength() int {
	return o.ID.SerializedLength() + o.TokenID.SerializedLength() + bytesrepr.VecSerializedLength(o.Offers)
}

func (o Offer) AppendBytes(dst []byte) ([]byte, error) {
	dst, err := o.ID.AppendBytes(dst)
	if err != nil {
		return nil, err
	}
	if dst, err = o.TokenID.AppendBytes(dst); err != nil {
		return nil, err
	}
	return bytesrepr.AppendVec(dst, o.Offers)
}

// FromBytes decodes an Offer from the front of b. The receiver is
// left untouched if any field fails.
func (o *Offer) FromBytes(b []byte) ([]byte, error) {
	var offer Offer
	rest, err := offer.ID.FromBytes(b)
	if err != nil {
		return nil, bytesrepr.WrapField("Offer", "id", err)
	}
	if rest, err = offer.TokenID.FromBytes(rest); err != nil {
		return nil, bytesrepr.WrapField("Offer", "token_id", err)
	}
	if offer.Offers, rest, err = bytesrepr.DecodeVec[OfferItem](rest); err != nil {
		return nil, bytesrepr.WrapField("Offer", "offers", err)
	}
	*o = offer
	return rest, nil
}

// MarshalOffer encodes o into a buffer of exactly o.SerializedLength()
// bytes.
func MarshalOffer(o Offer) ([]byte, error) {
	return bytesrepr.ToBytes(o)
}

// DecodeOffer decodes one Offer from the front of b and returns the
// unconsumed remainder.
func DecodeOffer(b []byte) (Offer, []byte, error) {
	var o Offer
	rest, err := o.FromBytes(b)
	return o, rest, err
}

// UnmarshalOffer decodes an Offer that must occupy all of b.
func UnmarshalOffer(b []byte) (Offer, error) {
	var o Offer
	err := bytesrepr.Deserialize(b, &o)
	return o, err
}
