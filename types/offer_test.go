package types_test

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/blockberries/cltypes/bytesrepr"
	"github.com/blockberries/cltypes/types"
)

var testMaker = types.MustParseAccountHash(
	"account-hash-ad7e091267d82c3b9ed1987cb780a005a550e6b3d1ca333b743e2dba70680877",
)

func sampleOffer() types.Offer {
	item := types.OfferItem{Maker: testMaker, Price: bytesrepr.NewU512(100), OfferTime: 1234}
	return types.Offer{
		ID:      bytesrepr.NewU256(1),
		TokenID: bytesrepr.NewU256(100),
		Offers:  []types.OfferItem{item, item},
	}
}

func TestOfferItem_Layout(t *testing.T) {
	item := types.OfferItem{Maker: testMaker, Price: bytesrepr.NewU512(100), OfferTime: 1234}
	data, err := bytesrepr.ToBytes(item)
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}
	want := append(append([]byte{}, testMaker[:]...), 0x01, 0x64, 0xD2, 0x04, 0, 0, 0, 0, 0, 0)
	if !bytes.Equal(data, want) {
		t.Fatalf("got %x, want %x", data, want)
	}

	var got types.OfferItem
	rest, err := got.FromBytes(data)
	if err != nil || len(rest) != 0 || got != item {
		t.Fatalf("FromBytes: %+v, %v, rest %x", got, err, rest)
	}
}

func TestOffer_RoundTrip(t *testing.T) {
	offer := sampleOffer()
	data, err := types.MarshalOffer(offer)
	if err != nil {
		t.Fatalf("MarshalOffer: %v", err)
	}
	if len(data) != offer.SerializedLength() {
		t.Fatalf("encoded %d bytes, SerializedLength %d", len(data), offer.SerializedLength())
	}
	// id(2) + token_id(2) + count(4) + 2 * (maker 32 + price 2 + time 8)
	if len(data) != 2+2+4+2*42 {
		t.Fatalf("unexpected length %d", len(data))
	}

	got, rest, err := types.DecodeOffer(data)
	if err != nil {
		t.Fatalf("DecodeOffer: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("expected empty remainder, got %x", rest)
	}
	if len(got.Offers) != 2 {
		t.Fatalf("expected 2 offers, got %d", len(got.Offers))
	}
	if !reflect.DeepEqual(got, offer) {
		t.Fatalf("round-trip mismatch:\n got %+v\nwant %+v", got, offer)
	}
}

func TestOffer_OrderPreserved(t *testing.T) {
	offer := types.Offer{ID: bytesrepr.NewU256(7)}
	for i := uint64(0); i < 5; i++ {
		offer.Offers = append(offer.Offers, types.OfferItem{
			Maker:     types.AccountHash{byte(i)},
			Price:     bytesrepr.NewU512(1000 - i),
			OfferTime: i,
		})
	}
	data, err := types.MarshalOffer(offer)
	if err != nil {
		t.Fatalf("MarshalOffer: %v", err)
	}
	got, err := types.UnmarshalOffer(data)
	if err != nil {
		t.Fatalf("UnmarshalOffer: %v", err)
	}
	for i, item := range got.Offers {
		if item.OfferTime != uint64(i) || item.Maker[0] != byte(i) {
			t.Fatalf("offer %d out of order: %+v", i, item)
		}
	}
}

func TestOffer_Empty(t *testing.T) {
	offer := types.Offer{ID: bytesrepr.NewU256(1), TokenID: bytesrepr.NewU256(100)}
	data, err := types.MarshalOffer(offer)
	if err != nil {
		t.Fatalf("MarshalOffer: %v", err)
	}
	if !bytes.Equal(data, []byte{1, 1, 1, 100, 0, 0, 0, 0}) {
		t.Fatalf("unexpected encoding %x", data)
	}
	got, err := types.UnmarshalOffer(data)
	if err != nil {
		t.Fatalf("UnmarshalOffer: %v", err)
	}
	if len(got.Offers) != 0 {
		t.Fatalf("expected no offers, got %d", len(got.Offers))
	}
}

func TestOffer_StopsAtRecordedCount(t *testing.T) {
	data, _ := types.MarshalOffer(sampleOffer())
	trailing := append(data, 0xDE, 0xAD)

	got, rest, err := types.DecodeOffer(trailing)
	if err != nil {
		t.Fatalf("DecodeOffer: %v", err)
	}
	if len(got.Offers) != 2 {
		t.Fatalf("expected 2 offers, got %d", len(got.Offers))
	}
	if !bytes.Equal(rest, []byte{0xDE, 0xAD}) {
		t.Fatalf("unexpected remainder %x", rest)
	}
	if _, err := types.UnmarshalOffer(trailing); !errors.Is(err, bytesrepr.ErrLeftOverBytes) {
		t.Fatalf("expected ErrLeftOverBytes, got %v", err)
	}
}

func TestOffer_Truncated(t *testing.T) {
	data, _ := types.MarshalOffer(sampleOffer())
	if _, _, err := types.DecodeOffer(nil); !errors.Is(err, bytesrepr.ErrUnexpectedEnd) {
		t.Fatalf("empty input: expected ErrUnexpectedEnd, got %v", err)
	}
	for cut := 1; cut < len(data); cut++ {
		_, _, err := types.DecodeOffer(data[:cut])
		if !errors.Is(err, bytesrepr.ErrUnexpectedEnd) {
			t.Fatalf("cut at %d: expected ErrUnexpectedEnd, got %v", cut, err)
		}
	}
}

func TestOffer_ErrorNamesFailingField(t *testing.T) {
	data, _ := types.MarshalOffer(sampleOffer())
	// Cut inside the second item's price.
	_, _, err := types.DecodeOffer(data[:2+2+4+42+33])
	fe, ok := bytesrepr.IsFieldError(err)
	if !ok {
		t.Fatalf("expected FieldError, got %v", err)
	}
	if fe.Type != "OfferItem" || fe.Field != "price" {
		t.Fatalf("unexpected field %s.%s", fe.Type, fe.Field)
	}
}

func TestOffer_FailedDecodeLeavesReceiver(t *testing.T) {
	offer := sampleOffer()
	before := offer
	if _, err := offer.FromBytes([]byte{1, 5}); err == nil {
		t.Fatal("expected error")
	}
	if !reflect.DeepEqual(offer, before) {
		t.Fatal("receiver modified by failed decode")
	}
}
