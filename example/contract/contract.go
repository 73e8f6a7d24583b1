// Package contract implements the demonstration contract calls that
// construct sample Payment and Offer values and store them under
// named keys.
//
// Each call encodes every value before the first write and aborts on
// the first failure; there is no partial success.
package contract

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/blockberries/cltypes"
	"github.com/blockberries/cltypes/bytesrepr"
	"github.com/blockberries/cltypes/logging"
	"github.com/blockberries/cltypes/types"
)

// Named keys written by the calls.
const (
	KeyCSPR  = "mem1"
	KeyERC20 = "mem2"
	KeyCEP47 = "mem3"
	KeyOffer = "test"
)

// Identifiers used by the sample values.
const (
	SampleContractHash = "hash-033a6a5f47f9f247e1a3bd1307ea5d94a232ddec05aaa6b91363589e94728381"
	SampleMaker        = "account-hash-ad7e091267d82c3b9ed1987cb780a005a550e6b3d1ca333b743e2dba70680877"
)

// Contract runs calls against a host store.
type Contract struct {
	store cltypes.Store
	log   *logrus.Entry
}

// New creates a contract bound to store. A nil log discards output.
func New(store cltypes.Store, log *logrus.Entry) *Contract {
	if log == nil {
		log = logging.Discard()
	}
	return &Contract{store: store, log: log}
}

// SamplePayments returns one payment of each kind, keyed by the name
// InstallPayments stores it under.
func SamplePayments() (map[string]types.Payment, error) {
	contract, err := types.ParseContractHash(SampleContractHash)
	if err != nil {
		return nil, err
	}
	return map[string]types.Payment{
		KeyCSPR:  types.CSPR{Amount: bytesrepr.NewU512(123)},
		KeyERC20: types.ERC20{ContractHash: contract, Amount: bytesrepr.NewU256(1)},
		KeyCEP47: types.CEP47{Collection: contract, TokenID: bytesrepr.NewU256(1)},
	}, nil
}

// SampleOffer returns an offer on token 100 holding two identical bids.
func SampleOffer() (types.Offer, error) {
	maker, err := types.ParseAccountHash(SampleMaker)
	if err != nil {
		return types.Offer{}, err
	}
	item := types.OfferItem{
		Maker:     maker,
		Price:     bytesrepr.NewU512(100),
		OfferTime: 1234,
	}
	return types.Offer{
		ID:      bytesrepr.NewU256(1),
		TokenID: bytesrepr.NewU256(100),
		Offers:  []types.OfferItem{item, item},
	}, nil
}

// InstallPayments stores the sample payments under mem1, mem2 and mem3.
func (c *Contract) InstallPayments(ctx context.Context) error {
	payments, err := SamplePayments()
	if err != nil {
		return err
	}
	return c.install(ctx, []entry{
		{KeyCSPR, payments[KeyCSPR]},
		{KeyERC20, payments[KeyERC20]},
		{KeyCEP47, payments[KeyCEP47]},
	})
}

// InstallOffer stores the sample offer under "test".
func (c *Contract) InstallOffer(ctx context.Context) error {
	offer, err := SampleOffer()
	if err != nil {
		return err
	}
	return c.install(ctx, []entry{{KeyOffer, offer}})
}

type entry struct {
	name  string
	value bytesrepr.Encoder
}

func (c *Contract) install(ctx context.Context, entries []entry) error {
	encoded := make([][]byte, len(entries))
	for i, e := range entries {
		data, err := bytesrepr.ToBytes(e.value)
		if err != nil {
			return cltypes.NewKeyError("encode", e.name, err)
		}
		encoded[i] = data
	}
	for i, e := range entries {
		if err := c.store.PutKey(ctx, e.name, encoded[i]); err != nil {
			c.log.WithError(err).WithField("key", e.name).Error("call aborted")
			return cltypes.NewKeyError("put", e.name, err)
		}
		c.log.WithFields(logrus.Fields{"key": e.name, "bytes": len(encoded[i])}).Info("stored")
	}
	return nil
}
