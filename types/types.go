// Package types defines the contract values stored under named keys:
// the Payment tagged union and the Offer record with its OfferItem
// bids, together with the account and contract hash identifiers they
// reference.
//
// Every type carries a hand-written bytesrepr codec. The byte layout
// is the compatibility surface with previously stored values: Payment
// tags, field order and the sequence count prefix must not change.
package types
