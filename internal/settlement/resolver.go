package settlement

import (
	"time"

	"github.com/shopspring/decimal"
)

// Offer is the bid shape the resolver ranks. Both model.Bid and
// model.ShippingBid implement it.
type Offer interface {
	OfferID() string
	OfferAmount() decimal.Decimal
	OfferCreatedAt() time.Time
}

// Decision is the resolver's verdict for one order and one phase: a winning
// bid plus the bids to reject, or an explicit no-winner marker when there was
// nothing to rank.
type Decision[B Offer] struct {
	NoWinner bool
	Winner   B
	Losers   []B
}

// Resolve selects the winning bid among the pending bids of a single order.
// The lowest amount wins; ties go to the earliest-created bid, then to the
// lexicographically smallest ID, so the outcome is deterministic regardless
// of input ordering. The input is never mutated and no I/O is performed.
//
// Callers must supply bids already filtered to one order and pending status;
// the resolver does not re-check either.
func Resolve[B Offer](pending []B) Decision[B] {
	if len(pending) == 0 {
		return Decision[B]{NoWinner: true}
	}

	winner := 0
	for i := 1; i < len(pending); i++ {
		if offerLess(pending[i], pending[winner]) {
			winner = i
		}
	}

	losers := make([]B, 0, len(pending)-1)
	for i, bid := range pending {
		if i != winner {
			losers = append(losers, bid)
		}
	}

	return Decision[B]{Winner: pending[winner], Losers: losers}
}

// offerLess orders bids by amount ascending, then submission time, then ID.
func offerLess(a, b Offer) bool {
	if cmp := a.OfferAmount().Cmp(b.OfferAmount()); cmp != 0 {
		return cmp < 0
	}
	if !a.OfferCreatedAt().Equal(b.OfferCreatedAt()) {
		return a.OfferCreatedAt().Before(b.OfferCreatedAt())
	}
	return a.OfferID() < b.OfferID()
}
