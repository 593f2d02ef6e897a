package settlement

import (
	"context"
	"fmt"
	"time"

	model "github.com/6ixapp/morren/internal/models"
	"golang.org/x/sync/errgroup"
)

// Phase identifies which bidding phase a settlement action belongs to
type Phase string

const (
	PhaseSeller   Phase = "seller"
	PhaseShipping Phase = "shipping"
)

// Outcome classifies the result of a settlement attempt
type Outcome string

const (
	// OutcomeNotApplicable means the order was not in an eligible status or
	// its bidding window had not closed yet. Not an error.
	OutcomeNotApplicable Outcome = "not_applicable"
	// OutcomeAccepted means a winning bid was accepted and the order moved on.
	OutcomeAccepted Outcome = "accepted"
	// OutcomeRejected means the seller window closed with no bids and the
	// order was rejected.
	OutcomeRejected Outcome = "rejected"
	// OutcomeNoWinner means the shipping window closed with no bids; the
	// order stays accepted so a carrier can still be found manually.
	OutcomeNoWinner Outcome = "no_winner"
)

// Result reports what a settlement attempt did
type Result struct {
	Outcome     Outcome
	WinnerBidID string
}

// StepError tags a persistence failure with the order and the settlement step
// that produced it. Settlement never rolls back: the order is simply retried
// on the next sweep, and the status preconditions make that retry safe.
type StepError struct {
	OrderID string
	Phase   Phase
	Step    string
	Err     error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("settle order %s (%s phase): %s: %v", e.OrderID, e.Phase, e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Store is the slice of the persistence API the executor needs
type Store interface {
	ListPendingBids(ctx context.Context, orderID string) ([]model.Bid, error)
	ListPendingShippingBids(ctx context.Context, orderID string) ([]model.ShippingBid, error)
	UpdateBidStatus(ctx context.Context, bidID string, status model.BidStatus) (model.Bid, error)
	UpdateShippingBidStatus(ctx context.Context, bidID string, status model.BidStatus) (model.ShippingBid, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) (model.Order, error)
}

// Executor carries out auction decisions against the store with a fixed
// ordering: accept the winner, then reject the losers, then transition the
// order
type Executor struct {
	store Store
}

// NewExecutor creates a new Executor backed by the given store
func NewExecutor(store Store) *Executor {
	return &Executor{store: store}
}

// SettleSellerPhase settles the seller bidding phase of an order whose window
// has closed. Orders not in pending status or still inside their window are
// skipped with OutcomeNotApplicable. A closed window with no pending bids
// rejects the order.
func (e *Executor) SettleSellerPhase(ctx context.Context, order model.Order, now time.Time) (Result, error) {
	if order.Status != model.OrderStatusPending || !IsSellerPhaseExpired(order, now) {
		return Result{Outcome: OutcomeNotApplicable}, nil
	}

	pending, err := e.store.ListPendingBids(ctx, order.ID)
	if err != nil {
		return Result{}, &StepError{OrderID: order.ID, Phase: PhaseSeller, Step: "list pending bids", Err: err}
	}

	decision := Resolve(pending)
	if decision.NoWinner {
		if _, err := e.store.UpdateOrderStatus(ctx, order.ID, model.OrderStatusRejected); err != nil {
			return Result{}, &StepError{OrderID: order.ID, Phase: PhaseSeller, Step: "reject order", Err: err}
		}
		return Result{Outcome: OutcomeRejected}, nil
	}

	if _, err := e.store.UpdateBidStatus(ctx, decision.Winner.ID, model.BidStatusAccepted); err != nil {
		return Result{}, &StepError{OrderID: order.ID, Phase: PhaseSeller, Step: "accept winning bid", Err: err}
	}

	// Losers are independent of each other, so their rejections fan out
	// concurrently. All of them must land before the order transitions.
	g, gctx := errgroup.WithContext(ctx)
	for _, loser := range decision.Losers {
		loser := loser
		g.Go(func() error {
			_, err := e.store.UpdateBidStatus(gctx, loser.ID, model.BidStatusRejected)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, &StepError{OrderID: order.ID, Phase: PhaseSeller, Step: "reject losing bids", Err: err}
	}

	if _, err := e.store.UpdateOrderStatus(ctx, order.ID, model.OrderStatusAccepted); err != nil {
		return Result{}, &StepError{OrderID: order.ID, Phase: PhaseSeller, Step: "accept order", Err: err}
	}

	return Result{Outcome: OutcomeAccepted, WinnerBidID: decision.Winner.ID}, nil
}

// SettleShippingPhase settles the shipping bidding phase of an accepted
// order. Unlike the seller phase, a closed window with no pending shipping
// bids leaves the order accepted: no carrier was found, but the seller side
// already settled.
func (e *Executor) SettleShippingPhase(ctx context.Context, order model.Order, now time.Time) (Result, error) {
	if order.Status != model.OrderStatusAccepted || !IsShippingPhaseExpired(order, now) {
		return Result{Outcome: OutcomeNotApplicable}, nil
	}

	pending, err := e.store.ListPendingShippingBids(ctx, order.ID)
	if err != nil {
		return Result{}, &StepError{OrderID: order.ID, Phase: PhaseShipping, Step: "list pending shipping bids", Err: err}
	}

	decision := Resolve(pending)
	if decision.NoWinner {
		return Result{Outcome: OutcomeNoWinner}, nil
	}

	if _, err := e.store.UpdateShippingBidStatus(ctx, decision.Winner.ID, model.BidStatusAccepted); err != nil {
		return Result{}, &StepError{OrderID: order.ID, Phase: PhaseShipping, Step: "accept winning bid", Err: err}
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, loser := range decision.Losers {
		loser := loser
		g.Go(func() error {
			_, err := e.store.UpdateShippingBidStatus(gctx, loser.ID, model.BidStatusRejected)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, &StepError{OrderID: order.ID, Phase: PhaseShipping, Step: "reject losing bids", Err: err}
	}

	if _, err := e.store.UpdateOrderStatus(ctx, order.ID, model.OrderStatusCompleted); err != nil {
		return Result{}, &StepError{OrderID: order.ID, Phase: PhaseShipping, Step: "complete order", Err: err}
	}

	return Result{Outcome: OutcomeAccepted, WinnerBidID: decision.Winner.ID}, nil
}
