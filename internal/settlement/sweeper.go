package settlement

import (
	"context"
	"errors"
	"time"

	model "github.com/6ixapp/morren/internal/models"
)

// SnapshotStore extends Store with the listing calls Run uses to load the
// current working set of orders and bids
type SnapshotStore interface {
	Store
	ListOrders(ctx context.Context) ([]model.Order, error)
	ListBids(ctx context.Context) ([]model.Bid, error)
	ListShippingBids(ctx context.Context) ([]model.ShippingBid, error)
}

// SweepError records a settlement failure for one order within a sweep
type SweepError struct {
	OrderID string
	Phase   Phase
	Err     error
}

// SweepReport aggregates the outcome of one sweep over the working set
type SweepReport struct {
	SellerSettled   int
	ShippingSettled int
	Errors          []SweepError
}

// Sweeper drives settlement across a batch of in-flight orders
type Sweeper struct {
	store SnapshotStore
}

// NewSweeper creates a new Sweeper backed by the given store
func NewSweeper(store SnapshotStore) *Sweeper {
	return &Sweeper{store: store}
}

// Sweep attempts settlement for every eligible order in the supplied
// snapshot. Pending orders go through the seller phase, accepted orders
// through the shipping phase; all other statuses are skipped. Orders are
// settled independently: a failure is recorded in the report and the sweep
// moves on, leaving the failed order for the next sweep to retry.
//
// The supplied bid collections are the candidate pool: the executor resolves
// against them (filtered per order), while mutations go to the live store.
// Callers capture now once per sweep so every order sees the same clock.
func (s *Sweeper) Sweep(ctx context.Context, orders []model.Order, bids []model.Bid, shippingBids []model.ShippingBid, now time.Time) SweepReport {
	exec := NewExecutor(&sweepSnapshot{
		Store:        s.store,
		bids:         bids,
		shippingBids: shippingBids,
	})

	var report SweepReport
	for _, order := range orders {
		switch order.Status {
		case model.OrderStatusPending:
			res, err := exec.SettleSellerPhase(ctx, order, now)
			if err != nil {
				report.Errors = append(report.Errors, newSweepError(order.ID, PhaseSeller, err))
				continue
			}
			if res.Outcome == OutcomeAccepted || res.Outcome == OutcomeRejected {
				report.SellerSettled++
			}
		case model.OrderStatusAccepted:
			res, err := exec.SettleShippingPhase(ctx, order, now)
			if err != nil {
				report.Errors = append(report.Errors, newSweepError(order.ID, PhaseShipping, err))
				continue
			}
			if res.Outcome == OutcomeAccepted {
				report.ShippingSettled++
			}
		default:
			// rejected, completed and cancelled orders have nothing to settle
		}
	}
	return report
}

// Run loads the current orders and bids from the store and sweeps them. This
// is the entry point scheduled callers use.
func (s *Sweeper) Run(ctx context.Context, now time.Time) (SweepReport, error) {
	orders, err := s.store.ListOrders(ctx)
	if err != nil {
		return SweepReport{}, err
	}
	bids, err := s.store.ListBids(ctx)
	if err != nil {
		return SweepReport{}, err
	}
	shippingBids, err := s.store.ListShippingBids(ctx)
	if err != nil {
		return SweepReport{}, err
	}
	return s.Sweep(ctx, orders, bids, shippingBids, now), nil
}

func newSweepError(orderID string, phase Phase, err error) SweepError {
	var step *StepError
	if errors.As(err, &step) {
		return SweepError{OrderID: step.OrderID, Phase: step.Phase, Err: err}
	}
	return SweepError{OrderID: orderID, Phase: phase, Err: err}
}

// sweepSnapshot serves pending-bid lookups from the collections supplied to
// Sweep and delegates every mutation to the live store
type sweepSnapshot struct {
	Store
	bids         []model.Bid
	shippingBids []model.ShippingBid
}

func (s *sweepSnapshot) ListPendingBids(_ context.Context, orderID string) ([]model.Bid, error) {
	pending := make([]model.Bid, 0)
	for _, b := range s.bids {
		if b.OrderID == orderID && b.Status == model.BidStatusPending {
			pending = append(pending, b)
		}
	}
	return pending, nil
}

func (s *sweepSnapshot) ListPendingShippingBids(_ context.Context, orderID string) ([]model.ShippingBid, error) {
	pending := make([]model.ShippingBid, 0)
	for _, b := range s.shippingBids {
		if b.OrderID == orderID && b.Status == model.BidStatusPending {
			pending = append(pending, b)
		}
	}
	return pending, nil
}
