package settlement

import (
	"context"
	"errors"
	"testing"
	"time"

	model "github.com/6ixapp/morren/internal/models"
	"github.com/6ixapp/morren/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Helper to build an order in the given status with both bid windows expired
// relative to the returned now
func expiredOrder(id string, status model.OrderStatus) model.Order {
	return model.Order{
		ID:        id,
		ItemID:    "item-" + id,
		BuyerID:   "buyer1",
		Status:    status,
		CreatedAt: baseTime,
		UpdatedAt: baseTime,
	}
}

// Tests that one sweep settles seller and shipping phases side by side and
// skips ineligible orders
func TestSweeper_Sweep_SettlesBothPhases(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockSnapshotStore(ctrl)
	sweeper := NewSweeper(store)

	now := baseTime.Add(8 * 24 * time.Hour)

	orderA := expiredOrder("orderA", model.OrderStatusPending)
	orderB := expiredOrder("orderB", model.OrderStatusAccepted)
	orderC := expiredOrder("orderC", model.OrderStatusCompleted)
	orderD := expiredOrder("orderD", model.OrderStatusPending)
	orderD.CreatedAt = now.Add(-time.Hour) // window still open

	bidLow := newPendingBid("bidLow", 80, baseTime.Add(time.Hour))
	bidLow.OrderID = "orderA"
	bidHigh := newPendingBid("bidHigh", 100, baseTime.Add(time.Hour))
	bidHigh.OrderID = "orderA"

	shipBid := model.ShippingBid{ID: "ship1", OrderID: "orderB", BidAmount: decimal.NewFromInt(40), Status: model.BidStatusPending, CreatedAt: baseTime}

	store.EXPECT().UpdateBidStatus(gomock.Any(), "bidLow", model.BidStatusAccepted).Return(bidLow, nil)
	store.EXPECT().UpdateBidStatus(gomock.Any(), "bidHigh", model.BidStatusRejected).Return(bidHigh, nil)
	store.EXPECT().UpdateOrderStatus(gomock.Any(), "orderA", model.OrderStatusAccepted).Return(orderA, nil)
	store.EXPECT().UpdateShippingBidStatus(gomock.Any(), "ship1", model.BidStatusAccepted).Return(shipBid, nil)
	store.EXPECT().UpdateOrderStatus(gomock.Any(), "orderB", model.OrderStatusCompleted).Return(orderB, nil)

	report := sweeper.Sweep(context.Background(),
		[]model.Order{orderA, orderB, orderC, orderD},
		[]model.Bid{bidLow, bidHigh},
		[]model.ShippingBid{shipBid},
		now,
	)

	require.Equal(t, 1, report.SellerSettled)
	require.Equal(t, 1, report.ShippingSettled)
	require.Empty(t, report.Errors)
}

// Tests that one order's settlement failure never blocks the others
func TestSweeper_Sweep_ErrorIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockSnapshotStore(ctrl)
	sweeper := NewSweeper(store)

	now := baseTime.Add(8 * 24 * time.Hour)
	storeErr := errors.New("write timeout")

	orderA := expiredOrder("orderA", model.OrderStatusPending)
	orderB := expiredOrder("orderB", model.OrderStatusPending)

	bidA := newPendingBid("bidA", 70, baseTime)
	bidA.OrderID = "orderA"
	bidB := newPendingBid("bidB", 90, baseTime)
	bidB.OrderID = "orderB"

	store.EXPECT().UpdateBidStatus(gomock.Any(), "bidA", model.BidStatusAccepted).Return(model.Bid{}, storeErr)
	store.EXPECT().UpdateBidStatus(gomock.Any(), "bidB", model.BidStatusAccepted).Return(bidB, nil)
	store.EXPECT().UpdateOrderStatus(gomock.Any(), "orderB", model.OrderStatusAccepted).Return(orderB, nil)

	report := sweeper.Sweep(context.Background(),
		[]model.Order{orderA, orderB},
		[]model.Bid{bidA, bidB},
		nil,
		now,
	)

	require.Equal(t, 1, report.SellerSettled)
	require.Equal(t, 0, report.ShippingSettled)
	require.Len(t, report.Errors, 1)
	require.Equal(t, "orderA", report.Errors[0].OrderID)
	require.Equal(t, PhaseSeller, report.Errors[0].Phase)
	require.ErrorIs(t, report.Errors[0].Err, storeErr)
}

// Tests that only bids belonging to the order are considered, even when the
// supplied collection spans many orders
func TestSweeper_Sweep_FiltersBidsByOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockSnapshotStore(ctrl)
	sweeper := NewSweeper(store)

	now := baseTime.Add(8 * 24 * time.Hour)
	orderA := expiredOrder("orderA", model.OrderStatusPending)

	ownBid := newPendingBid("ownBid", 100, baseTime)
	ownBid.OrderID = "orderA"
	cheaperForeignBid := newPendingBid("foreignBid", 10, baseTime)
	cheaperForeignBid.OrderID = "orderX"
	settledBid := newPendingBid("settledBid", 5, baseTime)
	settledBid.OrderID = "orderA"
	settledBid.Status = model.BidStatusRejected

	store.EXPECT().UpdateBidStatus(gomock.Any(), "ownBid", model.BidStatusAccepted).Return(ownBid, nil)
	store.EXPECT().UpdateOrderStatus(gomock.Any(), "orderA", model.OrderStatusAccepted).Return(orderA, nil)

	report := sweeper.Sweep(context.Background(),
		[]model.Order{orderA},
		[]model.Bid{ownBid, cheaperForeignBid, settledBid},
		nil,
		now,
	)

	require.Equal(t, 1, report.SellerSettled)
	require.Empty(t, report.Errors)
}

// Tests that a bidless seller phase counts as settled (the order was
// rejected) while a bidless shipping phase does not
func TestSweeper_Sweep_NoBidCounting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockSnapshotStore(ctrl)
	sweeper := NewSweeper(store)

	now := baseTime.Add(8 * 24 * time.Hour)
	pendingOrder := expiredOrder("orderA", model.OrderStatusPending)
	acceptedOrder := expiredOrder("orderB", model.OrderStatusAccepted)

	store.EXPECT().UpdateOrderStatus(gomock.Any(), "orderA", model.OrderStatusRejected).Return(pendingOrder, nil)

	report := sweeper.Sweep(context.Background(),
		[]model.Order{pendingOrder, acceptedOrder},
		nil,
		nil,
		now,
	)

	require.Equal(t, 1, report.SellerSettled)
	require.Equal(t, 0, report.ShippingSettled)
	require.Empty(t, report.Errors)
}

// Tests Run against the real in-memory store across a full order lifecycle:
// seller phase settles on the first sweep, shipping phase on a later one
func TestSweeper_Run_FullLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	sweeper := NewSweeper(repo)

	created := time.Now().UTC().Add(-8 * 24 * time.Hour)
	order := model.Order{
		ID:        "order1",
		ItemID:    "item1",
		BuyerID:   "buyer1",
		Quantity:  2,
		Status:    model.OrderStatusPending,
		CreatedAt: created,
		UpdatedAt: created,
	}
	repo.AddOrder(order)

	lowBid := model.Bid{ID: "bid1", OrderID: "order1", SellerID: "seller1", BidAmount: decimal.NewFromInt(80), Status: model.BidStatusPending, CreatedAt: created.Add(time.Hour)}
	highBid := model.Bid{ID: "bid2", OrderID: "order1", SellerID: "seller2", BidAmount: decimal.NewFromInt(100), Status: model.BidStatusPending, CreatedAt: created.Add(2 * time.Hour)}
	require.NoError(t, repo.RecordBid(ctx, lowBid))
	require.NoError(t, repo.RecordBid(ctx, highBid))

	report, err := sweeper.Run(ctx, time.Now().UTC())
	require.NoError(t, err)
	require.Equal(t, 1, report.SellerSettled)
	require.Empty(t, report.Errors)

	settled, err := repo.GetOrder(ctx, "order1")
	require.NoError(t, err)
	require.Equal(t, model.OrderStatusAccepted, settled.Status)

	bids, err := repo.ListBidsForOrder(ctx, "order1")
	require.NoError(t, err)
	for _, b := range bids {
		switch b.ID {
		case "bid1":
			require.Equal(t, model.BidStatusAccepted, b.Status)
		case "bid2":
			require.Equal(t, model.BidStatusRejected, b.Status)
		}
	}

	// A second sweep finds nothing left to settle in the seller phase.
	report, err = sweeper.Run(ctx, time.Now().UTC())
	require.NoError(t, err)
	require.Equal(t, 0, report.SellerSettled)

	// Rewind the acceptance timestamp so the shipping window has closed too,
	// then give the order a shipping bid.
	settled.UpdatedAt = time.Now().UTC().Add(-8 * 24 * time.Hour)
	repo.AddOrder(settled)
	shipBid := model.ShippingBid{ID: "ship1", OrderID: "order1", ShippingProviderID: "carrier1", BidAmount: decimal.NewFromInt(30), Status: model.BidStatusPending, CreatedAt: settled.UpdatedAt}
	require.NoError(t, repo.RecordShippingBid(ctx, shipBid))

	report, err = sweeper.Run(ctx, time.Now().UTC())
	require.NoError(t, err)
	require.Equal(t, 1, report.ShippingSettled)

	completed, err := repo.GetOrder(ctx, "order1")
	require.NoError(t, err)
	require.Equal(t, model.OrderStatusCompleted, completed.Status)

	shipBids, err := repo.ListShippingBidsForOrder(ctx, "order1")
	require.NoError(t, err)
	require.Len(t, shipBids, 1)
	require.Equal(t, model.BidStatusAccepted, shipBids[0].Status)
}
