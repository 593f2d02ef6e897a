package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/6ixapp/morren/internal/marketerrors"
	model "github.com/6ixapp/morren/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Helper to create a new Order
func newOrder(orderID, buyerID string, status model.OrderStatus, createdAt time.Time) model.Order {
	return model.Order{
		ID:         orderID,
		ItemID:     fmt.Sprintf("item-%s", orderID),
		BuyerID:    buyerID,
		Quantity:   1,
		TotalPrice: decimal.NewFromInt(500),
		Status:     status,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
}

// Helper to create a new Bid
func newBid(bidID, orderID, sellerID string, amount float64, status model.BidStatus, createdAt time.Time) model.Bid {
	return model.Bid{
		ID:        bidID,
		OrderID:   orderID,
		SellerID:  sellerID,
		BidAmount: decimal.NewFromFloat(amount),
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

// Helper to create a new ShippingBid
func newShippingBid(bidID, orderID, providerID string, amount float64, status model.BidStatus, createdAt time.Time) model.ShippingBid {
	return model.ShippingBid{
		ID:                 bidID,
		OrderID:            orderID,
		ShippingProviderID: providerID,
		BidAmount:          decimal.NewFromFloat(amount),
		Status:             status,
		CreatedAt:          createdAt,
		UpdatedAt:          createdAt,
	}
}

// Test CreateOrder and GetOrder
func TestMemoryRepo_CreateAndGetOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	tests := []struct {
		name      string
		order     model.Order
		wantError bool
	}{
		{name: "valid_order", order: newOrder("order1", "buyer1", model.OrderStatusPending, time.Now()), wantError: false},
		{name: "missing_order_id", order: newOrder("", "buyer1", model.OrderStatusPending, time.Now()), wantError: true},
		{name: "accepted_status", order: newOrder("order2", "buyer2", model.OrderStatusAccepted, time.Now()), wantError: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := repo.CreateOrder(ctx, tc.order)
			if tc.wantError {
				require.ErrorIs(t, err, marketerrors.ErrInvalidOrder)
			} else {
				require.NoError(t, err)
				got, err := repo.GetOrder(ctx, tc.order.ID)
				require.NoError(t, err)
				require.Equal(t, tc.order, got)
			}
		})
	}

	t.Run("unknown_order", func(t *testing.T) {
		t.Parallel()

		_, err := repo.GetOrder(ctx, "orderX")
		require.ErrorIs(t, err, marketerrors.ErrOrderNotFound)
	})

	// concurrency test
	t.Run("concurrent_creates", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepo()
		var wg sync.WaitGroup
		concurrentCount := 50

		for i := 0; i < concurrentCount; i++ {
			wg.Add(1)
			i := i
			go func() {
				defer wg.Done()
				o := newOrder(fmt.Sprintf("order-%d", i), fmt.Sprintf("buyer-%d", i), model.OrderStatusPending, time.Now())
				require.NoError(t, repo.CreateOrder(ctx, o))
			}()
		}

		wg.Wait()

		orders, err := repo.ListOrders(ctx)
		require.NoError(t, err)
		require.Len(t, orders, concurrentCount)
	})
}

// Test ListOrders and ListOrdersByBuyer
func TestMemoryRepo_ListOrders(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	base := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	order1 := newOrder("order1", "buyer1", model.OrderStatusPending, base.Add(2*time.Hour))
	order2 := newOrder("order2", "buyer2", model.OrderStatusPending, base)
	order3 := newOrder("order3", "buyer1", model.OrderStatusAccepted, base.Add(time.Hour))
	require.NoError(t, repo.CreateOrder(ctx, order1))
	require.NoError(t, repo.CreateOrder(ctx, order2))
	require.NoError(t, repo.CreateOrder(ctx, order3))

	t.Run("sorted_by_creation_time", func(t *testing.T) {
		t.Parallel()

		orders, err := repo.ListOrders(ctx)
		require.NoError(t, err)
		require.Equal(t, []model.Order{order2, order3, order1}, orders)
	})

	tests := []struct {
		name       string
		buyerID    string
		wantOrders []model.Order
	}{
		{name: "buyer_with_two_orders", buyerID: "buyer1", wantOrders: []model.Order{order3, order1}},
		{name: "buyer_with_one_order", buyerID: "buyer2", wantOrders: []model.Order{order2}},
		{name: "unknown_buyer", buyerID: "buyerX", wantOrders: []model.Order{}},
		{name: "empty_buyerID", buyerID: "", wantOrders: []model.Order{}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			orders, err := repo.ListOrdersByBuyer(ctx, tc.buyerID)
			require.NoError(t, err)
			require.Equal(t, tc.wantOrders, orders)
		})
	}
}

// Test UpdateOrderStatus
func TestMemoryRepo_UpdateOrderStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	created := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, repo.CreateOrder(ctx, newOrder("order1", "buyer1", model.OrderStatusPending, created)))

	t.Run("transitions_and_bumps_updated_at", func(t *testing.T) {
		updated, err := repo.UpdateOrderStatus(ctx, "order1", model.OrderStatusAccepted)
		require.NoError(t, err)
		require.Equal(t, model.OrderStatusAccepted, updated.Status)
		require.True(t, updated.UpdatedAt.After(created))

		got, err := repo.GetOrder(ctx, "order1")
		require.NoError(t, err)
		require.Equal(t, updated, got)
	})

	t.Run("unknown_order", func(t *testing.T) {
		_, err := repo.UpdateOrderStatus(ctx, "orderX", model.OrderStatusAccepted)
		require.ErrorIs(t, err, marketerrors.ErrOrderNotFound)
	})
}

// Test RecordBid
func TestMemoryRepo_RecordBid(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateOrder(ctx, newOrder("order1", "buyer1", model.OrderStatusPending, time.Now())))

	tests := []struct {
		name      string
		bid       model.Bid
		wantError bool
	}{
		{name: "valid_bid", bid: newBid("bid1", "order1", "seller1", 100, model.BidStatusPending, time.Now()), wantError: false},
		{name: "order_not_found", bid: newBid("bid2", "orderX", "seller1", 100, model.BidStatusPending, time.Now()), wantError: true},
		{name: "empty_orderID", bid: newBid("bid3", "", "seller1", 100, model.BidStatusPending, time.Now()), wantError: true},
		{name: "zero_amount", bid: newBid("bid4", "order1", "seller2", 0, model.BidStatusPending, time.Now()), wantError: false},
		{name: "past_timestamp", bid: newBid("bid5", "order1", "seller3", 120, model.BidStatusPending, time.Now().Add(-24*time.Hour)), wantError: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := repo.RecordBid(ctx, tc.bid)
			if tc.wantError {
				require.ErrorIs(t, err, marketerrors.ErrOrderNotFound)
			} else {
				require.NoError(t, err)
				bids, err := repo.ListBidsForOrder(ctx, tc.bid.OrderID)
				require.NoError(t, err)
				require.Contains(t, bids, tc.bid)
			}
		})
	}

	// concurrency test
	t.Run("concurrent_bids", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepo()
		require.NoError(t, repo.CreateOrder(ctx, newOrder("order1", "buyer1", model.OrderStatusPending, time.Now())))

		var wg sync.WaitGroup
		concurrentCount := 50

		for i := 0; i < concurrentCount; i++ {
			wg.Add(1)
			i := i
			go func() {
				defer wg.Done()
				b := newBid(fmt.Sprintf("bid-%d", i), "order1", fmt.Sprintf("seller-%d", i), float64(100+i), model.BidStatusPending, time.Now())
				require.NoError(t, repo.RecordBid(ctx, b))
			}()
		}

		wg.Wait()

		bids, err := repo.ListBidsForOrder(ctx, "order1")
		require.NoError(t, err)
		require.Len(t, bids, concurrentCount)
	})
}

// Test ListPendingBids and UpdateBidStatus
func TestMemoryRepo_PendingBidsAndStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	base := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.CreateOrder(ctx, newOrder("order1", "buyer1", model.OrderStatusPending, base)))
	require.NoError(t, repo.CreateOrder(ctx, newOrder("order2", "buyer2", model.OrderStatusPending, base)))

	pending1 := newBid("bid1", "order1", "seller1", 100, model.BidStatusPending, base.Add(2*time.Hour))
	pending2 := newBid("bid2", "order1", "seller2", 90, model.BidStatusPending, base.Add(time.Hour))
	rejected := newBid("bid3", "order1", "seller3", 80, model.BidStatusRejected, base)
	otherOrder := newBid("bid4", "order2", "seller4", 70, model.BidStatusPending, base)
	require.NoError(t, repo.RecordBid(ctx, pending1))
	require.NoError(t, repo.RecordBid(ctx, pending2))
	require.NoError(t, repo.RecordBid(ctx, rejected))
	require.NoError(t, repo.RecordBid(ctx, otherOrder))

	t.Run("only_pending_bids_of_order", func(t *testing.T) {
		bids, err := repo.ListPendingBids(ctx, "order1")
		require.NoError(t, err)
		require.Equal(t, []model.Bid{pending2, pending1}, bids)
	})

	t.Run("update_removes_from_pending", func(t *testing.T) {
		updated, err := repo.UpdateBidStatus(ctx, "bid2", model.BidStatusAccepted)
		require.NoError(t, err)
		require.Equal(t, model.BidStatusAccepted, updated.Status)
		require.True(t, updated.UpdatedAt.After(pending2.UpdatedAt))

		bids, err := repo.ListPendingBids(ctx, "order1")
		require.NoError(t, err)
		require.Equal(t, []model.Bid{pending1}, bids)
	})

	t.Run("unknown_bid", func(t *testing.T) {
		_, err := repo.UpdateBidStatus(ctx, "bidX", model.BidStatusAccepted)
		require.ErrorIs(t, err, marketerrors.ErrBidNotFound)
	})
}

// Test the shipping bid operations
func TestMemoryRepo_ShippingBids(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	base := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.CreateOrder(ctx, newOrder("order1", "buyer1", model.OrderStatusAccepted, base)))

	ship1 := newShippingBid("ship1", "order1", "carrier1", 40, model.BidStatusPending, base.Add(time.Hour))
	ship2 := newShippingBid("ship2", "order1", "carrier2", 35, model.BidStatusPending, base)
	require.NoError(t, repo.RecordShippingBid(ctx, ship1))
	require.NoError(t, repo.RecordShippingBid(ctx, ship2))

	t.Run("order_not_found", func(t *testing.T) {
		err := repo.RecordShippingBid(ctx, newShippingBid("shipX", "orderX", "carrier1", 40, model.BidStatusPending, base))
		require.ErrorIs(t, err, marketerrors.ErrOrderNotFound)
	})

	t.Run("list_sorted_by_creation_time", func(t *testing.T) {
		bids, err := repo.ListShippingBidsForOrder(ctx, "order1")
		require.NoError(t, err)
		require.Equal(t, []model.ShippingBid{ship2, ship1}, bids)
	})

	t.Run("update_removes_from_pending", func(t *testing.T) {
		updated, err := repo.UpdateShippingBidStatus(ctx, "ship2", model.BidStatusAccepted)
		require.NoError(t, err)
		require.Equal(t, model.BidStatusAccepted, updated.Status)

		pending, err := repo.ListPendingShippingBids(ctx, "order1")
		require.NoError(t, err)
		require.Equal(t, []model.ShippingBid{ship1}, pending)
	})

	t.Run("unknown_shipping_bid", func(t *testing.T) {
		_, err := repo.UpdateShippingBidStatus(ctx, "shipX", model.BidStatusAccepted)
		require.ErrorIs(t, err, marketerrors.ErrShippingBidNotFound)
	})
}

// Test AddOrder keeping timestamps untouched
func TestMemoryRepo_AddOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	created := time.Date(2024, 11, 20, 9, 30, 0, 0, time.UTC)
	order := newOrder("order1", "buyer1", model.OrderStatusAccepted, created)
	repo.AddOrder(order)

	got, err := repo.GetOrder(ctx, "order1")
	require.NoError(t, err)
	require.Equal(t, order, got)
	require.Equal(t, created, got.UpdatedAt)
}
