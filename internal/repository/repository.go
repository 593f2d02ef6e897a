package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/6ixapp/morren/internal/marketerrors"
	model "github.com/6ixapp/morren/internal/models"
)

// MarketDB defines the persistence interface for orders, seller bids and
// shipping bids
type MarketDB interface {
	CreateOrder(ctx context.Context, order model.Order) error
	GetOrder(ctx context.Context, orderID string) (model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	ListOrdersByBuyer(ctx context.Context, buyerID string) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) (model.Order, error)

	RecordBid(ctx context.Context, bid model.Bid) error
	ListBids(ctx context.Context) ([]model.Bid, error)
	ListBidsForOrder(ctx context.Context, orderID string) ([]model.Bid, error)
	ListPendingBids(ctx context.Context, orderID string) ([]model.Bid, error)
	UpdateBidStatus(ctx context.Context, bidID string, status model.BidStatus) (model.Bid, error)

	RecordShippingBid(ctx context.Context, bid model.ShippingBid) error
	ListShippingBids(ctx context.Context) ([]model.ShippingBid, error)
	ListShippingBidsForOrder(ctx context.Context, orderID string) ([]model.ShippingBid, error)
	ListPendingShippingBids(ctx context.Context, orderID string) ([]model.ShippingBid, error)
	UpdateShippingBidStatus(ctx context.Context, bidID string, status model.BidStatus) (model.ShippingBid, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of MarketDB
type MemoryRepo struct {
	mu           sync.RWMutex
	orders       map[string]model.Order       // key: orderID
	bids         map[string]model.Bid         // key: bidID
	shippingBids map[string]model.ShippingBid // key: shippingBidID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		orders:       make(map[string]model.Order),
		bids:         make(map[string]model.Bid),
		shippingBids: make(map[string]model.ShippingBid),
	}
}

// CreateOrder stores a new order
func (r *MemoryRepo) CreateOrder(_ context.Context, order model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		return fmt.Errorf("create order: %w - missing order ID", marketerrors.ErrInvalidOrder)
	}
	r.orders[order.ID] = order
	return nil
}

// GetOrder returns the order with the given ID
func (r *MemoryRepo) GetOrder(_ context.Context, orderID string) (model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[orderID]
	if !ok {
		return model.Order{}, fmt.Errorf("get order %s: %w", orderID, marketerrors.ErrOrderNotFound)
	}
	return order, nil
}

// ListOrders returns all orders sorted by creation time
func (r *MemoryRepo) ListOrders(_ context.Context) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]model.Order, 0, len(r.orders))
	for _, o := range r.orders {
		orders = append(orders, o)
	}
	sortOrders(orders)
	return orders, nil
}

// ListOrdersByBuyer returns all orders placed by the given buyer
func (r *MemoryRepo) ListOrdersByBuyer(_ context.Context, buyerID string) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]model.Order, 0)
	for _, o := range r.orders {
		if o.BuyerID == buyerID {
			orders = append(orders, o)
		}
	}
	sortOrders(orders)
	return orders, nil
}

// UpdateOrderStatus transitions an order's status and bumps its updated
// timestamp
func (r *MemoryRepo) UpdateOrderStatus(_ context.Context, orderID string, status model.OrderStatus) (model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok {
		return model.Order{}, fmt.Errorf("update order %s: %w", orderID, marketerrors.ErrOrderNotFound)
	}
	order.Status = status
	order.UpdatedAt = time.Now().UTC()
	r.orders[orderID] = order
	return order, nil
}

// RecordBid stores a seller bid for an existing order
func (r *MemoryRepo) RecordBid(_ context.Context, bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[bid.OrderID]; !ok {
		return fmt.Errorf("record bid for order %s: %w", bid.OrderID, marketerrors.ErrOrderNotFound)
	}
	r.bids[bid.ID] = bid
	return nil
}

// ListBids returns every seller bid in the store
func (r *MemoryRepo) ListBids(_ context.Context) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.Bid, 0, len(r.bids))
	for _, b := range r.bids {
		bids = append(bids, b)
	}
	sortBids(bids)
	return bids, nil
}

// ListBidsForOrder returns all seller bids attached to an order
func (r *MemoryRepo) ListBidsForOrder(_ context.Context, orderID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.Bid, 0)
	for _, b := range r.bids {
		if b.OrderID == orderID {
			bids = append(bids, b)
		}
	}
	sortBids(bids)
	return bids, nil
}

// ListPendingBids returns the seller bids still pending for an order
func (r *MemoryRepo) ListPendingBids(_ context.Context, orderID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.Bid, 0)
	for _, b := range r.bids {
		if b.OrderID == orderID && b.Status == model.BidStatusPending {
			bids = append(bids, b)
		}
	}
	sortBids(bids)
	return bids, nil
}

// UpdateBidStatus transitions a seller bid's status and bumps its updated
// timestamp
func (r *MemoryRepo) UpdateBidStatus(_ context.Context, bidID string, status model.BidStatus) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bid, ok := r.bids[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("update bid %s: %w", bidID, marketerrors.ErrBidNotFound)
	}
	bid.Status = status
	bid.UpdatedAt = time.Now().UTC()
	r.bids[bidID] = bid
	return bid, nil
}

// RecordShippingBid stores a shipping bid for an existing order
func (r *MemoryRepo) RecordShippingBid(_ context.Context, bid model.ShippingBid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[bid.OrderID]; !ok {
		return fmt.Errorf("record shipping bid for order %s: %w", bid.OrderID, marketerrors.ErrOrderNotFound)
	}
	r.shippingBids[bid.ID] = bid
	return nil
}

// ListShippingBids returns every shipping bid in the store
func (r *MemoryRepo) ListShippingBids(_ context.Context) ([]model.ShippingBid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.ShippingBid, 0, len(r.shippingBids))
	for _, b := range r.shippingBids {
		bids = append(bids, b)
	}
	sortShippingBids(bids)
	return bids, nil
}

// ListShippingBidsForOrder returns all shipping bids attached to an order
func (r *MemoryRepo) ListShippingBidsForOrder(_ context.Context, orderID string) ([]model.ShippingBid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.ShippingBid, 0)
	for _, b := range r.shippingBids {
		if b.OrderID == orderID {
			bids = append(bids, b)
		}
	}
	sortShippingBids(bids)
	return bids, nil
}

// ListPendingShippingBids returns the shipping bids still pending for an order
func (r *MemoryRepo) ListPendingShippingBids(_ context.Context, orderID string) ([]model.ShippingBid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.ShippingBid, 0)
	for _, b := range r.shippingBids {
		if b.OrderID == orderID && b.Status == model.BidStatusPending {
			bids = append(bids, b)
		}
	}
	sortShippingBids(bids)
	return bids, nil
}

// UpdateShippingBidStatus transitions a shipping bid's status and bumps its
// updated timestamp
func (r *MemoryRepo) UpdateShippingBidStatus(_ context.Context, bidID string, status model.BidStatus) (model.ShippingBid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bid, ok := r.shippingBids[bidID]
	if !ok {
		return model.ShippingBid{}, fmt.Errorf("update shipping bid %s: %w", bidID, marketerrors.ErrShippingBidNotFound)
	}
	bid.Status = status
	bid.UpdatedAt = time.Now().UTC()
	r.shippingBids[bidID] = bid
	return bid, nil
}

// AddOrder stores an order verbatim, without touching its timestamps. This
// method is intended for tests and seed data.
func (r *MemoryRepo) AddOrder(order model.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = order
}

// Maps iterate in random order; lists are sorted by creation time (ID as the
// final key) so callers see stable output.

func sortOrders(orders []model.Order) {
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.Before(orders[j].CreatedAt)
		}
		return orders[i].ID < orders[j].ID
	})
}

func sortBids(bids []model.Bid) {
	sort.Slice(bids, func(i, j int) bool {
		if !bids[i].CreatedAt.Equal(bids[j].CreatedAt) {
			return bids[i].CreatedAt.Before(bids[j].CreatedAt)
		}
		return bids[i].ID < bids[j].ID
	})
}

func sortShippingBids(bids []model.ShippingBid) {
	sort.Slice(bids, func(i, j int) bool {
		if !bids[i].CreatedAt.Equal(bids[j].CreatedAt) {
			return bids[i].CreatedAt.Before(bids[j].CreatedAt)
		}
		return bids[i].ID < bids[j].ID
	})
}
