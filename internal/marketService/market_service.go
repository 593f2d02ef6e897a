package market

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/6ixapp/morren/internal/marketerrors"
	model "github.com/6ixapp/morren/internal/models"
	"github.com/6ixapp/morren/internal/repository"
	"github.com/6ixapp/morren/utils"
	"github.com/shopspring/decimal"
)

// MarketService defines the business logic for orders and the two bidding
// phases
type MarketService struct {
	repo repository.MarketDB
}

// NewMarketService creates a new MarketService instance
func NewMarketService(repo repository.MarketDB) *MarketService {
	return &MarketService{
		repo: repo,
	}
}

// CreateOrderParams carries the fields a buyer supplies when placing an order
type CreateOrderParams struct {
	ItemID          string
	BuyerID         string
	Quantity        int
	TotalPrice      decimal.Decimal
	ShippingAddress string
	Notes           string
	Item            *model.Item
}

// CreateOrder validates and records a buyer's order. New orders always start
// in pending status so sellers can bid on them.
func (s *MarketService) CreateOrder(ctx context.Context, params CreateOrderParams) (model.Order, error) {
	if params.ItemID == "" || params.BuyerID == "" {
		return model.Order{}, fmt.Errorf("service: %w - missing itemID or buyerID", marketerrors.ErrInvalidOrder)
	}
	if params.Quantity <= 0 {
		return model.Order{}, fmt.Errorf("service: %w - non-positive quantity", marketerrors.ErrInvalidOrder)
	}
	if !params.TotalPrice.IsPositive() {
		return model.Order{}, fmt.Errorf("service: %w - non-positive total price", marketerrors.ErrInvalidOrder)
	}

	now := time.Now().UTC()
	order := model.Order{
		ID:              utils.GenerateID(),
		ItemID:          params.ItemID,
		BuyerID:         params.BuyerID,
		Quantity:        params.Quantity,
		TotalPrice:      params.TotalPrice,
		Status:          model.OrderStatusPending,
		ShippingAddress: params.ShippingAddress,
		Notes:           params.Notes,
		Item:            params.Item,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return model.Order{}, fmt.Errorf("service: failed to create order for buyer %s: %w", params.BuyerID, err)
	}

	return order, nil
}

// GetOrder returns a single order by ID
func (s *MarketService) GetOrder(ctx context.Context, orderID string) (model.Order, error) {
	if orderID == "" {
		return model.Order{}, fmt.Errorf("service: %w - empty order ID", marketerrors.ErrInvalidOrder)
	}
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return model.Order{}, fmt.Errorf("service: failed to get order %s: %w", orderID, err)
	}
	return order, nil
}

// ListOrders returns all orders
func (s *MarketService) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list orders: %w", err)
	}
	return orders, nil
}

// PlaceBidParams carries the fields a seller supplies when bidding on an order
type PlaceBidParams struct {
	OrderID           string
	SellerID          string
	BidAmount         decimal.Decimal
	EstimatedDelivery string
	Message           string
}

// PlaceBid validates and records a seller's bid on a pending order
func (s *MarketService) PlaceBid(ctx context.Context, params PlaceBidParams) (model.Bid, error) {
	if params.OrderID == "" || params.SellerID == "" {
		return model.Bid{}, fmt.Errorf("service: %w - missing orderID or sellerID", marketerrors.ErrInvalidBid)
	}
	if !params.BidAmount.IsPositive() {
		return model.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", marketerrors.ErrInvalidBid)
	}

	order, err := s.repo.GetOrder(ctx, params.OrderID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to load order %s: %w", params.OrderID, err)
	}
	if order.Status != model.OrderStatusPending {
		return model.Bid{}, fmt.Errorf("service: %w - order %s is %s", marketerrors.ErrOrderNotBiddable, order.ID, order.Status)
	}

	now := time.Now().UTC()
	bid := model.Bid{
		ID:                utils.GenerateID(),
		OrderID:           params.OrderID,
		SellerID:          params.SellerID,
		BidAmount:         params.BidAmount,
		EstimatedDelivery: params.EstimatedDelivery,
		Message:           params.Message,
		Status:            model.BidStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.RecordBid(ctx, bid); err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to record bid for order %s by seller %s: %w", params.OrderID, params.SellerID, err)
	}

	return bid, nil
}

// GetBidsForOrder returns all seller bids for an order
func (s *MarketService) GetBidsForOrder(ctx context.Context, orderID string) ([]model.Bid, error) {
	if orderID == "" {
		return nil, fmt.Errorf("service: %w - empty order ID", marketerrors.ErrInvalidBid)
	}
	bids, err := s.repo.ListBidsForOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for order %s: %w", orderID, err)
	}
	return bids, nil
}

// PlaceShippingBidParams carries the fields a shipping provider supplies when
// bidding to carry an order
type PlaceShippingBidParams struct {
	OrderID            string
	ShippingProviderID string
	BidAmount          decimal.Decimal
	EstimatedDelivery  string
	Message            string
}

// PlaceShippingBid validates and records a shipping provider's bid on an
// accepted order
func (s *MarketService) PlaceShippingBid(ctx context.Context, params PlaceShippingBidParams) (model.ShippingBid, error) {
	if params.OrderID == "" || params.ShippingProviderID == "" {
		return model.ShippingBid{}, fmt.Errorf("service: %w - missing orderID or shippingProviderID", marketerrors.ErrInvalidBid)
	}
	if !params.BidAmount.IsPositive() {
		return model.ShippingBid{}, fmt.Errorf("service: %w - non-positive bid amount", marketerrors.ErrInvalidBid)
	}

	order, err := s.repo.GetOrder(ctx, params.OrderID)
	if err != nil {
		return model.ShippingBid{}, fmt.Errorf("service: failed to load order %s: %w", params.OrderID, err)
	}
	if order.Status != model.OrderStatusAccepted {
		return model.ShippingBid{}, fmt.Errorf("service: %w - order %s is %s", marketerrors.ErrOrderNotShippable, order.ID, order.Status)
	}

	now := time.Now().UTC()
	bid := model.ShippingBid{
		ID:                 utils.GenerateID(),
		OrderID:            params.OrderID,
		ShippingProviderID: params.ShippingProviderID,
		BidAmount:          params.BidAmount,
		EstimatedDelivery:  params.EstimatedDelivery,
		Message:            params.Message,
		Status:             model.BidStatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.RecordShippingBid(ctx, bid); err != nil {
		return model.ShippingBid{}, fmt.Errorf("service: failed to record shipping bid for order %s: %w", params.OrderID, err)
	}

	return bid, nil
}

// GetShippingBidsForOrder returns all shipping bids for an order
func (s *MarketService) GetShippingBidsForOrder(ctx context.Context, orderID string) ([]model.ShippingBid, error) {
	if orderID == "" {
		return nil, fmt.Errorf("service: %w - empty order ID", marketerrors.ErrInvalidBid)
	}
	bids, err := s.repo.ListShippingBidsForOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get shipping bids for order %s: %w", orderID, err)
	}
	return bids, nil
}

// AcceptBid applies a buyer's manual acceptance of a seller bid before the
// window closes: the chosen bid is accepted, every other pending bid is
// rejected, and the order moves to accepted.
func (s *MarketService) AcceptBid(ctx context.Context, orderID, bidID string) (model.Bid, error) {
	if orderID == "" || bidID == "" {
		return model.Bid{}, fmt.Errorf("service: %w - missing orderID or bidID", marketerrors.ErrInvalidBid)
	}

	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to load order %s: %w", orderID, err)
	}
	if order.Status != model.OrderStatusPending {
		return model.Bid{}, fmt.Errorf("service: %w - order %s is %s", marketerrors.ErrOrderNotBiddable, order.ID, order.Status)
	}

	pending, err := s.repo.ListPendingBids(ctx, orderID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to list pending bids for order %s: %w", orderID, err)
	}
	chosen := -1
	for i, b := range pending {
		if b.ID == bidID {
			chosen = i
			break
		}
	}
	if chosen == -1 {
		return model.Bid{}, fmt.Errorf("service: bid %s is not pending on order %s: %w", bidID, orderID, marketerrors.ErrBidNotFound)
	}

	accepted, err := s.repo.UpdateBidStatus(ctx, bidID, model.BidStatusAccepted)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to accept bid %s: %w", bidID, err)
	}
	for _, b := range pending {
		if b.ID == bidID {
			continue
		}
		if _, err := s.repo.UpdateBidStatus(ctx, b.ID, model.BidStatusRejected); err != nil {
			return model.Bid{}, fmt.Errorf("service: failed to reject bid %s: %w", b.ID, err)
		}
	}
	if _, err := s.repo.UpdateOrderStatus(ctx, orderID, model.OrderStatusAccepted); err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to accept order %s: %w", orderID, err)
	}

	return accepted, nil
}

// IsNotFound reports whether err stems from a missing order or bid
func IsNotFound(err error) bool {
	return errors.Is(err, marketerrors.ErrOrderNotFound) ||
		errors.Is(err, marketerrors.ErrBidNotFound) ||
		errors.Is(err, marketerrors.ErrShippingBidNotFound)
}
