package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus enumerates the order lifecycle states
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusRejected  OrderStatus = "rejected"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// BidStatus enumerates the lifecycle states shared by seller and shipping bids
type BidStatus string

const (
	BidStatusPending  BidStatus = "pending"
	BidStatusAccepted BidStatus = "accepted"
	BidStatusRejected BidStatus = "rejected"
)

// User represents a marketplace participant (buyer, seller or shipping provider)
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Item represents a catalog item an order can be placed against.
// Specifications is an open string-keyed bag; the settlement timing policy
// reads bid-window overrides out of it and nothing else in the core touches it.
type Item struct {
	ItemID         string          `json:"item_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Quantity       int             `json:"quantity"`
	Price          decimal.Decimal `json:"price"`
	Specifications map[string]any  `json:"specifications,omitempty"`
	SellerID       string          `json:"seller_id,omitempty"`
}

// Order represents a buyer's request to purchase a quantity of an item
type Order struct {
	ID              string          `json:"id"`
	ItemID          string          `json:"item_id"`
	BuyerID         string          `json:"buyer_id"`
	Quantity        int             `json:"quantity"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Status          OrderStatus     `json:"status"`
	ShippingAddress string          `json:"shipping_address,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Item            *Item           `json:"item,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Bid represents a seller's offer to fulfill an order
type Bid struct {
	ID                string          `json:"id"`
	OrderID           string          `json:"order_id"`
	SellerID          string          `json:"seller_id"`
	BidAmount         decimal.Decimal `json:"bid_amount"`
	EstimatedDelivery string          `json:"estimated_delivery,omitempty"`
	Message           string          `json:"message,omitempty"`
	Status            BidStatus       `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ShippingBid represents a shipping provider's offer to carry an accepted order
type ShippingBid struct {
	ID                 string          `json:"id"`
	OrderID            string          `json:"order_id"`
	ShippingProviderID string          `json:"shipping_provider_id"`
	BidAmount          decimal.Decimal `json:"bid_amount"`
	EstimatedDelivery  string          `json:"estimated_delivery,omitempty"`
	Message            string          `json:"message,omitempty"`
	Status             BidStatus       `json:"status"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// OfferID implements settlement.Offer
func (b Bid) OfferID() string { return b.ID }

// OfferAmount implements settlement.Offer
func (b Bid) OfferAmount() decimal.Decimal { return b.BidAmount }

// OfferCreatedAt implements settlement.Offer
func (b Bid) OfferCreatedAt() time.Time { return b.CreatedAt }

// OfferID implements settlement.Offer
func (sb ShippingBid) OfferID() string { return sb.ID }

// OfferAmount implements settlement.Offer
func (sb ShippingBid) OfferAmount() decimal.Decimal { return sb.BidAmount }

// OfferCreatedAt implements settlement.Offer
func (sb ShippingBid) OfferCreatedAt() time.Time { return sb.CreatedAt }
