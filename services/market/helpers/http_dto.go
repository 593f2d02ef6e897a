package helpers

// Request/Response DTOs
type CreateOrderRequest struct {
	ItemID          string         `json:"item_id" binding:"required"`
	BuyerID         string         `json:"buyer_id" binding:"required"`
	Quantity        int            `json:"quantity" binding:"required,gt=0"`
	TotalPrice      float64        `json:"total_price" binding:"required,gt=0"`
	ShippingAddress string         `json:"shipping_address"`
	Notes           string         `json:"notes"`
	Specifications  map[string]any `json:"specifications"`
}

type PlaceBidRequest struct {
	OrderID           string  `json:"order_id" binding:"required"`
	SellerID          string  `json:"seller_id" binding:"required"`
	BidAmount         float64 `json:"bid_amount" binding:"required,gt=0"`
	EstimatedDelivery string  `json:"estimated_delivery"`
	Message           string  `json:"message"`
}

type PlaceShippingBidRequest struct {
	OrderID            string  `json:"order_id" binding:"required"`
	ShippingProviderID string  `json:"shipping_provider_id" binding:"required"`
	BidAmount          float64 `json:"bid_amount" binding:"required,gt=0"`
	EstimatedDelivery  string  `json:"estimated_delivery"`
	Message            string  `json:"message"`
}

type OrderResponse struct {
	ID              string `json:"id"`
	ItemID          string `json:"item_id"`
	BuyerID         string `json:"buyer_id"`
	Quantity        int    `json:"quantity"`
	TotalPrice      string `json:"total_price"`
	Status          string `json:"status"`
	ShippingAddress string `json:"shipping_address,omitempty"`
	Notes           string `json:"notes,omitempty"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type BidResponse struct {
	ID                string `json:"id"`
	OrderID           string `json:"order_id"`
	BidderID          string `json:"bidder_id"`
	BidAmount         string `json:"bid_amount"`
	EstimatedDelivery string `json:"estimated_delivery,omitempty"`
	Message           string `json:"message,omitempty"`
	Status            string `json:"status"`
	CreatedAt         string `json:"created_at"`
}

type SweepResponse struct {
	SellerSettled   int          `json:"seller_settled"`
	ShippingSettled int          `json:"shipping_settled"`
	Errors          []SweepIssue `json:"errors"`
}

type SweepIssue struct {
	OrderID string `json:"order_id"`
	Phase   string `json:"phase"`
	Error   string `json:"error"`
}
