package marketerrors

import "errors"

// Repository-level errors
var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrBidNotFound         = errors.New("bid not found")
	ErrShippingBidNotFound = errors.New("shipping bid not found")
	ErrItemNotFound        = errors.New("item not found")
)

// business logic errors
var (
	ErrInvalidOrder      = errors.New("invalid order")
	ErrInvalidBid        = errors.New("invalid bid")
	ErrInvalidStatus     = errors.New("invalid status transition")
	ErrOrderNotBiddable  = errors.New("order is not open for seller bids")
	ErrOrderNotShippable = errors.New("order is not open for shipping bids")
)
