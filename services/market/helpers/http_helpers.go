package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/6ixapp/morren/internal/marketerrors"
	model "github.com/6ixapp/morren/internal/models"
	"github.com/6ixapp/morren/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrOrderNotFound):
		return http.StatusNotFound, "order not found"
	case errors.Is(err, marketerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, marketerrors.ErrShippingBidNotFound):
		return http.StatusNotFound, "shipping bid not found"
	case errors.Is(err, marketerrors.ErrInvalidOrder):
		return http.StatusBadRequest, "invalid order details"
	case errors.Is(err, marketerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, marketerrors.ErrOrderNotBiddable):
		return http.StatusConflict, "order is not open for seller bids"
	case errors.Is(err, marketerrors.ErrOrderNotShippable):
		return http.StatusConflict, "order is not open for shipping bids"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ToOrderResponse converts an order model to its HTTP representation
func ToOrderResponse(order model.Order) OrderResponse {
	return OrderResponse{
		ID:              order.ID,
		ItemID:          order.ItemID,
		BuyerID:         order.BuyerID,
		Quantity:        order.Quantity,
		TotalPrice:      order.TotalPrice.String(),
		Status:          string(order.Status),
		ShippingAddress: order.ShippingAddress,
		Notes:           order.Notes,
		CreatedAt:       order.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       order.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ToBidResponse converts a seller bid to its HTTP representation
func ToBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		ID:                bid.ID,
		OrderID:           bid.OrderID,
		BidderID:          bid.SellerID,
		BidAmount:         bid.BidAmount.String(),
		EstimatedDelivery: bid.EstimatedDelivery,
		Message:           bid.Message,
		Status:            string(bid.Status),
		CreatedAt:         bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToShippingBidResponse converts a shipping bid to its HTTP representation
func ToShippingBidResponse(bid model.ShippingBid) BidResponse {
	return BidResponse{
		ID:                bid.ID,
		OrderID:           bid.OrderID,
		BidderID:          bid.ShippingProviderID,
		BidAmount:         bid.BidAmount.String(),
		EstimatedDelivery: bid.EstimatedDelivery,
		Message:           bid.Message,
		Status:            string(bid.Status),
		CreatedAt:         bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}
