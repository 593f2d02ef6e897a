package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/6ixapp/morren/internal/marketerrors"
	market "github.com/6ixapp/morren/internal/marketService"
	model "github.com/6ixapp/morren/internal/models"
	"github.com/6ixapp/morren/internal/settlement"
	"github.com/6ixapp/morren/services/market/helpers"
	"github.com/6ixapp/morren/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type MarketServiceInterface interface {
	CreateOrder(ctx context.Context, params market.CreateOrderParams) (model.Order, error)
	GetOrder(ctx context.Context, orderID string) (model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	PlaceBid(ctx context.Context, params market.PlaceBidParams) (model.Bid, error)
	GetBidsForOrder(ctx context.Context, orderID string) ([]model.Bid, error)
	PlaceShippingBid(ctx context.Context, params market.PlaceShippingBidParams) (model.ShippingBid, error)
	GetShippingBidsForOrder(ctx context.Context, orderID string) ([]model.ShippingBid, error)
	AcceptBid(ctx context.Context, orderID, bidID string) (model.Bid, error)
}

type SweepRunner interface {
	Run(ctx context.Context, now time.Time) (settlement.SweepReport, error)
}

type MarketHandler struct {
	service MarketServiceInterface
	sweeper SweepRunner
}

func NewMarketHandler(service MarketServiceInterface, sweeper SweepRunner) *MarketHandler {
	return &MarketHandler{service: service, sweeper: sweeper}
}

// CreateOrderHandler handles POST /orders
func (h *MarketHandler) CreateOrderHandler(c *gin.Context) {
	var req helpers.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateOrderHandler", err)
		return
	}

	params := market.CreateOrderParams{
		ItemID:          req.ItemID,
		BuyerID:         req.BuyerID,
		Quantity:        req.Quantity,
		TotalPrice:      decimal.NewFromFloat(req.TotalPrice),
		ShippingAddress: req.ShippingAddress,
		Notes:           req.Notes,
	}
	if len(req.Specifications) > 0 {
		params.Item = &model.Item{ItemID: req.ItemID, Specifications: req.Specifications}
	}

	order, err := h.service.CreateOrder(c.Request.Context(), params)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateOrderHandler: failed to create order", map[string]any{
			"handler":  "CreateOrderHandler",
			"item_id":  req.ItemID,
			"buyer_id": req.BuyerID,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToOrderResponse(order), "order created successfully")
	helpers.LogSuccess("CreateOrderHandler", "order created successfully", map[string]any{
		"order_id": order.ID,
		"item_id":  order.ItemID,
		"buyer_id": order.BuyerID,
	})
}

// ListOrdersHandler handles GET /orders
func (h *MarketHandler) ListOrdersHandler(c *gin.Context) {
	orders, err := h.service.ListOrders(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListOrdersHandler: error retrieving orders", map[string]any{"error": err.Error()})
		return
	}

	resp := make([]helpers.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, helpers.ToOrderResponse(o))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "orders retrieved successfully")
}

// GetOrderHandler handles GET /orders/:order_id
func (h *MarketHandler) GetOrderHandler(c *gin.Context) {
	orderID := c.Param("order_id")
	order, err := h.service.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetOrderHandler: error retrieving order", map[string]any{"order_id": orderID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToOrderResponse(order), "order retrieved successfully")
}

// PlaceBidHandler handles POST /bids
func (h *MarketHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(c.Request.Context(), market.PlaceBidParams{
		OrderID:           req.OrderID,
		SellerID:          req.SellerID,
		BidAmount:         decimal.NewFromFloat(req.BidAmount),
		EstimatedDelivery: req.EstimatedDelivery,
		Message:           req.Message,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":   "PlaceBidHandler",
			"order_id":  req.OrderID,
			"seller_id": req.SellerID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(bid), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.ID,
		"order_id":   bid.OrderID,
		"seller_id":  bid.SellerID,
		"bid_amount": bid.BidAmount.String(),
	})
}

// GetBidsForOrderHandler handles GET /orders/:order_id/bids
func (h *MarketHandler) GetBidsForOrderHandler(c *gin.Context) {
	orderID := c.Param("order_id")
	bids, err := h.service.GetBidsForOrder(c.Request.Context(), orderID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsForOrderHandler: error retrieving bids", map[string]any{"order_id": orderID, "error": err.Error()})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, helpers.ToBidResponse(b))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
}

// AcceptBidHandler handles POST /orders/:order_id/bids/:bid_id/accept
func (h *MarketHandler) AcceptBidHandler(c *gin.Context) {
	orderID := c.Param("order_id")
	bidID := c.Param("bid_id")

	bid, err := h.service.AcceptBid(c.Request.Context(), orderID, bidID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		if errors.Is(err, marketerrors.ErrBidNotFound) {
			message = "bid is not pending on this order"
		}
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AcceptBidHandler: failed to accept bid", map[string]any{
			"order_id": orderID,
			"bid_id":   bidID,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), "bid accepted successfully")
	helpers.LogSuccess("AcceptBidHandler", "bid accepted successfully", map[string]any{
		"order_id": orderID,
		"bid_id":   bidID,
	})
}

// PlaceShippingBidHandler handles POST /shipping-bids
func (h *MarketHandler) PlaceShippingBidHandler(c *gin.Context) {
	var req helpers.PlaceShippingBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceShippingBidHandler", err)
		return
	}

	bid, err := h.service.PlaceShippingBid(c.Request.Context(), market.PlaceShippingBidParams{
		OrderID:            req.OrderID,
		ShippingProviderID: req.ShippingProviderID,
		BidAmount:          decimal.NewFromFloat(req.BidAmount),
		EstimatedDelivery:  req.EstimatedDelivery,
		Message:            req.Message,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceShippingBidHandler: failed to place shipping bid", map[string]any{
			"handler":              "PlaceShippingBidHandler",
			"order_id":             req.OrderID,
			"shipping_provider_id": req.ShippingProviderID,
			"error":                err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToShippingBidResponse(bid), "shipping bid placed successfully")
	helpers.LogSuccess("PlaceShippingBidHandler", "shipping bid placed successfully", map[string]any{
		"shipping_bid_id": bid.ID,
		"order_id":        bid.OrderID,
		"bid_amount":      bid.BidAmount.String(),
	})
}

// GetShippingBidsForOrderHandler handles GET /orders/:order_id/shipping-bids
func (h *MarketHandler) GetShippingBidsForOrderHandler(c *gin.Context) {
	orderID := c.Param("order_id")
	bids, err := h.service.GetShippingBidsForOrder(c.Request.Context(), orderID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetShippingBidsForOrderHandler: error retrieving shipping bids", map[string]any{"order_id": orderID, "error": err.Error()})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, helpers.ToShippingBidResponse(b))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "shipping bids retrieved successfully")
}

// SweepHandler handles POST /settlements/sweep. It settles every order whose
// bidding window has closed and reports what changed.
func (h *MarketHandler) SweepHandler(c *gin.Context) {
	report, err := h.sweeper.Run(c.Request.Context(), time.Now().UTC())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err, "sweep failed")
		utils.Error("SweepHandler: sweep failed", map[string]any{"error": err.Error()})
		return
	}

	resp := helpers.SweepResponse{
		SellerSettled:   report.SellerSettled,
		ShippingSettled: report.ShippingSettled,
		Errors:          make([]helpers.SweepIssue, 0, len(report.Errors)),
	}
	for _, e := range report.Errors {
		resp.Errors = append(resp.Errors, helpers.SweepIssue{
			OrderID: e.OrderID,
			Phase:   string(e.Phase),
			Error:   e.Err.Error(),
		})
	}

	utils.JSONResponse(c, http.StatusOK, resp, "sweep completed")
	helpers.LogSuccess("SweepHandler", "sweep completed", map[string]any{
		"seller_settled":   report.SellerSettled,
		"shipping_settled": report.ShippingSettled,
		"errors":           len(report.Errors),
	})
}
