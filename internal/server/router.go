package server

import (
	market "github.com/6ixapp/morren/internal/marketService"
	"github.com/6ixapp/morren/internal/settlement"
	handler "github.com/6ixapp/morren/services/market/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(marketService *market.MarketService, sweeper *settlement.Sweeper) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	marketHandler := handler.NewMarketHandler(marketService, sweeper)

	orders := router.Group("/orders")
	{
		orders.POST("", marketHandler.CreateOrderHandler)
		orders.GET("", marketHandler.ListOrdersHandler)
		orders.GET("/:order_id", marketHandler.GetOrderHandler)
		orders.GET("/:order_id/bids", marketHandler.GetBidsForOrderHandler)
		orders.GET("/:order_id/shipping-bids", marketHandler.GetShippingBidsForOrderHandler)
		orders.POST("/:order_id/bids/:bid_id/accept", marketHandler.AcceptBidHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", marketHandler.PlaceBidHandler)
	}

	shippingBids := router.Group("/shipping-bids")
	{
		shippingBids.POST("", marketHandler.PlaceShippingBidHandler)
	}

	settlements := router.Group("/settlements")
	{
		settlements.POST("/sweep", marketHandler.SweepHandler)
	}

	return router
}
