package router

import (
	"github.com/labstack/echo/v4"

	"skillswap/internal/adapter/api/handler"
	"skillswap/internal/adapter/api/middleware"
)

func SetupBidRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	bidHandler := handler.GetBidHandler()

	bids := e.Group("/api/bids")
	bids.Use(authMiddleware.Authenticate)

	bids.GET("/mine", bidHandler.ListMyBids)
	bids.GET("/:id", bidHandler.GetBid)
	bids.POST("/:id/withdraw", bidHandler.WithdrawBid)
	bids.POST("/:id/reject", bidHandler.RejectBid)
	bids.POST("/:id/counter-offer", bidHandler.ProposeCounterOffer)
	bids.POST("/:id/counter-offer/respond", bidHandler.RespondCounterOffer)
}
