package router

import (
	"github.com/labstack/echo/v4"

	"skillswap/internal/adapter/api/handler"
	"skillswap/internal/adapter/api/middleware"
)

func SetupChatRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	chatHandler := handler.GetChatHandler()

	messages := e.Group("/api/messages")
	messages.Use(authMiddleware.Authenticate)

	messages.POST("", chatHandler.SendMessage, rateLimitMiddleware.Limit("send_message"))
	messages.GET("/unread", chatHandler.UnreadTotal)

	messages.POST("/conversations", chatHandler.StartConversation)
	messages.GET("/conversations", chatHandler.ListConversations)
	messages.GET("/conversations/:id", chatHandler.GetConversation)
	messages.GET("/conversations/:id/messages", chatHandler.ListMessages)
	messages.POST("/conversations/:id/read", chatHandler.MarkRead)
}
