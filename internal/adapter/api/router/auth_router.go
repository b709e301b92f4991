package router

import (
	"github.com/labstack/echo/v4"

	"skillswap/internal/adapter/api/handler"
	"skillswap/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	authHandler := handler.GetAuthHandler()

	e.POST("/api/auth/register", authHandler.Register, rateLimitMiddleware.Limit("register"))
	e.POST("/api/auth/login", authHandler.Login, rateLimitMiddleware.Limit("login"))
	e.POST("/api/auth/refresh", authHandler.RefreshToken)

	protected := e.Group("/api/auth")
	protected.Use(authMiddleware.Authenticate)
	protected.POST("/change-password", authHandler.ChangePassword)
}
