package router

import (
	"github.com/labstack/echo/v4"

	"skillswap/internal/adapter/api/handler"
	"skillswap/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()
	reviewHandler := handler.GetReviewHandler()

	users := e.Group("/api/users")
	users.Use(authMiddleware.Authenticate)

	users.GET("/me", userHandler.GetMe)
	users.PUT("/me", userHandler.UpdateMe)
	users.PUT("/me/preferences", userHandler.UpdatePreferences)
	users.PUT("/me/client-profile", userHandler.UpdateClientProfile)
	users.DELETE("/me", userHandler.DeactivateMe)

	users.GET("/:id", userHandler.GetPublicProfile)
	users.GET("/:id/reviews", reviewHandler.ListUserReviews)
}
