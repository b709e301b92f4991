package router

import (
	"github.com/labstack/echo/v4"

	"skillswap/internal/adapter/api/handler"
	"skillswap/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/api/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)

	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/users/:id", adminHandler.GetUser)
	admin.POST("/users/:id/suspend", adminHandler.SuspendUser)
	admin.POST("/users/:id/reactivate", adminHandler.ReactivateUser)
	admin.DELETE("/projects/:id", adminHandler.RemoveProject)
	admin.POST("/reviews/:id/hide", adminHandler.HideReview)
	admin.GET("/stats", adminHandler.GetPlatformStats)

	analytics := e.Group("/api/analytics")
	analytics.Use(authMiddleware.Authenticate)
	analytics.Use(roleMiddleware.AdminOnly)

	analytics.GET("/signups", adminHandler.GetSignupSeries)
	analytics.GET("/bids", adminHandler.GetBidAverages)
	analytics.GET("/skills", adminHandler.GetTopSkills)
}
