package router

import (
	"github.com/labstack/echo/v4"

	"skillswap/internal/adapter/api/handler"
	"skillswap/internal/adapter/api/middleware"
)

func SetupDashboardRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	projectHandler := handler.GetProjectHandler()
	freelancerHandler := handler.GetFreelancerHandler()

	dashboard := e.Group("/api/dashboard")
	dashboard.Use(authMiddleware.Authenticate)

	dashboard.GET("/client", projectHandler.ClientDashboard, roleMiddleware.ClientOnly)
	dashboard.GET("/freelancer", freelancerHandler.Dashboard, roleMiddleware.FreelancerOnly)
}
