package router

import (
	"github.com/labstack/echo/v4"

	"skillswap/internal/adapter/api/handler"
	"skillswap/internal/adapter/api/middleware"
)

func SetupFreelancerRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	freelancerHandler := handler.GetFreelancerHandler()

	e.GET("/api/freelancer/search", freelancerHandler.Search)

	freelancer := e.Group("/api/freelancer")
	freelancer.Use(authMiddleware.Authenticate)
	freelancer.Use(roleMiddleware.FreelancerOnly)

	freelancer.GET("/profile", freelancerHandler.GetMyProfile)
	freelancer.PUT("/profile", freelancerHandler.UpdateProfile)
	freelancer.POST("/portfolio", freelancerHandler.AddPortfolioItem)
	freelancer.DELETE("/portfolio/:itemId", freelancerHandler.RemovePortfolioItem)
}
