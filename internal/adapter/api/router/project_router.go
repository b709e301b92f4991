package router

import (
	"github.com/labstack/echo/v4"

	"skillswap/internal/adapter/api/handler"
	"skillswap/internal/adapter/api/middleware"
)

func SetupProjectRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	projectHandler := handler.GetProjectHandler()
	bidHandler := handler.GetBidHandler()

	e.GET("/api/projects", projectHandler.ListProjects)
	e.GET("/api/projects/search", projectHandler.SearchProjects)
	e.GET("/api/projects/:id", projectHandler.GetProject)

	projects := e.Group("/api/projects")
	projects.Use(authMiddleware.Authenticate)

	projects.GET("/mine", projectHandler.ListMyProjects)
	projects.POST("", projectHandler.CreateProject, roleMiddleware.ClientOnly)
	projects.PUT("/:id", projectHandler.UpdateProject, roleMiddleware.ClientOnly)
	projects.POST("/:id/cancel", projectHandler.CancelProject, roleMiddleware.ClientOnly)
	projects.POST("/:id/complete", projectHandler.MarkComplete)

	projects.POST("/:id/milestones", projectHandler.AddMilestone, roleMiddleware.ClientOnly)
	projects.POST("/:id/milestones/:milestoneId/submit", projectHandler.SubmitMilestone, roleMiddleware.FreelancerOnly)
	projects.POST("/:id/milestones/:milestoneId/approve", projectHandler.ApproveMilestone, roleMiddleware.ClientOnly)
	projects.POST("/:id/submit-work", projectHandler.SubmitWork, roleMiddleware.FreelancerOnly)

	projects.GET("/:id/bids", bidHandler.ListProjectBids)
	projects.POST("/:id/bids", bidHandler.PlaceBid, roleMiddleware.FreelancerOnly, rateLimitMiddleware.Limit("place_bid"))
	projects.POST("/:id/bids/:bidId/accept", bidHandler.AcceptBid, roleMiddleware.ClientOnly)
}
