package router

import (
	"github.com/labstack/echo/v4"

	"skillswap/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	SetupAuthRouter(e, authMiddleware, rateLimitMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupFreelancerRouter(e, authMiddleware, roleMiddleware)
	SetupProjectRouter(e, authMiddleware, roleMiddleware, rateLimitMiddleware)
	SetupBidRouter(e, authMiddleware)
	SetupChatRouter(e, authMiddleware, rateLimitMiddleware)
	SetupReviewRouter(e, authMiddleware)
	SetupNotificationRouter(e, authMiddleware, roleMiddleware)
	SetupAdminRouter(e, authMiddleware, roleMiddleware)
	SetupDashboardRouter(e, authMiddleware, roleMiddleware)
	SetupFileRouter(e, authMiddleware)
	SetupWebSocketRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
