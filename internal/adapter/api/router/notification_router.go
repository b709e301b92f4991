package router

import (
	"github.com/labstack/echo/v4"

	"skillswap/internal/adapter/api/handler"
	"skillswap/internal/adapter/api/middleware"
)

func SetupNotificationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	notificationHandler := handler.GetNotificationHandler()

	notify := e.Group("/api/notify")
	notify.Use(authMiddleware.Authenticate)

	notify.GET("", notificationHandler.ListNotifications)
	notify.GET("/unread", notificationHandler.UnreadCount)
	notify.POST("/read-all", notificationHandler.MarkAllRead)
	notify.POST("/:id/read", notificationHandler.MarkRead)
	notify.DELETE("/:id", notificationHandler.DeleteNotification)

	// Template and schedule management is admin territory.
	templates := e.Group("/api/notify/templates")
	templates.Use(authMiddleware.Authenticate)
	templates.Use(roleMiddleware.AdminOnly)
	templates.POST("", notificationHandler.CreateTemplate)
	templates.GET("", notificationHandler.ListTemplates)
	templates.PUT("/:id", notificationHandler.UpdateTemplate)
	templates.DELETE("/:id", notificationHandler.DeleteTemplate)

	schedules := e.Group("/api/notify/schedules")
	schedules.Use(authMiddleware.Authenticate)
	schedules.Use(roleMiddleware.AdminOnly)
	schedules.POST("", notificationHandler.CreateSchedule)
	schedules.GET("", notificationHandler.ListSchedules)
	schedules.GET("/:id", notificationHandler.GetSchedule)
	schedules.POST("/:id/cancel", notificationHandler.CancelSchedule)
}
