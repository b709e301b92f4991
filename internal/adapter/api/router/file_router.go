package router

import (
	"github.com/labstack/echo/v4"

	"skillswap/internal/adapter/api/handler"
	"skillswap/internal/adapter/api/middleware"
)

func SetupFileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	fileHandler := handler.GetFileHandler()

	files := e.Group("/api/files")
	files.Use(authMiddleware.Authenticate)

	files.POST("", fileHandler.UploadFile)
	files.GET("/:id", fileHandler.DownloadFile)
	files.DELETE("/:id", fileHandler.DeleteFile)
}
