package handler

import (
	"skillswap/internal/infrastructure/websocket"
	"skillswap/internal/usecase"
)

var (
	authHandler         *AuthHandler
	userHandler         *UserHandler
	freelancerHandler   *FreelancerHandler
	projectHandler      *ProjectHandler
	bidHandler          *BidHandler
	chatHandler         *ChatHandler
	reviewHandler       *ReviewHandler
	notificationHandler *NotificationHandler
	adminHandler        *AdminHandler
	fileHandler         *FileHandler
	webSocketHandler    *WebSocketHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	freelancerUseCase *usecase.FreelancerUseCase,
	projectUseCase *usecase.ProjectUseCase,
	bidUseCase *usecase.BidUseCase,
	chatUseCase *usecase.ChatUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	notificationUseCase *usecase.NotificationUseCase,
	schedulerUseCase *usecase.SchedulerUseCase,
	adminUseCase *usecase.AdminUseCase,
	fileUseCase *usecase.FileUseCase,
	wsManager *websocket.Manager,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	freelancerHandler = NewFreelancerHandler(freelancerUseCase)
	projectHandler = NewProjectHandler(projectUseCase)
	bidHandler = NewBidHandler(bidUseCase)
	chatHandler = NewChatHandler(chatUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase, schedulerUseCase)
	adminHandler = NewAdminHandler(adminUseCase, reviewUseCase)
	fileHandler = NewFileHandler(fileUseCase)
	webSocketHandler = NewWebSocketHandler(wsManager)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetFreelancerHandler() *FreelancerHandler {
	return freelancerHandler
}

func GetProjectHandler() *ProjectHandler {
	return projectHandler
}

func GetBidHandler() *BidHandler {
	return bidHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

func GetWebSocketHandler() *WebSocketHandler {
	return webSocketHandler
}
