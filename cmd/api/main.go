package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"skillswap/internal/adapter/api"
	"skillswap/internal/adapter/api/handler"
	apimiddleware "skillswap/internal/adapter/api/middleware"
	"skillswap/internal/adapter/api/router"
	"skillswap/internal/adapter/repository"
	"skillswap/internal/infrastructure/auth"
	"skillswap/internal/infrastructure/mailer"
	"skillswap/internal/infrastructure/ratelimit"
	"skillswap/internal/infrastructure/storage"
	"skillswap/internal/infrastructure/websocket"
	"skillswap/internal/usecase"
	"skillswap/pkg/config"
	"skillswap/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirestoreProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewLocalStorageClient(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize local storage: %v", err)
	}

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	clientProfileRepo := repository.NewFirestoreClientProfileRepository(firestoreClient)
	freelancerProfileRepo := repository.NewFirestoreFreelancerProfileRepository(firestoreClient)
	projectRepo := repository.NewFirestoreProjectRepository(firestoreClient)
	bidRepo := repository.NewFirestoreBidRepository(firestoreClient)
	contractRepo := repository.NewFirestoreContractRepository(firestoreClient)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	notificationRepo := repository.NewFirestoreNotificationRepository(firestoreClient)
	templateRepo := repository.NewFirestoreNotificationTemplateRepository(firestoreClient)
	scheduledRepo := repository.NewFirestoreScheduledNotificationRepository(firestoreClient)
	fileMetadataRepo := repository.NewFirestoreFileMetadataRepository(firestoreClient)

	tokenManager := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry, cfg.RefreshExpiry)
	emailSender := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom, cfg.SMTPPassword)
	smsSender := mailer.NewLogSMSSender()

	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	wsManager := websocket.NewManager()
	wsManager.SetFloodLimiter(rateLimiter)
	wsManager.Start(ctx)

	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, templateRepo, userRepo, emailSender, smsSender, wsManager)
	authUseCase := usecase.NewAuthUseCase(userRepo, clientProfileRepo, freelancerProfileRepo, tokenManager)
	userUseCase := usecase.NewUserUseCase(userRepo, clientProfileRepo, freelancerProfileRepo, reviewRepo)
	freelancerUseCase := usecase.NewFreelancerUseCase(freelancerProfileRepo, bidRepo, contractRepo, projectRepo)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, bidRepo, contractRepo, clientProfileRepo, freelancerProfileRepo, notificationUseCase, wsManager)
	bidUseCase := usecase.NewBidUseCase(bidRepo, projectRepo, contractRepo, clientProfileRepo, freelancerProfileRepo, notificationUseCase, wsManager)
	chatUseCase := usecase.NewChatUseCase(chatRepo, userRepo, notificationUseCase, wsManager)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, contractRepo, projectRepo, userRepo, notificationUseCase)
	schedulerUseCase := usecase.NewSchedulerUseCase(scheduledRepo, templateRepo, userRepo, notificationUseCase)
	adminUseCase := usecase.NewAdminUseCase(userRepo, projectRepo, bidRepo, contractRepo, notificationUseCase)
	fileUseCase := usecase.NewFileUseCase(storageClient, fileMetadataRepo, cfg.MaxUploadSizeMB)

	// Re-arm persisted schedules before the cron loop starts.
	if err := schedulerUseCase.Reconcile(ctx); err != nil {
		logger.Error("Scheduler reconcile failed: %v", err)
	}
	schedulerUseCase.Start()
	defer schedulerUseCase.Stop()

	handler.Setup(
		authUseCase,
		userUseCase,
		freelancerUseCase,
		projectUseCase,
		bidUseCase,
		chatUseCase,
		reviewUseCase,
		notificationUseCase,
		schedulerUseCase,
		adminUseCase,
		fileUseCase,
		wsManager,
	)
	handler.SetupHealthHandler(firestoreClient)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokenManager, userRepo)
	roleMiddleware := apimiddleware.NewRoleMiddleware()
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware(rateLimiter)

	router.Setup(e, authMiddleware, roleMiddleware, rateLimitMiddleware)

	logger.Info("Starting server on port %s (%s)", cfg.ServerPort, cfg.Environment)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
