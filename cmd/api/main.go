package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"gighub/internal/adapter/api"
	"gighub/internal/adapter/api/handler"
	apimiddleware "gighub/internal/adapter/api/middleware"
	"gighub/internal/adapter/api/router"
	"gighub/internal/adapter/repository"
	"gighub/internal/domain/service"
	"gighub/internal/infrastructure/auth"
	"gighub/internal/infrastructure/firebase"
	"gighub/internal/infrastructure/metrics"
	"gighub/internal/infrastructure/storage"
	"gighub/internal/usecase"
	"gighub/pkg/config"
	"gighub/pkg/logger"
	"gighub/pkg/response"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.SetDebug(cfg.Environment == "development")

	ctx := context.Background()

	var (
		repos       *repository.Registry
		fileService service.FileUploadService
	)

	switch cfg.Datastore {
	case config.DatastoreFirestore:
		app, err := firebase.NewApp(ctx, cfg)
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer app.Close()

		repos = repository.NewFirestoreRegistry(app.Firestore)

		bucket, err := app.Bucket(ctx)
		if err != nil {
			log.Fatalf("%v", err)
		}
		if bucket != nil {
			fileService = storage.NewCloudStorageClient(bucket, app.BucketName())
			logger.Info("Avatar uploads enabled on bucket %s", app.BucketName())
		}
	default:
		logger.Warn("Using the in-memory datastore; data is lost on restart")
		repos = repository.NewMemoryRegistry()
	}

	tokens := auth.NewTokenService(cfg.AccessTokenSecret, cfg.AccessTokenExpiry, cfg.RefreshTokenSecret, cfg.RefreshTokenExpiry)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	authUseCase := usecase.NewAuthUseCase(repos.Users, repos.Transactor, tokens, hasher)
	userUseCase := usecase.NewUserUseCase(repos.Users, fileService)
	jobUseCase := usecase.NewJobUseCase(repos.Jobs, repos.Proposals, repos.Transactor)
	projectUseCase := usecase.NewProjectUseCase(repos.Jobs, repos.Submissions, repos.Users, repos.Transactor)
	paymentUseCase := usecase.NewPaymentUseCase(repos.Payments, repos.Earnings, repos.Jobs, repos.Users, service.NewSimulatedPaymentGateway(), repos.Transactor)
	earningsUseCase := usecase.NewEarningsUseCase(repos.Earnings, repos.Transactor)
	reviewUseCase := usecase.NewReviewUseCase(repos.Reviews, repos.Jobs, repos.Users, repos.Transactor)

	handler.Setup(
		authUseCase,
		userUseCase,
		jobUseCase,
		projectUseCase,
		paymentUseCase,
		earningsUseCase,
		reviewUseCase,
		handler.CookieConfig{AccessTTL: tokens.AccessTTL(), RefreshTTL: tokens.RefreshTTL()},
	)
	handler.SetupHealthHandler(cfg.Datastore)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = response.HTTPErrorHandler
	e.Validator = api.NewValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("%s %s %d %s", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))
	e.Use(metrics.Middleware())

	authMiddleware := apimiddleware.NewAuthMiddleware(authUseCase)
	router.Setup(e, authMiddleware, fileService != nil)

	go func() {
		logger.Info("Starting server on port %s...", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
}
