package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nubetechmdq-wq/crmcasino/internal/api"
	"github.com/nubetechmdq-wq/crmcasino/internal/api/handlers"
	"github.com/nubetechmdq-wq/crmcasino/internal/repository"
	"github.com/nubetechmdq-wq/crmcasino/internal/service"
	"github.com/nubetechmdq-wq/crmcasino/pkg/auth"
	"github.com/nubetechmdq-wq/crmcasino/pkg/cache"
	"github.com/nubetechmdq-wq/crmcasino/pkg/config"
	"github.com/nubetechmdq-wq/crmcasino/pkg/logger"
	"github.com/nubetechmdq-wq/crmcasino/pkg/postgres"

	"go.uber.org/zap"
)

// @title Casino Cash Desk CRM API
// @version 1.0
// @description Receipt validation, settlement, chat and broadcast API for the WhatsApp cash desk.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting cash desk CRM service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Optional Redis cache for dashboard stats
	statsCache, err := cache.New(ctx, &cfg.Redis, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer statsCache.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	msgRepo := repository.NewMessageRepository(db, appLogger)
	broadcastRepo := repository.NewBroadcastRepository(db, appLogger)
	settingsRepo := repository.NewSettingsRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// AI client: Gemini when an API key is configured, otherwise a stub
	// that returns mock extractions.
	aiClient, err := service.NewAIClient(ctx, &cfg.Gemini, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize AI client", zap.Error(err))
	}

	// Initialize services
	settingsService := service.NewSettingsService(settingsRepo, aiClient, appLogger)
	if err := settingsService.Load(ctx); err != nil {
		appLogger.Fatal("Failed to load settings", zap.Error(err))
	}

	gateway := service.NewMercadoPagoClient(&cfg.Gateway, settingsService, appLogger)

	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	settlementService := service.NewSettlementService(txRepo, userRepo, statsCache, appLogger)
	validationService := service.NewValidationService(aiClient, gateway, userRepo, settlementService, settingsService, appLogger)
	txService := service.NewTransactionService(txRepo, userRepo, settlementService, appLogger)
	userService := service.NewUserService(userRepo, appLogger)
	chatService := service.NewChatService(msgRepo, userRepo, aiClient, settingsService, appLogger)
	broadcastService := service.NewBroadcastService(broadcastRepo, appLogger)
	statsService := service.NewStatsService(txRepo, userRepo, statsCache, cfg.Redis.StatsTTL, appLogger)

	// Setup router
	app := api.SetupRouter(api.Handlers{
		Auth:        handlers.NewAuthHandler(authService, appLogger),
		Receipt:     handlers.NewReceiptHandler(validationService, appLogger),
		Transaction: handlers.NewTransactionHandler(txService, appLogger),
		User:        handlers.NewUserHandler(userService, appLogger),
		Chat:        handlers.NewChatHandler(chatService, appLogger),
		Broadcast:   handlers.NewBroadcastHandler(broadcastService, appLogger),
		Dashboard:   handlers.NewDashboardHandler(statsService, appLogger),
		Settings:    handlers.NewSettingsHandler(settingsService, appLogger),
	}, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
