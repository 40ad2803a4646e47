package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"spendscan/internal/api"
	"spendscan/internal/api/handlers"
	"spendscan/internal/repository"
	"spendscan/internal/service"
	"spendscan/internal/storage"
	"spendscan/pkg/config"
	"spendscan/pkg/logger"
	"spendscan/pkg/postgres"

	"go.uber.org/zap"
)

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
	appLogger.Info("Starting spendscan service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, cfg.Database.URL, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		appLogger.Fatal("Failed to ensure schema", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	expenseRepo := repository.NewExpenseRepository(db, appLogger)

	// Initialize services
	authService := service.NewAuthService(userRepo, appLogger)
	expenseService := service.NewExpenseService(expenseRepo, appLogger)

	llmService, err := service.NewLLMService(&cfg.GigaChat, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize LLM service", zap.Error(err))
	}
	defer llmService.Close()

	ocrService := service.NewOCRService(cfg.OCR.Languages, appLogger)
	receiptStore := storage.NewFileStore(cfg.Storage.UploadDir, appLogger)
	receiptService := service.NewReceiptService(receiptStore, ocrService, llmService, expenseRepo, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	expenseHandler := handlers.NewExpenseHandler(expenseService, appLogger)
	receiptHandler := handlers.NewReceiptHandler(receiptService, appLogger)

	// Setup router
	app := api.SetupRouter(authHandler, expenseHandler, receiptHandler)

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
