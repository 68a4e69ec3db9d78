package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hustleke/internal/api"
	"hustleke/internal/api/handlers"
	"hustleke/internal/repository"
	"hustleke/internal/service"
	"hustleke/pkg/auth"
	"hustleke/pkg/config"
	"hustleke/pkg/logger"
	"hustleke/pkg/postgres"

	"go.uber.org/zap"
)

// @title HustleKE Help & Fees API
// @version 1.0
// @description Help Center search, AI answers and M-Pesa withdrawal fee calculator for HustleKE

// @contact.name HustleKE Support
// @contact.email support@hustleke.co.ke

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting HustleKE help service")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	knowledgeRepo := repository.NewKnowledgeRepository(db, logger.Named("repository"))

	helpService := service.NewHelpService(knowledgeRepo, &cfg.Search, logger.Named("help"))
	if _, err := helpService.Reload(ctx); err != nil {
		appLogger.Fatal("Failed to load knowledge base", zap.Error(err))
	}
	go helpService.Run(ctx, cfg.Search.RefreshInterval)

	var answerer service.Answerer
	if cfg.GigaChat.Enabled() {
		llmService, err := service.NewLLMService(&cfg.GigaChat, logger.Named("llm"))
		if err != nil {
			appLogger.Fatal("Failed to initialize LLM service", zap.Error(err))
		}
		defer llmService.Close()
		answerer = llmService
	} else {
		appLogger.Warn("GIGACHAT_API_KEY not set, AI answers disabled")
	}

	answerService := service.NewAnswerService(helpService, answerer, &cfg.Search, cfg.GigaChat.Timeout, logger.Named("answer"))
	feeService := service.NewFeeService(logger.Named("fees"))
	knowledgeService := service.NewKnowledgeService(knowledgeRepo, helpService, logger.Named("knowledge"))

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, time.Hour)

	app := api.SetupRouter(api.Handlers{
		Help:      handlers.NewHelpHandler(helpService, answerService, appLogger),
		Fee:       handlers.NewFeeHandler(feeService, appLogger),
		Knowledge: handlers.NewKnowledgeHandler(knowledgeService, appLogger),
	}, jwtManager, cfg, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	appLogger.Info("Shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
