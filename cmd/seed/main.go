package main

import (
	"context"
	"log"

	"hustleke/internal/repository"
	"hustleke/pkg/config"
	"hustleke/pkg/logger"
	"hustleke/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Named("seed")

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	knowledgeRepo := repository.NewKnowledgeRepository(db, appLogger)

	appLogger.Info("Seeding knowledge base", zap.String("file", cfg.Seed.File))
	n, err := seedKnowledgeBase(ctx, cfg.Seed.File, cfg.Seed.CacheFile, knowledgeRepo, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to seed knowledge base", zap.Error(err))
	}

	appLogger.Info("Seeding completed", zap.Int("entries", n))
}
