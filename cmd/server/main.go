package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/basketful/backend/config"
	httpDelivery "github.com/basketful/backend/internal/delivery/http"
	"github.com/basketful/backend/internal/domain"
	"github.com/basketful/backend/internal/infrastructure/cache"
	"github.com/basketful/backend/internal/infrastructure/catalog"
	"github.com/basketful/backend/internal/infrastructure/recipes"
	"github.com/basketful/backend/internal/usecase"
)

func main() {
	// .env is optional; real deployments set environment variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Quantities and prices render as JSON numbers, matching the API schema
	decimal.MarshalJSONWithoutQuotes = true

	logger.Info("starting basketful matching engine",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("cacheType", cfg.Cache.Type),
		zap.String("catalogMode", cfg.Catalog.Mode))

	searchCache, err := newCache(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize cache", zap.Error(err))
	}

	catalogRepo := newCatalog(cfg, logger)

	recipeRepo := recipes.NewRepository()
	recipes.Seed(recipeRepo)

	scorer := usecase.NewScorer(cfg.Matching.ContainmentScore)
	retriever := usecase.NewCandidateRetriever(catalogRepo, searchCache, scorer, logger, usecase.RetrieverConfig{
		MinScore:         cfg.Matching.MinScore,
		CategoryBoost:    cfg.Matching.CategoryBoost,
		CategoryBoostMin: cfg.Matching.CategoryBoostMin,
		SearchCacheTTL:   cfg.Matching.SearchCacheTTL,
	})
	matchService := usecase.NewMatchService(recipeRepo, retriever, logger, usecase.MatchConfig{
		MaxResults:       cfg.Matching.MaxResults,
		MaxConcurrent:    cfg.Matching.MaxConcurrent,
		RetrievalTimeout: cfg.Matching.RetrievalTimeout,
	})

	handler := httpDelivery.NewHandler(matchService, logger)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("server listening", zap.String("addr", addr))

	if err := router.Run(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func newCache(cfg *config.Config, logger *zap.Logger) (domain.CacheRepository, error) {
	if cfg.Cache.Type == "redis" {
		logger.Info("using redis search cache", zap.String("url", cfg.Cache.RedisURL))
		return cache.NewRedisCache(context.Background(), cfg.Cache.RedisURL)
	}
	return cache.NewMemoryCache(), nil
}

func newCatalog(cfg *config.Config, logger *zap.Logger) domain.CatalogRepository {
	if cfg.Catalog.Mode == "remote" {
		return catalog.NewClient(catalog.ClientConfig{
			BaseURL:        cfg.Catalog.BaseURL,
			RequestsPerSec: cfg.Catalog.RequestsPerSec,
			Burst:          cfg.Catalog.Burst,
			Timeout:        cfg.Catalog.Timeout,
		}, logger)
	}

	store := catalog.NewStore()
	catalog.Seed(store)
	logger.Info("using seeded in-memory catalog")
	return store
}
