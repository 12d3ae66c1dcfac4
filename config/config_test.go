package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("BASKETFUL_SERVER_PORT")
		os.Unsetenv("BASKETFUL_SERVER_ENVIRONMENT")
		os.Unsetenv("BASKETFUL_MATCHING_MIN_SCORE")
		os.Unsetenv("BASKETFUL_MATCHING_MAX_RESULTS")
		os.Unsetenv("BASKETFUL_MATCHING_RETRIEVAL_TIMEOUT")
		os.Unsetenv("BASKETFUL_CACHE_TYPE")
		os.Unsetenv("BASKETFUL_CACHE_REDIS_URL")
		os.Unsetenv("BASKETFUL_CATALOG_MODE")
		os.Unsetenv("BASKETFUL_CATALOG_BASE_URL")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Matching.MinScore != 50 {
			t.Errorf("Matching.MinScore = %d, want 50", cfg.Matching.MinScore)
		}
		if cfg.Matching.ContainmentScore != 85 {
			t.Errorf("Matching.ContainmentScore = %d, want 85", cfg.Matching.ContainmentScore)
		}
		if cfg.Matching.CategoryBoost != 15 {
			t.Errorf("Matching.CategoryBoost = %d, want 15", cfg.Matching.CategoryBoost)
		}
		if cfg.Matching.MaxResults != 5 {
			t.Errorf("Matching.MaxResults = %d, want 5", cfg.Matching.MaxResults)
		}
		if cfg.Matching.RetrievalTimeout != 3*time.Second {
			t.Errorf("Matching.RetrievalTimeout = %v, want 3s", cfg.Matching.RetrievalTimeout)
		}
		if cfg.Matching.SearchCacheTTL != 5*time.Minute {
			t.Errorf("Matching.SearchCacheTTL = %v, want 5m", cfg.Matching.SearchCacheTTL)
		}
		if cfg.Cache.Type != "memory" {
			t.Errorf("Cache.Type = %s, want memory", cfg.Cache.Type)
		}
		if cfg.Catalog.Mode != "memory" {
			t.Errorf("Catalog.Mode = %s, want memory", cfg.Catalog.Mode)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("BASKETFUL_SERVER_PORT", "9090")
		os.Setenv("BASKETFUL_SERVER_ENVIRONMENT", "production")
		os.Setenv("BASKETFUL_MATCHING_MIN_SCORE", "60")
		os.Setenv("BASKETFUL_MATCHING_RETRIEVAL_TIMEOUT", "5s")
		os.Setenv("BASKETFUL_CACHE_TYPE", "redis")
		os.Setenv("BASKETFUL_CACHE_REDIS_URL", "redis://localhost:6379")
		os.Setenv("BASKETFUL_CATALOG_MODE", "remote")
		os.Setenv("BASKETFUL_CATALOG_BASE_URL", "https://catalog.internal")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Matching.MinScore != 60 {
			t.Errorf("Matching.MinScore = %d, want 60", cfg.Matching.MinScore)
		}
		if cfg.Matching.RetrievalTimeout != 5*time.Second {
			t.Errorf("Matching.RetrievalTimeout = %v, want 5s", cfg.Matching.RetrievalTimeout)
		}
		if cfg.Cache.Type != "redis" {
			t.Errorf("Cache.Type = %s, want redis", cfg.Cache.Type)
		}
		if cfg.Cache.RedisURL != "redis://localhost:6379" {
			t.Errorf("Cache.RedisURL = %s, want redis://localhost:6379", cfg.Cache.RedisURL)
		}
		if cfg.Catalog.Mode != "remote" {
			t.Errorf("Catalog.Mode = %s, want remote", cfg.Catalog.Mode)
		}
		if cfg.Catalog.BaseURL != "https://catalog.internal" {
			t.Errorf("Catalog.BaseURL = %s, want https://catalog.internal", cfg.Catalog.BaseURL)
		}
	})

	t.Run("fails validation for invalid cache type", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("BASKETFUL_CACHE_TYPE", "invalid")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for invalid cache type")
		}
	})

	t.Run("fails validation when redis URL missing for redis cache", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("BASKETFUL_CACHE_TYPE", "redis")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for missing Redis URL")
		}
	})

	t.Run("fails validation when base URL missing for remote catalog", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("BASKETFUL_CATALOG_MODE", "remote")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for missing catalog base URL")
		}
	})

	t.Run("fails validation for out-of-range min score", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("BASKETFUL_MATCHING_MIN_SCORE", "150")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for min_score out of range")
		}
	})
}

func TestValidate(t *testing.T) {
	validConfig := func() *Config {
		return &Config{
			Matching: MatchingConfig{
				MinScore:         50,
				ContainmentScore: 85,
				CategoryBoost:    15,
				CategoryBoostMin: 70,
				MaxResults:       5,
			},
			Cache:   CacheConfig{Type: "memory"},
			Catalog: CatalogConfig{Mode: "memory"},
		}
	}

	t.Run("validates successfully with all required fields", func(t *testing.T) {
		err := validate(validConfig())
		if err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("fails for invalid cache type", func(t *testing.T) {
		cfg := validConfig()
		cfg.Cache.Type = "invalid-type"

		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for invalid cache type")
		}
	})

	t.Run("validates redis cache type with URL", func(t *testing.T) {
		cfg := validConfig()
		cfg.Cache.Type = "redis"
		cfg.Cache.RedisURL = "redis://localhost:6379"

		if err := validate(cfg); err != nil {
			t.Errorf("validate() error = %v, want nil for valid redis config", err)
		}
	})

	t.Run("fails for redis cache without URL", func(t *testing.T) {
		cfg := validConfig()
		cfg.Cache.Type = "redis"

		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for redis without URL")
		}
	})

	t.Run("fails for invalid catalog mode", func(t *testing.T) {
		cfg := validConfig()
		cfg.Catalog.Mode = "grpc"

		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for invalid catalog mode")
		}
	})

	t.Run("fails for remote catalog without base URL", func(t *testing.T) {
		cfg := validConfig()
		cfg.Catalog.Mode = "remote"

		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for remote catalog without base URL")
		}
	})

	t.Run("fails for non-positive max results", func(t *testing.T) {
		cfg := validConfig()
		cfg.Matching.MaxResults = 0

		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for max_results of 0")
		}
	})

	t.Run("fails for out-of-range containment score", func(t *testing.T) {
		cfg := validConfig()
		cfg.Matching.ContainmentScore = 101

		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for containment_score out of range")
		}
	})
}
