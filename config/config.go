package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Matching MatchingConfig
	Cache    CacheConfig
	Catalog  CatalogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// MatchingConfig holds the matching policy values. These are tunable
// policy constants, not data-derived numbers.
type MatchingConfig struct {
	MinScore         int           `mapstructure:"min_score"`
	ContainmentScore int           `mapstructure:"containment_score"`
	CategoryBoost    int           `mapstructure:"category_boost"`
	CategoryBoostMin int           `mapstructure:"category_boost_min"`
	MaxResults       int           `mapstructure:"max_results"`
	MaxConcurrent    int           `mapstructure:"max_concurrent"`
	RetrievalTimeout time.Duration `mapstructure:"retrieval_timeout"`
	SearchCacheTTL   time.Duration `mapstructure:"search_cache_ttl"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type     string `mapstructure:"type"` // "memory" or "redis"
	RedisURL string `mapstructure:"redis_url"`
}

// CatalogConfig selects the catalog backend. "memory" runs the seeded
// in-process store, "remote" talks to the catalog service API.
type CatalogConfig struct {
	Mode           string        `mapstructure:"mode"`
	BaseURL        string        `mapstructure:"base_url"`
	RequestsPerSec float64       `mapstructure:"requests_per_sec"`
	Burst          int           `mapstructure:"burst"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/basketful/")

	// Environment variable settings
	v.SetEnvPrefix("BASKETFUL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Matching policy defaults
	v.SetDefault("matching.min_score", 50)
	v.SetDefault("matching.containment_score", 85)
	v.SetDefault("matching.category_boost", 15)
	v.SetDefault("matching.category_boost_min", 70)
	v.SetDefault("matching.max_results", 5)
	v.SetDefault("matching.max_concurrent", 4)
	v.SetDefault("matching.retrieval_timeout", "3s")
	v.SetDefault("matching.search_cache_ttl", "5m")

	// Cache defaults
	v.SetDefault("cache.type", "memory")

	// Catalog defaults
	v.SetDefault("catalog.mode", "memory")
	v.SetDefault("catalog.requests_per_sec", 50)
	v.SetDefault("catalog.burst", 10)
	v.SetDefault("catalog.timeout", "10s")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Cache.Type != "memory" && config.Cache.Type != "redis" {
		return fmt.Errorf("cache type must be 'memory' or 'redis', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "redis" && config.Cache.RedisURL == "" {
		return fmt.Errorf("redis URL is required when cache type is 'redis' (set BASKETFUL_CACHE_REDIS_URL)")
	}

	if config.Catalog.Mode != "memory" && config.Catalog.Mode != "remote" {
		return fmt.Errorf("catalog mode must be 'memory' or 'remote', got: %s", config.Catalog.Mode)
	}

	if config.Catalog.Mode == "remote" && config.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog base URL is required when catalog mode is 'remote' (set BASKETFUL_CATALOG_BASE_URL)")
	}

	if config.Matching.MinScore < 1 || config.Matching.MinScore > 100 {
		return fmt.Errorf("matching min_score must be in 1..100, got: %d", config.Matching.MinScore)
	}

	if config.Matching.ContainmentScore < 1 || config.Matching.ContainmentScore > 100 {
		return fmt.Errorf("matching containment_score must be in 1..100, got: %d", config.Matching.ContainmentScore)
	}

	if config.Matching.CategoryBoostMin < 1 || config.Matching.CategoryBoostMin > 100 {
		return fmt.Errorf("matching category_boost_min must be in 1..100, got: %d", config.Matching.CategoryBoostMin)
	}

	if config.Matching.MaxResults < 1 {
		return fmt.Errorf("matching max_results must be positive, got: %d", config.Matching.MaxResults)
	}

	return nil
}
