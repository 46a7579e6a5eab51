// Package config provides configuration loading from environment variables.
// #IMPLEMENTATION_DECISION: Using envconfig for type-safe environment variable parsing
package config

import (
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration loaded from environment variables.
// #INTEGRATION_POINT: All services depend on this configuration
type Config struct {
	// Database configuration
	DatabaseDSN string `envconfig:"DATABASE_DSN" default:"file:goshop.db?_foreign_keys=on"`
	SQLLogLevel string `envconfig:"SQL_LOG_LEVEL" default:"info"`
	SeedData    bool   `envconfig:"SEED_DATA" default:"true"`

	// Fetch tuning
	// BatchFetchSize bounds the key count of the IN-clause batches used by
	// the paged collection read; DefaultPageLimit applies when a paged
	// endpoint gets no explicit limit.
	BatchFetchSize   int `envconfig:"BATCH_FETCH_SIZE" default:"100"`
	DefaultPageLimit int `envconfig:"DEFAULT_PAGE_LIMIT" default:"100"`

	// JWT configuration
	JWTSecret          string        `envconfig:"JWT_SECRET" default:"dev-only-secret"`
	AccessTokenExpiry  time.Duration `envconfig:"ACCESS_TOKEN_EXPIRY" default:"1h"`
	RefreshTokenExpiry time.Duration `envconfig:"REFRESH_TOKEN_EXPIRY" default:"720h"` // 30 days

	// Server configuration
	ServerPort  string `envconfig:"SERVER_PORT" default:"8080"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// CORS configuration
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

var (
	instance *Config
	once     sync.Once
	errInit  error
)

// Load loads configuration from environment variables.
// #IMPLEMENTATION_DECISION: Singleton pattern ensures config is loaded once
func Load() (*Config, error) {
	once.Do(func() {
		instance = &Config{}
		errInit = envconfig.Process("GOSHOP", instance)
	})
	return instance, errInit
}

// GetConfig returns the loaded configuration.
// Panics if configuration has not been loaded.
func GetConfig() *Config {
	if instance == nil {
		panic("config: Load() must be called before GetConfig()")
	}
	return instance
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
