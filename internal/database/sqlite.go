// Package database provides the GORM/SQLite connection and schema utilities.
// #SCHEMA_IMPLEMENTATION: SQLite with foreign keys enabled; the schema is
// auto-migrated from the models package on startup.
package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/goshop-tools/goshop_backend/internal/models"
)

// Config holds database connection configuration
type Config struct {
	// DSN is the SQLite data source name, e.g.
	// "file:goshop.db?_foreign_keys=on" or "file::memory:?_foreign_keys=on".
	DSN string

	// SQLLogLevel controls statement logging: silent, error, warn or info.
	// info echoes every statement - the surface on which the versioned order
	// endpoints demonstrate their query counts.
	SQLLogLevel string

	// SlowThreshold marks statements slower than this in the log
	SlowThreshold time.Duration
}

// DefaultConfig returns default database configuration
func DefaultConfig() Config {
	return Config{
		DSN:           "file:goshop.db?_foreign_keys=on",
		SQLLogLevel:   "warn",
		SlowThreshold: 200 * time.Millisecond,
	}
}

// Client wraps the GORM handle with helper methods
type Client struct {
	db      *gorm.DB
	counter *QueryCounter
	config  Config
}

// NewClient opens the database and installs the counting statement logger
func NewClient(cfg Config) (*Client, error) {
	if cfg.SlowThreshold == 0 {
		cfg.SlowThreshold = 200 * time.Millisecond
	}

	base := logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold: cfg.SlowThreshold,
		LogLevel:      parseLogLevel(cfg.SQLLogLevel),
		Colorful:      true,
	})
	counter := NewQueryCounter(base)

	db, err := gorm.Open(sqlite.Open(cfg.DSN), &gorm.Config{
		Logger: counter,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Client{db: db, counter: counter, config: cfg}, nil
}

// DB returns the underlying GORM handle
func (c *Client) DB() *gorm.DB {
	return c.db
}

// Counter returns the statement counter installed on this connection
func (c *Client) Counter() *QueryCounter {
	return c.counter
}

// AutoMigrate creates or updates the shop schema
func (c *Client) AutoMigrate() error {
	return c.db.AutoMigrate(
		&models.Member{},
		&models.Item{},
		&models.Category{},
		&models.Delivery{},
		&models.Order{},
		&models.OrderItem{},
	)
}

// Ping verifies the database connection
func (c *Client) Ping(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the underlying connection pool
func (c *Client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// parseLogLevel maps the config string to a GORM log level
func parseLogLevel(s string) logger.LogLevel {
	switch s {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
