// Package main provides a CLI tool to migrate the shop schema and load the
// sample data set (two members, four book items, four orders).
// Usage: go run cmd/seed-shop/main.go [-dsn "file:goshop.db?_foreign_keys=on"]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/goshop-tools/goshop_backend/internal/config"
	"github.com/goshop-tools/goshop_backend/internal/database"
)

func main() {
	// Define command line flags
	dsn := flag.String("dsn", "", "SQLite DSN (defaults to GOSHOP_DATABASE_DSN)")
	envFile := flag.String("env", "", "Path to .env file (defaults to .env in current dir)")
	migrateOnly := flag.Bool("migrate-only", false, "Migrate the schema without inserting sample data")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Migrates the shop schema and inserts the sample data set.\n\n")
		fmt.Fprintf(os.Stderr, "Configuration is loaded from .env file and/or environment variables.\n")
		fmt.Fprintf(os.Stderr, "Environment variables take precedence over .env file values.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -dsn \"file:shop.db?_foreign_keys=on\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -migrate-only\n", os.Args[0])
	}

	flag.Parse()

	// Load .env file
	loadEnvFile(*envFile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *dsn == "" {
		*dsn = cfg.DatabaseDSN
	}

	dbClient, err := database.NewClient(database.Config{
		DSN:         *dsn,
		SQLLogLevel: cfg.SQLLogLevel,
	})
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			log.Printf("Error closing database: %v", closeErr)
		}
	}()

	fmt.Printf("Migrating schema in %s\n", *dsn)
	if err := dbClient.AutoMigrate(); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
	fmt.Println("✓ Schema migrated")

	if *migrateOnly {
		return
	}

	if err := dbClient.SeedData(); err != nil {
		log.Fatalf("Failed to seed data: %v", err)
	}
	fmt.Println("✓ Sample data loaded (skipped if members already exist)")
}

// loadEnvFile loads environment variables from a .env file
func loadEnvFile(path string) {
	if path == "" {
		cwd, _ := os.Getwd()
		if _, err := os.Stat(filepath.Join(cwd, ".env")); err == nil {
			path = ".env"
		}
	}

	if path != "" {
		if err := godotenv.Load(path); err != nil {
			log.Printf("Error loading .env file: %v", err)
		}
	}
}
