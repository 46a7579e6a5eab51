// @title GoShop Backend API
// @version 1.0
// @description Shop backend demonstrating entity/DTO read strategies over a relational order schema - members place orders for items, and the versioned order endpoints show how each fetch strategy changes the query count

// @contact.name GoShop Support
// @contact.email support@goshop.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

// Package main is the entry point for the GoShop Backend API server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/goshop-tools/goshop_backend/internal/auth"
	"github.com/goshop-tools/goshop_backend/internal/config"
	"github.com/goshop-tools/goshop_backend/internal/database"
	"github.com/goshop-tools/goshop_backend/internal/handlers"
	"github.com/goshop-tools/goshop_backend/internal/middleware"
	"github.com/goshop-tools/goshop_backend/internal/repository"
	"github.com/goshop-tools/goshop_backend/internal/services"

	// Swagger docs
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/goshop-tools/goshop_backend/docs"
)

// Build-time variables (set via ldflags)
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
	GitBranch = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database connection
	dbCfg := database.Config{
		DSN:           cfg.DatabaseDSN,
		SQLLogLevel:   cfg.SQLLogLevel,
		SlowThreshold: 200 * time.Millisecond,
	}

	dbClient, err := database.NewClient(dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Initialize JWT service early (before defer) to avoid exitAfterDefer issue
	jwtCfg := auth.JWTConfig{
		Secret:             cfg.JWTSecret,
		AccessTokenExpiry:  cfg.AccessTokenExpiry,
		RefreshTokenExpiry: cfg.RefreshTokenExpiry,
		Issuer:             "goshop-backend",
	}

	jwtService, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		if closeErr := dbClient.Close(); closeErr != nil {
			log.Printf("Error closing database connection: %v", closeErr)
		}
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}

	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			log.Printf("Error closing database connection: %v", closeErr)
		}
	}()

	// Migrate schema
	log.Println("Migrating database schema...")
	if migrateErr := dbClient.AutoMigrate(); migrateErr != nil {
		log.Fatalf("Failed to migrate schema: %v", migrateErr)
	}

	// Seed sample data (two members with two orders each)
	if cfg.SeedData {
		log.Println("Seeding sample data...")
		if seedErr := dbClient.SeedData(); seedErr != nil {
			log.Printf("Warning: Failed to seed data: %v", seedErr)
		}
	}

	// Initialize repositories
	memberRepo := repository.NewMemberRepository(dbClient.DB())
	itemRepo := repository.NewItemRepository(dbClient.DB())
	orderRepo := repository.NewOrderRepository(dbClient.DB())
	orderQueryRepo := repository.NewOrderQueryRepository(dbClient.DB())
	categoryRepo := repository.NewCategoryRepository(dbClient.DB())

	// Initialize services
	memberService := services.NewMemberService(memberRepo)
	itemService := services.NewItemService(itemRepo)
	orderService := services.NewOrderService(orderRepo, memberRepo, itemRepo)
	authService := services.NewAuthService(memberRepo, jwtService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(dbClient, Version)
	authHandler := handlers.NewAuthHandler(authService)
	memberHandler := handlers.NewMemberHandler(memberService)
	itemHandler := handlers.NewItemHandler(itemService)
	orderHandler := handlers.NewOrderHandler(orderService, orderRepo, orderQueryRepo, cfg.BatchFetchSize, cfg.DefaultPageLimit)
	orderSimpleHandler := handlers.NewOrderSimpleHandler(orderRepo, orderQueryRepo)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo)

	// Create Gin router
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.SecureHeaders())

	// Register health routes (not under /api)
	healthHandler.RegisterRoutes(router)

	// Register Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create API group; the fetch-strategy versions live in the path
	// (/api/v3/orders etc.), so versioning happens per route, not here
	api := router.Group("/api")

	// Create auth middleware
	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Register routes
	authHandler.RegisterRoutes(api)
	memberHandler.RegisterRoutes(api, authMiddleware)
	itemHandler.RegisterRoutes(api, authMiddleware)
	orderHandler.RegisterRoutes(api)
	orderSimpleHandler.RegisterRoutes(api)
	categoryHandler.RegisterRoutes(api)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting GoShop Backend API server v%s on port %s", Version, cfg.ServerPort)
		log.Printf("Build: %s | Commit: %s | Branch: %s", BuildTime, GitCommit, GitBranch)
		log.Printf("Environment: %s", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server gracefully
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server shutdown complete")
}
