package main

// @title Business Locator API
// @version 1.0.0
// @description Location-based service backend. Businesses with WGS84 point locations are stored in PostGIS, classified by category, optionally assigned to polygonal service areas, and queried spatially: proximity search, k-nearest-neighbor search and polygon containment search.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/business-locator/docs"
	"github.com/business-locator/internal/config"
	httpDelivery "github.com/business-locator/internal/delivery/http"
	"github.com/business-locator/internal/delivery/http/handler"
	"github.com/business-locator/internal/pkg/logger"
	"github.com/business-locator/internal/repository/cache"
	"github.com/business-locator/internal/repository/postgres"
	"github.com/business-locator/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Business Locator")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL/PostGIS
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	businessRepo := postgres.NewBusinessRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	areaRepo := postgres.NewAreaRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	businessUC := usecase.NewBusinessUseCase(businessRepo, log)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, log)
	areaUC := usecase.NewAreaUseCase(areaRepo, cacheRepo, log)
	spatialUC := usecase.NewSpatialUseCase(
		businessRepo,
		areaRepo,
		cacheRepo,
		log,
		cfg.Cache.AreaCacheTTL,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	businessHandler := handler.NewBusinessHandler(businessUC, log)
	spatialHandler := handler.NewSpatialHandler(spatialUC, log)
	categoryHandler := handler.NewCategoryHandler(categoryUC, log)
	areaHandler := handler.NewAreaHandler(areaUC, log)

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		businessHandler,
		spatialHandler,
		categoryHandler,
		areaHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
