package main

import (
	"context"
	"time"

	"github.com/Hardik699/hanuram-sale-new/internal/application/service"
	"github.com/Hardik699/hanuram-sale-new/internal/config"
	"github.com/Hardik699/hanuram-sale-new/internal/infrastructure/cache"
	"github.com/Hardik699/hanuram-sale-new/internal/infrastructure/database"
	"github.com/Hardik699/hanuram-sale-new/internal/infrastructure/repository"
	"github.com/Hardik699/hanuram-sale-new/internal/presentation/http/handler"
	"github.com/Hardik699/hanuram-sale-new/internal/presentation/http/routes"
	"github.com/Hardik699/hanuram-sale-new/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Initialize repositories
	itemRepo := repository.NewItemRepository(db)
	batchRepo := repository.NewRowBatchRepository(db)

	// Sales cache is optional; without Redis every query recomputes
	var salesCache cache.SalesCache = cache.NoopSalesCache{}
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisSalesCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unreachable, sales cache disabled")
		} else {
			salesCache = redisCache
			log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.SalesCacheTTL).Msg("sales cache enabled")
		}
		cancel()
	}

	// Initialize services
	salesService := service.NewSalesService(itemRepo, batchRepo, salesCache, cfg.Redis.SalesCacheTTL, log)
	batchService := service.NewRowBatchService(batchRepo, log)
	sapService := service.NewSAPService(itemRepo, batchRepo, log)

	// Initialize handlers
	handlers := &routes.Handlers{
		Sales:  handler.NewSalesHandler(salesService),
		Upload: handler.NewUploadHandler(batchService),
		SAP:    handler.NewSAPHandler(sapService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg: cfg,
		Log: log,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Info().Str("service", cfg.App.Name).Str("port", port).Str("env", cfg.App.Env).Msg("starting server")

	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
