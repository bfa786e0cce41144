package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"nomix/internal/config"
	"nomix/internal/database"
	"nomix/internal/logger"
	"nomix/internal/marketdata"
	"nomix/internal/middleware"
	"nomix/internal/scheduler"
	"nomix/internal/server"
	"nomix/internal/services"
	"nomix/internal/validator"
)

// @title           Nomix Trade API
// @version         1.0
// @description     Synthetic stock market data, forecasts, and watchlists for the Nomix Trade dashboard.

// @host      localhost:8000
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey SeedKey
// @in header
// @name X-API-Key

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	catalog, err := marketdata.LoadCatalog(appConfig.SeedCatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load seed catalog: %w", err)
	}
	stockWalk, err := marketdata.NewRandomWalk(marketdata.StockBounds, nil)
	if err != nil {
		return err
	}
	indexWalk, err := marketdata.NewRandomWalk(marketdata.IndexBounds, nil)
	if err != nil {
		return err
	}

	// Initialize services
	db := dbManager.DB()
	seedService := services.NewSeedService(db, catalog, stockWalk, indexWalk)

	validator.Register()
	handler := server.NewHandler(server.Deps{
		Users:              services.NewUserService(db),
		Market:             services.NewMarketService(db),
		Favorites:          services.NewFavoriteService(db),
		Seeder:             seedService,
		Tokens:             middleware.NewTokenManager(appConfig.JWTSecret, appConfig.JWTExpirationDur),
		SeedAPIKey:         appConfig.SeedAPIKey,
		CORSAllowedOrigins: appConfig.CORSAllowedOrigins,
	})

	if appConfig.SeedOnStart {
		result, err := seedService.SeedFull(time.Now())
		if err != nil {
			return fmt.Errorf("initial seed failed: %w", err)
		}
		log.Infow("initial seed finished",
			"companies_created", result.CompaniesCreated,
			"stocks_created", result.StocksCreated,
			"index_created", result.IndexCreated,
		)
	}

	if appConfig.SeedCron != "" {
		sched, err := scheduler.New(seedService, appConfig.SeedCron)
		if err != nil {
			return err
		}
		sched.Start()
		defer sched.Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Infof("Starting Nomix Trade API on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return server.New(":"+appConfig.Port, handler).Run(ctx)
}
