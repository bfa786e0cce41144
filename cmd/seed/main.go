// Command seed fills the database with synthetic market data without starting
// the API server.
//
//	seed [-window full|week] [-anchor YYYY-MM-DD]
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"nomix/internal/config"
	"nomix/internal/database"
	"nomix/internal/logger"
	"nomix/internal/marketdata"
	"nomix/internal/models"
	"nomix/internal/services"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Seed error: %v", err)
	}
}

func run() error {
	window := flag.String("window", "full", "window to seed: full (-30..+10 days) or week (0..+6 days)")
	anchorFlag := flag.String("anchor", "", "anchor day as YYYY-MM-DD (default today)")
	flag.Parse()

	anchor := time.Now()
	if *anchorFlag != "" {
		day, err := models.ParseDay(*anchorFlag)
		if err != nil {
			return fmt.Errorf("invalid -anchor: %w", err)
		}
		anchor = day
	}

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() { _ = dbManager.Close() }()

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
	seedService := services.NewSeedService(dbManager.DB(), catalog, stockWalk, indexWalk)

	var result *services.SeedResult
	switch *window {
	case "full":
		result, err = seedService.SeedFull(anchor)
	case "week":
		result, err = seedService.SeedWeek(anchor)
	default:
		return fmt.Errorf("unknown window %q (use full or week)", *window)
	}
	if err != nil {
		return err
	}

	logger.Get().Infof("Seeded %d companies, %d stock rows, %d index rows",
		result.CompaniesCreated, result.StocksCreated, result.IndexCreated)
	return nil
}
