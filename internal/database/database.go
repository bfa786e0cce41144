package database

import (
	"errors"
	"fmt"
	"time"

	"nomix/internal/logger"
	"nomix/internal/models"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager owns the database handle. Services receive Manager.DB() explicitly;
// there is no package-level engine.
type Manager struct {
	db     *gorm.DB
	config *Config
}

// NewManager opens the database selected by config.Driver.
func NewManager(config *Config) (*Manager, error) {
	var dialector gorm.Dialector
	switch config.Driver {
	case DriverPostgres:
		dialector = postgres.New(postgres.Config{
			DSN:                  config.DSN(),
			PreferSimpleProtocol: true,
		})
	case DriverSQLite:
		dialector = sqlite.Open(config.SQLitePath + "?_foreign_keys=on")
	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	if config.Driver == DriverSQLite {
		// SQLite allows a single writer; a larger pool only produces SQLITE_BUSY.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	return &Manager{db: db, config: config}, nil
}

// Migrate brings the schema up to date. PostgreSQL uses the SQL migrations in
// config.MigrationsPath; SQLite uses GORM auto-migration.
func (m *Manager) Migrate() error {
	if m.config.Driver == DriverSQLite {
		logger.Get().Info("Auto-migrating SQLite schema...")
		if err := m.db.AutoMigrate(models.All()...); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		return nil
	}
	return m.RunMigrations()
}

// RunMigrations applies pending SQL migrations from the migrations directory.
func (m *Manager) RunMigrations() error {
	logger.Get().Info("Running database migrations...")

	mig, err := NewMigrator(m.config)
	if err != nil {
		return err
	}
	defer CloseMigrator(mig)

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// NewMigrator creates a golang-migrate instance for the PostgreSQL database
// described by config. SQLite databases are auto-migrated instead.
func NewMigrator(config *Config) (*migrate.Migrate, error) {
	if config.Driver != DriverPostgres {
		return nil, fmt.Errorf("SQL migrations require DB_DRIVER=%s, got %q", DriverPostgres, config.Driver)
	}
	mig, err := migrate.New(config.MigrationSource(), config.MigrationURL())
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return mig, nil
}

// CloseMigrator releases the migration source and database handles.
func CloseMigrator(mig *migrate.Migrate) {
	srcErr, dbErr := mig.Close()
	if srcErr != nil {
		logger.Get().Warnf("migrate source close error: %v", srcErr)
	}
	if dbErr != nil {
		logger.Get().Warnf("migrate database close error: %v", dbErr)
	}
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close releases the connection pool.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
