package database

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Supported values for DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds database configuration
type Config struct {
	Driver         string
	Host           string
	Port           string
	User           string
	Password       string
	DBName         string
	SSLMode        string
	SQLitePath     string
	MigrationsPath string
}

// NewConfig creates a new database configuration
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist, we'll use defaults or environment variables
		fmt.Println("Warning: .env file not found")
	}

	cfg := &Config{
		Driver:         getEnv("DB_DRIVER", DriverSQLite),
		Host:           getEnv("DB_HOST", "localhost"),
		Port:           getEnv("DB_PORT", "5432"),
		User:           getEnv("DB_USER", "nomix"),
		Password:       getEnv("DB_PASSWORD", "nomix"),
		DBName:         getEnv("DB_NAME", "nomix_trade_db"),
		SSLMode:        getEnv("DB_SSLMODE", "disable"),
		SQLitePath:     getEnv("SQLITE_PATH", "nomix.db"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
	}

	if cfg.Driver != DriverPostgres && cfg.Driver != DriverSQLite {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (use %s or %s)", cfg.Driver, DriverPostgres, DriverSQLite)
	}
	return cfg, nil
}

// DSN returns the PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// MigrationURL returns the postgres:// URL used by golang-migrate.
func (c *Config) MigrationURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// MigrationSource returns the file:// source URL for the migrations directory.
func (c *Config) MigrationSource() string {
	return "file://" + c.MigrationsPath
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
