package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Env string

	// Server
	Port               string
	CORSAllowedOrigins []string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Seeding
	SeedAPIKey      string
	SeedCatalogPath string
	SeedCron        string
	SeedOnStart     bool
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8000"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS",
			"http://localhost:5173,http://127.0.0.1:5173")),

		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		SeedAPIKey:      getEnv("SEED_API_KEY", ""),
		SeedCatalogPath: getEnv("SEED_CATALOG_PATH", ""),
		SeedCron:        getEnv("SEED_CRON", ""),
	}

	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	seedOnStart := getEnv("SEED_ON_START", "false")
	config.SeedOnStart, err = strconv.ParseBool(seedOnStart)
	if err != nil {
		log.Printf("Warning: invalid SEED_ON_START value '%s', falling back to false\n", seedOnStart)
		config.SeedOnStart = false
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
