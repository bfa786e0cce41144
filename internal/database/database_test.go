package database

import (
	"os"
	"path/filepath"
	"testing"

	"nomix/internal/logger"
	"nomix/internal/models"
)

func init() {
	logger.Init("test")
}

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"DB_DRIVER", "SQLITE_PATH", "MIGRATIONS_PATH"} {
			t.Setenv(key, "")
			_ = os.Unsetenv(key)
		}
		cfg, err := NewConfig()
		if err != nil {
			t.Fatalf("NewConfig: %v", err)
		}
		if cfg.Driver != DriverSQLite || cfg.SQLitePath != "nomix.db" || cfg.MigrationsPath != "migrations" {
			t.Errorf("unexpected defaults %+v", cfg)
		}
	})

	t.Run("empty_driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "")
		if _, err := NewConfig(); err == nil {
			t.Error("expected empty DB_DRIVER to be rejected")
		}
	})

	t.Run("postgres", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "postgres")
		t.Setenv("DB_HOST", "db")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_USER", "u")
		t.Setenv("DB_PASSWORD", "p")
		t.Setenv("DB_NAME", "n")
		t.Setenv("DB_SSLMODE", "require")
		t.Setenv("MIGRATIONS_PATH", "/srv/migrations")

		cfg, err := NewConfig()
		if err != nil {
			t.Fatalf("NewConfig: %v", err)
		}
		if got, want := cfg.DSN(), "host=db port=5433 user=u password=p dbname=n sslmode=require"; got != want {
			t.Errorf("DSN = %q, want %q", got, want)
		}
		if got, want := cfg.MigrationURL(), "postgres://u:p@db:5433/n?sslmode=require"; got != want {
			t.Errorf("MigrationURL = %q, want %q", got, want)
		}
		if got, want := cfg.MigrationSource(), "file:///srv/migrations"; got != want {
			t.Errorf("MigrationSource = %q, want %q", got, want)
		}
	})

	t.Run("unknown_driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "mysql")
		if _, err := NewConfig(); err == nil {
			t.Error("expected error for unsupported driver")
		}
	})
}

func TestManagerSQLite(t *testing.T) {
	cfg := &Config{Driver: DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "nomix.db")}

	m, err := NewManager(cfg)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	defer func() { _ = m.Close() }()

	if err := m.Migrate(); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	for _, model := range models.All() {
		if !m.DB().Migrator().HasTable(model) {
			t.Errorf("expected table for %T", model)
		}
	}

	// Migrate is repeatable.
	if err := m.Migrate(); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
}

func TestNewMigratorRequiresPostgres(t *testing.T) {
	if _, err := NewMigrator(&Config{Driver: DriverSQLite}); err == nil {
		t.Error("expected error for sqlite migrator")
	}
}

func TestNewManagerUnknownDriver(t *testing.T) {
	if _, err := NewManager(&Config{Driver: "oracle"}); err == nil {
		t.Error("expected error for unknown driver")
	}
}
