package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GIN_MODE", "test")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SQLITE_PATH", "")
	t.Setenv("RESET_ON_START", "")
	t.Setenv("DB_SSLMODE", "")

	cfg := Load()

	if cfg.DBDriver != DriverSQLite {
		t.Errorf("expected default driver %q, got %q", DriverSQLite, cfg.DBDriver)
	}
	if cfg.SQLitePath != "catalog.db" {
		t.Errorf("expected default sqlite path catalog.db, got %q", cfg.SQLitePath)
	}
	if !cfg.ResetOnStart {
		t.Errorf("expected ResetOnStart to default to true")
	}
	if cfg.DBSSLMode != "disable" {
		t.Errorf("expected sslmode disable outside release, got %q", cfg.DBSSLMode)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoad_ReleaseRequiresSSL(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("DB_SSLMODE", "")

	cfg := Load()
	if cfg.DBSSLMode != "require" {
		t.Errorf("expected sslmode require in release, got %q", cfg.DBSSLMode)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GIN_MODE", "test")
	t.Setenv("RESET_ON_START", "false")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "7")
	t.Setenv("SECRET_KEY", "s3cr3t")

	cfg := Load()
	if cfg.ResetOnStart {
		t.Errorf("expected ResetOnStart=false")
	}
	if cfg.RateLimitRPS != 2.5 || cfg.RateLimitBurst != 7 {
		t.Errorf("unexpected rate limit config: %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.SecretKey != "s3cr3t" {
		t.Errorf("expected secret key from env, got %q", cfg.SecretKey)
	}
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := &Config{DBDriver: "mysql", Port: "8080"}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}

func TestDSN(t *testing.T) {
	sqlite := &Config{DBDriver: DriverSQLite, SQLitePath: "books.db"}
	if got := sqlite.DSN(); !strings.HasPrefix(got, "file:books.db?") || !strings.Contains(got, "_foreign_keys=on") {
		t.Errorf("unexpected sqlite dsn %q", got)
	}

	pg := &Config{
		DBDriver:  DriverPostgres,
		DBHost:    "db",
		DBPort:    "5432",
		DBUser:    "u",
		DBPass:    "p",
		DBName:    "catalog",
		DBSSLMode: "disable",
		TZ:        "UTC",
	}
	want := "host=db user=u password=p dbname=catalog port=5432 sslmode=disable TimeZone=UTC"
	if got := pg.DSN(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
