package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	GinMode  string
	Port     string
	TZ       string
	LogLevel string

	DBDriver   string
	SQLitePath string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPass     string
	DBName     string
	DBSSLMode  string

	// SecretKey signs the session cookie carrying flash messages.
	SecretKey    string
	ResetOnStart bool

	RateLimitRPS   float64
	RateLimitBurst int
}

func findRepoRoot() (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}

	for {
		candidate := filepath.Join(dir, ".env.dev")
		if _, err := os.Stat(candidate); err == nil {
			return dir, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func Load() *Config {
	env := getenv("GIN_MODE", "debug")

	if env == "debug" {
		filename := ".env.dev"
		if root, ok := findRepoRoot(); ok {
			envPath := filepath.Join(root, filename)
			if err := godotenv.Load(envPath); err != nil {
				log.Printf("warning: could not load %s: %v", envPath, err)
			} else {
				log.Printf("loaded %s from %s", filename, envPath)
			}
		}
	}

	cfg := &Config{
		GinMode:  getenv("GIN_MODE", "debug"),
		Port:     getenv("PORT", "8080"),
		TZ:       getenv("TZ", "UTC"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		DBDriver:   getenv("DB_DRIVER", DriverSQLite),
		SQLitePath: getenv("SQLITE_PATH", "catalog.db"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPass:     getenv("DB_PASS", ""),
		DBName:     getenv("DB_NAME", "postgres"),
		DBSSLMode:  os.Getenv("DB_SSLMODE"),

		SecretKey:    os.Getenv("SECRET_KEY"),
		ResetOnStart: getbool("RESET_ON_START", true),

		RateLimitRPS:   getfloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst: getint("RATE_LIMIT_BURST", 40),
	}

	if cfg.DBSSLMode == "" {
		if cfg.GinMode == "release" {
			cfg.DBSSLMode = "require"
		} else {
			cfg.DBSSLMode = "disable"
		}
	}

	return cfg
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH must not be empty")
		}
	case DriverPostgres:
		if c.DBHost == "" || c.DBName == "" {
			return fmt.Errorf("DB_HOST and DB_NAME are required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want %q or %q)", c.DBDriver, DriverSQLite, DriverPostgres)
	}

	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	return nil
}

func (c *Config) DSN() string {
	if c.DBDriver == DriverSQLite {
		return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", c.SQLitePath)
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost,
		c.DBUser,
		c.DBPass,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
		c.TZ,
	)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func getint(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func getfloat(key string, def float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return def
}
