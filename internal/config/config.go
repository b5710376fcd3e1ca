// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Cloudinary credentials and catalog layout
	CloudName  string
	APIKey     string
	APISecret  string
	RootFolder string

	// PostgreSQL connection, optional. When DBHost is empty the service
	// runs with in-memory stores only.
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// DemoUserID is the anonymous/demo session identifier. Orders placed
	// without a user attach to it, and listing orders for it returns the
	// whole ledger.
	DemoUserID string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. A .env file in the working directory
// is loaded first if present. Returns an error if critical values are
// missing in production mode.
func Load() (*Config, error) {
	// Best-effort: a missing .env file is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "5000"),
		Env:  envOrDefault("APP_ENV", "development"),

		CloudName:  os.Getenv("CLOUDINARY_CLOUD_NAME"),
		APIKey:     os.Getenv("CLOUDINARY_API_KEY"),
		APISecret:  os.Getenv("CLOUDINARY_API_SECRET"),
		RootFolder: envOrDefault("CATALOG_ROOT_FOLDER", "Radha"),

		DBHost:     os.Getenv("POSTGRES_HOST"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "radhakart"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "radhakart"),

		DemoUserID: envOrDefault("DEMO_USER_ID", "demo-user"),
	}

	if cfg.Env == "production" {
		if cfg.APISecret == "" {
			return nil, fmt.Errorf("CLOUDINARY_API_SECRET must be set in production")
		}
		if cfg.HasDatabase() && cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// HasDatabase reports whether PostgreSQL persistence is configured.
// Without it, accounts and orders live in process memory only.
func (c *Config) HasDatabase() bool {
	return c.DBHost != ""
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
