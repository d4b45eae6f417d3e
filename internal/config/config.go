package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Ingest   IngestConfig
	Audit    AuditConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// IngestConfig bounds what a single upload may contain.
type IngestConfig struct {
	MaxUploadBytes int64
	MaxRows        int
}

// AuditConfig controls the background cache verification sweep.
type AuditConfig struct {
	Interval time.Duration
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Ingestion limits
	maxUploadBytes, err := strconv.ParseInt(getEnv("INGEST_MAX_UPLOAD_BYTES", "10485760"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid INGEST_MAX_UPLOAD_BYTES: %w", err)
	}

	maxRows, err := strconv.Atoi(getEnv("INGEST_MAX_ROWS", "50000"))
	if err != nil {
		return nil, fmt.Errorf("invalid INGEST_MAX_ROWS: %w", err)
	}

	config.Ingest = IngestConfig{
		MaxUploadBytes: maxUploadBytes,
		MaxRows:        maxRows,
	}

	// Cache audit sweep
	auditInterval, err := time.ParseDuration(getEnv("AUDIT_INTERVAL", "6h"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUDIT_INTERVAL: %w", err)
	}

	config.Audit = AuditConfig{Interval: auditInterval}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Ingest.MaxUploadBytes <= 0 {
		return fmt.Errorf("INGEST_MAX_UPLOAD_BYTES must be positive")
	}
	if c.Ingest.MaxRows <= 0 {
		return fmt.Errorf("INGEST_MAX_ROWS must be positive")
	}
	if c.Audit.Interval <= 0 {
		return fmt.Errorf("AUDIT_INTERVAL must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
