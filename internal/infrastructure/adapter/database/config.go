package database

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config carries the Postgres connection and pool settings. The pool is
// sized for the admin dashboard workload: short listing queries plus the
// row-locking ledger writes.
type Config struct {
	Driver          string
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	QueryTimeout    time.Duration
	LogLevel        string
	RetryAttempts   int
	RetryDelay      int
}

// DefaultConfig reads the AD_DB_* environment variables. Credentials have
// no fallback values; a missing credential is caught by Validate rather
// than silently connecting somewhere unexpected.
func DefaultConfig() *Config {
	return &Config{
		Driver:          envOr("AD_DB_DRIVER", "postgres"),
		Host:            os.Getenv("AD_DB_HOST"),
		Port:            envInt("AD_DB_PORT", 5432),
		Username:        os.Getenv("AD_DB_USERNAME"),
		Password:        os.Getenv("AD_DB_PASSWORD"),
		Database:        os.Getenv("AD_DB_NAME"),
		SSLMode:         envOr("AD_DB_SSL_MODE", "disable"),
		MaxOpenConns:    envInt("AD_DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    envInt("AD_DB_MAX_IDLE_CONNS", 25),
		ConnMaxLifetime: time.Duration(envInt("AD_DB_CONN_MAX_LIFETIME_MINUTES", 5)) * time.Minute,
		ConnMaxIdleTime: time.Duration(envInt("AD_DB_CONN_MAX_IDLE_TIME_MINUTES", 5)) * time.Minute,
		QueryTimeout:    time.Duration(envInt("AD_DB_QUERY_TIMEOUT_SECONDS", 10)) * time.Second,
		LogLevel:        envOr("AD_LOGGER_LEVEL", "info"),
		RetryAttempts:   envInt("AD_DB_RETRY_ATTEMPTS", 3),
		RetryDelay:      envInt("AD_DB_RETRY_DELAY_SECONDS", 5),
	}
}

// Validate rejects configurations that would fail at connect time or
// starve the pool.
func (c *Config) Validate() error {
	if c.Driver != "postgres" {
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}
	if c.Host == "" {
		return errors.New("database host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Port)
	}
	if c.Username == "" {
		return errors.New("database username is required")
	}
	if c.Password == "" {
		return errors.New("database password is required")
	}
	if c.Database == "" {
		return errors.New("database name is required")
	}

	switch c.SSLMode {
	case "disable", "prefer", "require", "verify-ca", "verify-full":
	default:
		return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns <= 0 {
		return fmt.Errorf("max idle connections must be positive, got: %d", c.MaxIdleConns)
	}
	if c.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry attempts must be non-negative, got: %d", c.RetryAttempts)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay must be non-negative, got: %d", c.RetryDelay)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error", "silent":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}

// DSN builds the libpq-style connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
