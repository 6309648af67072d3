// Package config loads server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// Config holds server settings read from ROSTER_* variables
type Config struct {
	Host     string `env:"ROSTER_HOST"`
	Port     int    `env:"ROSTER_PORT"      envDefault:"8080"`
	LogLevel string `env:"ROSTER_LOG_LEVEL" envDefault:"info"`

	StorageType string        `env:"ROSTER_STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string        `env:"ROSTER_REDIS_URL"`
	RedisTTL    time.Duration `env:"ROSTER_REDIS_TTL"    envDefault:"0s"`
	SQLitePath  string        `env:"ROSTER_SQLITE_PATH"  envDefault:"data/roster.db"`
	SnapshotKey string        `env:"ROSTER_SNAPSHOT_KEY" envDefault:"players"`

	ReadTimeout     time.Duration `env:"ROSTER_READ_TIMEOUT"     envDefault:"15s"`
	WriteTimeout    time.Duration `env:"ROSTER_WRITE_TIMEOUT"    envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"ROSTER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads an optional .env file from envFiles (defaults to ".env"),
// then parses and validates the environment.
// Variables already set in the process take precedence over the file.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// A missing file is fine; only the environment is mandatory
		_ = godotenv.Load(f)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the selected storage backend is fully configured
func (c *Config) Validate() error {
	c.StorageType = strings.ToLower(strings.TrimSpace(c.StorageType))

	switch c.StorageType {
	case StorageTypeMemory:
	case StorageTypeRedis:
		if c.RedisURL == "" {
			return errors.New("ROSTER_REDIS_URL required when ROSTER_STORAGE_TYPE=redis")
		}
	case StorageTypeSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return errors.New("ROSTER_SQLITE_PATH required when ROSTER_STORAGE_TYPE=sqlite")
		}
	default:
		return fmt.Errorf("invalid ROSTER_STORAGE_TYPE %q: must be memory, redis or sqlite", c.StorageType)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid ROSTER_PORT %d", c.Port)
	}
	if strings.TrimSpace(c.SnapshotKey) == "" {
		return errors.New("ROSTER_SNAPSHOT_KEY must not be empty")
	}
	return nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
