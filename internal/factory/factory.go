package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/teamroster/internal/config"
	"github.com/mcoot/teamroster/internal/dependencies/clock"
	"github.com/mcoot/teamroster/internal/services/roster"
	"github.com/mcoot/teamroster/internal/storage"
	"github.com/mcoot/teamroster/internal/storage/memory"
	redisstorage "github.com/mcoot/teamroster/internal/storage/redis"
	"github.com/mcoot/teamroster/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = config.StorageTypeMemory
	StorageTypeRedis  = config.StorageTypeRedis
	StorageTypeSQLite = config.StorageTypeSQLite
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// Services
	RosterService *roster.Service

	closers []io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
	// RosterConfig holds roster settings (optional)
	RosterConfig roster.Config
	// Clock stamps persisted snapshots (optional, defaults to the system clock)
	Clock clock.Clock
}

// ConfigFromEnv translates server configuration into a factory Config
func ConfigFromEnv(cfg *config.Config, logger *slog.Logger) Config {
	fc := Config{
		Logger:       logger,
		StorageType:  cfg.StorageType,
		SQLitePath:   cfg.SQLitePath,
		RosterConfig: roster.Config{SnapshotKey: cfg.SnapshotKey},
	}
	if cfg.StorageType == StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		redisCfg.SnapshotTTL = cfg.RedisTTL
		fc.RedisConfig = &redisCfg
	}
	return fc
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	var closers []io.Closer
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		store = redisStore
		closers = append(closers, redisStore)
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		clk := cfg.Clock
		if clk == nil {
			clk = clock.New()
		}
		sqliteStore, err := sqlite.OpenWithClock(cfg.SQLitePath, clk)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
		closers = append(closers, sqliteStore)
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'sqlite'")
	}

	logger.Info("storage configured", slog.String("type", storageType))

	app := newWithDependencies(store, cfg.RosterConfig, logger)
	app.closers = closers
	return app, nil
}

// Close releases storage connections
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, rosterCfg roster.Config, logger *slog.Logger) *App {
	return &App{
		Storage:       store,
		RosterService: roster.New(store, rosterCfg, logger),
	}
}
