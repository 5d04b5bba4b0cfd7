package database

import (
	"fmt"

	"github.com/pageza/mixmaster/backend/config"
	"github.com/pageza/mixmaster/backend/internal/logger"
	"github.com/pageza/mixmaster/backend/internal/store"
	"gorm.io/gorm"
)

// OpenBackend returns the store backend for the configured driver and a
// function that releases its connections.
func OpenBackend(cfg *config.Config, log *logger.Logger) (store.Backend, func() error, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return store.NewMemoryBackend(), func() error { return nil }, nil

	case config.DriverSQLite, config.DriverPostgres:
		db, err := Open(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return sqlBackend(db, log)

	case config.DriverRedis:
		client, err := NewRedisClient(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return store.NewRedisBackend(client, cfg.RedisPrefix), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// sqlBackend migrates db and wraps it as a store backend. The connection is
// closed when migration fails.
func sqlBackend(db *gorm.DB, log *logger.Logger) (store.Backend, func() error, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if err := RunMigrations(db, log); err != nil {
		_ = sqlDB.Close()
		return nil, nil, err
	}
	return store.NewGormBackend(db), sqlDB.Close, nil
}
