// Package database provides database connection management for PostgreSQL.
package database

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/festy23/league_admission/internal/database/config"
	"github.com/festy23/league_admission/internal/database/pool"
	"github.com/festy23/league_admission/pkg/retry"
)

// connectTimeout bounds the whole retrying connect sequence.
const connectTimeout = 2 * time.Minute

// New creates a new database connection using environment variables.
func New(logger *zap.SugaredLogger) (*gorm.DB, error) {
	return NewWithConfig(
		config.LoadConfigFromEnv(),
		config.LoadRetryConfigFromEnv(),
		config.LoadPoolConfigFromEnv(),
		logger,
	)
}

// NewWithConfig opens a PostgreSQL connection, retrying transient failures,
// and applies the pool configuration.
func NewWithConfig(cfg config.Config, retryCfg retry.Config, poolCfg pool.Config, logger *zap.SugaredLogger) (*gorm.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	dsn := config.BuildDSN(cfg)
	gormCfg := &gorm.Config{Logger: NewGormLogger(logger, 200*time.Millisecond)}

	db, err := retry.DoWithResult(ctx, retryCfg, func() (*gorm.DB, error) {
		db, err := gorm.Open(postgres.Open(dsn), gormCfg)
		if err != nil {
			logger.Warnw("database connection attempt failed", "host", cfg.Host, "error", config.SanitizeError(err, cfg))
			return nil, err
		}
		return db, nil
	})
	if err != nil {
		return nil, config.SanitizeError(err, cfg)
	}

	if err := pool.SetupConnectionPool(db, poolCfg); err != nil {
		return nil, fmt.Errorf("failed to setup connection pool: %w", err)
	}

	return db, nil
}

// HealthCheck verifies database connection availability.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close gracefully closes database connection.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
