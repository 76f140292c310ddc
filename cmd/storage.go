package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"uptime/internal/config"
	"uptime/pkg/logger"
	"uptime/pkg/storage/sqldb"
)

const (
	driverPostgres = "postgres"
	driverSQLite   = "sqlite"
)

// newStorage opens the storage engine selected by the configured driver.
func newStorage(ctx context.Context, cfg *config.Config) (*sqldb.SQLDB, error) {
	switch cfg.Database.Driver {
	case driverPostgres:
		db, err := sqldb.NewPostgres(ctx, sqldb.PostgresOptions{
			Username:           cfg.Database.Username,
			Password:           cfg.Database.Password,
			Host:               cfg.Database.Host,
			Port:               cfg.Database.Port,
			Database:           cfg.Database.DatabaseName,
			ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
			ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
			MaxOpenConnections: cfg.Database.MaxOpenConnections,
			MaxIdleConnections: cfg.Database.MaxIdleConnections,
			SslMode:            cfg.Database.SslMode,
		})
		if err != nil {
			return nil, fmt.Errorf("could not create postgres storage: %w", err)
		}

		return db, nil
	case driverSQLite:
		db, err := sqldb.NewSQLite(ctx, sqldb.SQLiteOptions{Path: cfg.Database.SQLitePath})
		if err != nil {
			return nil, fmt.Errorf("could not create sqlite storage: %w", err)
		}

		return db, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}

// getStorage opens the configured storage and returns it along with a cleanup
// function that closes it.
func getStorage(ctx context.Context, cfg *config.Config) (*sqldb.SQLDB, func(), error) {
	db, err := newStorage(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	return db, func() {
		logger.Info(ctx, "closing storage...", zap.String("driver", cfg.Database.Driver))
		if err := db.Close(); err != nil {
			logger.Warn(ctx, "could not close storage", zap.Error(err))
		}
	}, nil
}
