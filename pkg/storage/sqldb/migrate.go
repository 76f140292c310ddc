package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"uptime"
	"uptime/pkg/storage"
)

// Migrate applies every pending migration of the handle's dialect and returns
// the migrations that ran.
func (s *SQLDB) Migrate(ctx context.Context) ([]*goose.MigrationResult, error) {
	provider, err := s.migrationProvider()
	if err != nil {
		return nil, err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return results, fmt.Errorf("could not apply migrations: %w", err)
	}

	return results, nil
}

// MigrateDown rolls back the most recently applied migration.
func (s *SQLDB) MigrateDown(ctx context.Context) (*goose.MigrationResult, error) {
	provider, err := s.migrationProvider()
	if err != nil {
		return nil, err
	}

	result, err := provider.Down(ctx)
	if err != nil {
		return result, fmt.Errorf("could not roll back migration: %w", err)
	}

	return result, nil
}

func (s *SQLDB) migrationProvider() (*goose.Provider, error) {
	db, ok := s.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	var (
		dialect goose.Dialect
		dir     string
	)
	switch s.dialect {
	case DialectPostgres:
		dialect, dir = goose.DialectPostgres, "migrations/postgres"
	case DialectSQLite:
		dialect, dir = goose.DialectSQLite3, "migrations/sqlite"
	default:
		return nil, fmt.Errorf("unsupported dialect %q", s.dialect)
	}

	migrations, err := fs.Sub(uptime.Migrations, dir)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, db, migrations)
	if err != nil {
		return nil, fmt.Errorf("could not create migration provider: %w", err)
	}

	return provider, nil
}
