// Package sqldb implements storage.Storage on top of database/sql and goqu.
// PostgreSQL (through pgx) and SQLite (through mattn/go-sqlite3) share every
// query; dialect differences are confined to connection setup, inserts and
// constraint error classification.
package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgxpool"

	"uptime/pkg/storage"
)

// Dialect names a supported SQL engine. Values double as goqu dialect names.
type Dialect string

const (
	// DialectPostgres selects PostgreSQL.
	DialectPostgres Dialect = "postgres"
	// DialectSQLite selects SQLite.
	DialectSQLite Dialect = "sqlite3"
)

// DB defines the subset of database/sql methods used by this package. Both
// *sql.DB and *sql.Tx satisfy this interface, allowing the same code paths to be
// used within and outside transactions.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Builder abstracts the minimal subset of goqu methods used by this package to
// construct queries. Both a goqu database handle and a transaction handle
// implement this interface.
type Builder interface {
	From(table ...any) *goqu.SelectDataset
	Insert(table any) *goqu.InsertDataset
}

// SQLDB implements storage.Storage for every supported Dialect.
type SQLDB struct {
	// DB is the underlying executor. It is either a *sql.DB (when not in a
	// transaction) or a *sql.Tx (when inside a transaction).
	DB DB
	// Builder is the goqu handle used to construct SQL queries bound to DB.
	Builder Builder
	// Pool is the pgx connection pool backing DB. It is nil for SQLite and for
	// transactional handles.
	Pool *pgxpool.Pool

	dialect Dialect
}

var (
	_ storage.Storage   = (*SQLDB)(nil)
	_ storage.TxStorage = (*SQLDB)(nil)
)

// Dialect returns the SQL engine this handle talks to.
func (s *SQLDB) Dialect() Dialect {
	return s.dialect
}

// Close releases the connection pool.
func (s *SQLDB) Close() error {
	if s.Pool != nil {
		s.Pool.Close()
	}
	if db, ok := s.DB.(*sql.DB); ok {
		if err := db.Close(); err != nil {
			return fmt.Errorf("could not close db: %w", err)
		}
	}

	return nil
}

// Commit commits the current transaction. It returns storage.ErrNotInTx if
// called when SQLDB is not in a transactional context.
func (s *SQLDB) Commit() error {
	tx, ok := s.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// Rollback aborts the current transaction. It returns storage.ErrNotInTx if
// called when SQLDB is not in a transactional context.
func (s *SQLDB) Rollback() error {
	tx, ok := s.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin starts a new database transaction and returns a transactional SQLDB
// that can be used to execute subsequent operations within that transaction.
// If called while already inside a transaction, ErrAlreadyInTx is returned.
func (s *SQLDB) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := s.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &SQLDB{
		DB:      tx,
		Builder: goqu.NewTx(string(s.dialect), tx),
		dialect: s.dialect,
	}, nil
}

// WithTx starts a transaction, executes the provided callback with a
// transactional storage handle, and commits if the callback returns nil.
// If the callback returns an error, the transaction is rolled back.
func (s *SQLDB) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := s.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}
