package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const defaultBusyTimeout = 5 * time.Second

// SQLiteOptions defines the configuration parameters for an SQLite database.
type SQLiteOptions struct {
	// Path is the database file. An empty path or ":memory:" opens a private
	// in-memory database that lives as long as the returned SQLDB.
	Path string
	// BusyTimeout is how long a statement waits for a lock held by another
	// process. Defaults to 5s.
	BusyTimeout time.Duration
}

func (o SQLiteOptions) dsn() string {
	busy := o.BusyTimeout
	if busy <= 0 {
		busy = defaultBusyTimeout
	}

	params := url.Values{}
	params.Set("_foreign_keys", "on")
	params.Set("_busy_timeout", fmt.Sprint(busy.Milliseconds()))

	name := o.Path
	if name == "" || name == ":memory:" {
		// a uniquely named shared-cache database survives connection recycling
		// within the pool but is invisible to other SQLDB instances
		name = uuid.NewString()
		params.Set("mode", "memory")
		params.Set("cache", "shared")
	}

	return "file:" + name + "?" + params.Encode()
}

// NewSQLite opens an SQLite storage. SQLite allows a single writer, so the pool
// is capped at one connection and concurrent callers queue on it.
func NewSQLite(ctx context.Context, options SQLiteOptions) (*SQLDB, error) {
	db, err := sql.Open("sqlite3", options.dsn())
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("could not connect to sqlite db: %w", err)
	}

	return &SQLDB{
		DB:      db,
		Builder: goqu.Dialect(string(DialectSQLite)).DB(db),
		dialect: DialectSQLite,
	}, nil
}
