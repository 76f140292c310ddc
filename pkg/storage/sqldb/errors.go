package sqldb

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// violation classifies integrity constraint failures reported by either engine.
type violation int

const (
	violationNone violation = iota
	violationUnique
	violationForeignKey
	violationCheck
)

func classify(err error) violation {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return violationUnique
		case pgerrcode.ForeignKeyViolation:
			return violationForeignKey
		case pgerrcode.CheckViolation:
			return violationCheck
		}

		return violationNone
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return violationUnique
		case sqlite3.ErrConstraintForeignKey:
			return violationForeignKey
		case sqlite3.ErrConstraintCheck:
			return violationCheck
		}
	}

	return violationNone
}
