package storage

import "errors"

var (
	// ErrAlreadyInTx is returned by Begin, and by migrations, when the handle is
	// already bound to a transaction. Nested transactions are not supported.
	ErrAlreadyInTx = errors.New("storage handle is already in a transaction")
	// ErrNotInTx is returned by Commit and Rollback on a handle that was not
	// obtained from Begin.
	ErrNotInTx = errors.New("storage handle is not in a transaction")
)
