package storage

import "errors"

var (
	// ErrAlreadyInTx is returned by Begin when the handle is already transactional.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit or Rollback outside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrUnknownImageKind is returned for records whose image kind has no table.
	ErrUnknownImageKind = errors.New("unknown image kind")
	// ErrRecordNotFound is returned by updates addressing a missing record.
	ErrRecordNotFound = errors.New("record not found")
	// ErrUnavailable marks failures caused by a lost or refused database connection.
	ErrUnavailable = errors.New("storage unavailable")
)
