// Package storage defines the persistence ports of the application. Records
// are grouped by area (accounts, lodging, travel, complaints, images, jobs) so
// that services can depend on the narrow set they use, while backends such as
// PostgreSQL implement all of them.
package storage

import "context"

// AllStorage is the union of every record storage capability.
type AllStorage interface {
	AccountStorage
	LodgingStorage
	ImageStorage
	TravelStorage
	ComplaintStorage
	JobStorage
}

// TxStorage is a storage handle bound to an open transaction. It becomes
// unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is a non-transactional storage handle able to start transactions.
type Storage interface {
	AllStorage

	// Close releases the underlying connection pool.
	Close() error

	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
