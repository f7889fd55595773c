// Package storage defines the persistence interfaces the services rely on.
// Reads never return soft-deleted rows and return a nil entity, not an error,
// when nothing matches.
//
//go:generate mockgen -package mockstorage -destination=mock/mockstorage.go journal/pkg/storage AllStorage,Storage,TxStorage
package storage

import "context"

// AllStorage is every domain-specific capability, usable both inside and
// outside of transactions.
type AllStorage interface {
	UserStorage
	FollowStorage
	EntryStorage
	ExpeditionStorage
	TierStorage
	SponsorshipStorage
	PayoutStorage
	NotificationStorage
	MembershipStorage
	MessageStorage
	WebhookStorage
	JobStorage
}

// TxStorage is a storage handle bound to a database transaction. It becomes
// unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the non-transactional handle owning the connection pool.
type Storage interface {
	AllStorage

	// Close releases the connection pool.
	Close() error
	// Ping checks the database is reachable.
	Ping(ctx context.Context) error
	// Begin starts a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
