package repository

import "context"

// Tx is the common contract of a database transaction.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// InventoryOps are the inventory mutations available inside a
// transaction. Every collection/crafting flow credits or debits the
// ledger in the same transaction that mutates the placed entity.
type InventoryOps interface {
	// GetQuantitiesForUpdate locks and returns current quantities for
	// the given items. Items with no row are reported as zero.
	GetQuantitiesForUpdate(ctx context.Context, userID string, itemIDs []string) (map[string]int, error)

	// ApplyItemDelta adjusts one ledger row, creating it when absent.
	// The caller guarantees the result stays non-negative.
	ApplyItemDelta(ctx context.Context, userID, itemID string, delta int) error
}
