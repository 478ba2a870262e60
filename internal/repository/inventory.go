package repository

import (
	"context"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
)

// Inventory handles the per-user item ledger.
type Inventory interface {
	// GetInventory returns every ledger entry for the user, possibly empty.
	GetInventory(ctx context.Context, userID string) (*domain.Inventory, error)

	BeginTx(ctx context.Context) (InventoryTx, error)
}

// InventoryTx is a ledger transaction.
type InventoryTx interface {
	Tx
	InventoryOps
}
