package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
	"github.com/agroklass/SmartFarm_Go/internal/repository"
)

// InventoryRepository implements the inventory repository for PostgreSQL
type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) repository.Inventory {
	return &InventoryRepository{db: db}
}

// GetInventory returns every ledger entry for the user
func (r *InventoryRepository) GetInventory(ctx context.Context, userID string) (*domain.Inventory, error) {
	query := `
		SELECT item_id, quantity
		FROM user_inventory
		WHERE user_id = $1
		ORDER BY item_id
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}
	defer rows.Close()

	inv := &domain.Inventory{UserID: userID}
	for rows.Next() {
		entry := domain.InventoryEntry{UserID: userID}
		if err := rows.Scan(&entry.ItemID, &entry.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan inventory entry: %w", err)
		}
		inv.Entries = append(inv.Entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}

	return inv, nil
}

// BeginTx starts an inventory transaction
func (r *InventoryRepository) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, beginTxErr(err)
	}
	return &inventoryTx{tx: tx, invOps: invOps{q: tx}}, nil
}

type inventoryTx struct {
	tx pgx.Tx
	invOps
}

func (t *inventoryTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *inventoryTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// invOps implements repository.InventoryOps on top of one transaction.
// Farm and inventory transactions embed it so collection flows share
// the exact same ledger SQL.
type invOps struct {
	q rowQuerier
}

// GetQuantitiesForUpdate locks the ledger rows for the given items and
// returns current quantities. Items with no row are reported as zero.
func (o invOps) GetQuantitiesForUpdate(ctx context.Context, userID string, itemIDs []string) (map[string]int, error) {
	quantities := make(map[string]int, len(itemIDs))
	for _, itemID := range itemIDs {
		quantities[itemID] = 0
	}

	query := `
		SELECT item_id, quantity
		FROM user_inventory
		WHERE user_id = $1 AND item_id = ANY($2)
		FOR UPDATE
	`
	rows, err := o.q.Query(ctx, query, userID, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockQuantities, err)
	}
	defer rows.Close()

	for rows.Next() {
		var itemID string
		var quantity int
		if err := rows.Scan(&itemID, &quantity); err != nil {
			return nil, fmt.Errorf("failed to scan quantity row: %w", err)
		}
		quantities[itemID] = quantity
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockQuantities, err)
	}

	return quantities, nil
}

// ApplyItemDelta adjusts one ledger row, creating it when absent. The
// CHECK (quantity >= 0) constraint backstops caller arithmetic.
func (o invOps) ApplyItemDelta(ctx context.Context, userID, itemID string, delta int) error {
	query := `
		INSERT INTO user_inventory (user_id, item_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, item_id)
		DO UPDATE SET quantity = user_inventory.quantity + $3
	`
	if _, err := o.q.Exec(ctx, query, userID, itemID, delta); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToApplyItemDelta, err)
	}
	return nil
}
