package inventory

import (
	"context"
	"fmt"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
	"github.com/agroklass/SmartFarm_Go/internal/logger"
	"github.com/agroklass/SmartFarm_Go/internal/repository"
)

// Service defines the inventory ledger business logic
type Service interface {
	// Get returns the user's full ledger, possibly empty.
	Get(ctx context.Context, userID string) (*domain.Inventory, error)

	// Credit adds amount (> 0) of an item, creating the entry on first
	// credit.
	Credit(ctx context.Context, userID, itemID string, amount int) error

	// Debit removes amount (> 0) of an item. Fails with
	// domain.ErrInsufficientQuantity when the held quantity is short;
	// it never clamps to zero.
	Debit(ctx context.Context, userID, itemID string, amount int) error
}

type service struct {
	inventoryRepo repository.Inventory
}

// NewService creates a new inventory service
func NewService(inventoryRepo repository.Inventory) Service {
	return &service{inventoryRepo: inventoryRepo}
}

func (s *service) Get(ctx context.Context, userID string) (*domain.Inventory, error) {
	inv, err := s.inventoryRepo.GetInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	return inv, nil
}

func (s *service) Credit(ctx context.Context, userID, itemID string, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: credit amount must be positive", domain.ErrInvalidInput)
	}

	tx, err := s.inventoryRepo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := Credit(ctx, tx, userID, itemID, amount); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *service) Debit(ctx context.Context, userID, itemID string, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: debit amount must be positive", domain.ErrInvalidInput)
	}
	log := logger.FromContext(ctx)

	tx, err := s.inventoryRepo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := Debit(ctx, tx, userID, itemID, amount); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Debug("Inventory debited", "userID", userID, "itemID", itemID, "amount", amount)
	return nil
}

// Credit applies a positive delta inside an existing transaction.
// Farm collection flows call this so the entity mutation and the
// ledger credit commit together.
func Credit(ctx context.Context, ops repository.InventoryOps, userID, itemID string, amount int) error {
	if err := ops.ApplyItemDelta(ctx, userID, itemID, amount); err != nil {
		return fmt.Errorf("failed to credit item: %w", err)
	}
	return nil
}

// Debit checks then applies a negative delta inside an existing
// transaction. The locked read makes the check race-free.
func Debit(ctx context.Context, ops repository.InventoryOps, userID, itemID string, amount int) error {
	quantities, err := ops.GetQuantitiesForUpdate(ctx, userID, []string{itemID})
	if err != nil {
		return fmt.Errorf("failed to read quantity: %w", err)
	}
	if quantities[itemID] < amount {
		return fmt.Errorf("%w: have %d of %s, need %d", domain.ErrInsufficientQuantity, quantities[itemID], itemID, amount)
	}
	if err := ops.ApplyItemDelta(ctx, userID, itemID, -amount); err != nil {
		return fmt.Errorf("failed to debit item: %w", err)
	}
	return nil
}
