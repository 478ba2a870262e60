package repository

import (
	"context"
	"time"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
)

// Farm handles placed plants, animals and productions.
type Farm interface {
	GetPlants(ctx context.Context, userID, zoneID string) ([]domain.PlacedPlant, error)
	GetAnimals(ctx context.Context, userID string) ([]domain.PlacedAnimal, error)
	GetProductions(ctx context.Context, userID, zoneID string) ([]domain.PlacedProduction, error)

	BeginTx(ctx context.Context) (FarmTx, error)
}

// FarmTx defines the interface for farm transactions. Inventory ops
// are embedded so a collection credits the ledger and mutates the
// placed entity as a single atomic unit.
type FarmTx interface {
	Tx
	InventoryOps

	// Plants. Slot uniqueness per (user, zone) is enforced here:
	// InsertPlant must fail with domain.ErrSlotOccupied on conflict.
	GetPlantForUpdate(ctx context.Context, plantID string) (*domain.PlacedPlant, error)
	InsertPlant(ctx context.Context, plant *domain.PlacedPlant) error
	// DeletePlant removes the row; a row that is already gone must
	// surface domain.ErrPlantNotFound, never succeed silently.
	DeletePlant(ctx context.Context, plantID string) error

	// Animals.
	GetAnimalForUpdate(ctx context.Context, placedID string) (*domain.PlacedAnimal, error)
	InsertAnimal(ctx context.Context, animal *domain.PlacedAnimal) error
	CountAnimals(ctx context.Context, userID string) (int, error)
	UpdateAnimalCollected(ctx context.Context, placedID string, collectedAt time.Time) error
	UpdateAnimalFed(ctx context.Context, placedID string, happiness int, fedAt time.Time) error

	// Productions. Same slot conflict contract as plants.
	GetProductionForUpdate(ctx context.Context, productionID string) (*domain.PlacedProduction, error)
	InsertProduction(ctx context.Context, production *domain.PlacedProduction) error
	DeleteProduction(ctx context.Context, productionID string) error
}
