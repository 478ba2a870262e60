package repository

import (
	"context"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
)

// Catalog reads content definitions: zones, items, animals and
// production chains. Definitions are authored out of band and change
// rarely, so reads sit behind the catalog service's TTL cache.
type Catalog interface {
	GetZone(ctx context.Context, zoneID string) (*domain.Zone, error)
	ListZones(ctx context.Context) ([]domain.Zone, error)

	GetItem(ctx context.Context, itemID string) (*domain.FarmItem, error)
	// ListSeeds returns the zone's seed items ordered by unlock threshold.
	ListSeeds(ctx context.Context, zoneID string) ([]domain.FarmItem, error)

	GetAnimal(ctx context.Context, animalID string) (*domain.FarmAnimal, error)
	// ListAnimals returns the zone's animals ordered by unlock threshold.
	ListAnimals(ctx context.Context, zoneID string) ([]domain.FarmAnimal, error)

	// GetChain returns the chain with its ingredients loaded.
	GetChain(ctx context.Context, chainID string) (*domain.ProductionChain, error)
	// ListChains returns the zone's chains with ingredients, ordered by
	// unlock threshold.
	ListChains(ctx context.Context, zoneID string) ([]domain.ProductionChain, error)
}
