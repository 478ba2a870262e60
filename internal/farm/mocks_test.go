package farm

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
	"github.com/agroklass/SmartFarm_Go/internal/repository"
)

// MockFarmRepo implements repository.Farm
type MockFarmRepo struct {
	mock.Mock
}

func (m *MockFarmRepo) GetPlants(ctx context.Context, userID, zoneID string) ([]domain.PlacedPlant, error) {
	args := m.Called(ctx, userID, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlacedPlant), args.Error(1)
}

func (m *MockFarmRepo) GetAnimals(ctx context.Context, userID string) ([]domain.PlacedAnimal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlacedAnimal), args.Error(1)
}

func (m *MockFarmRepo) GetProductions(ctx context.Context, userID, zoneID string) ([]domain.PlacedProduction, error) {
	args := m.Called(ctx, userID, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlacedProduction), args.Error(1)
}

func (m *MockFarmRepo) BeginTx(ctx context.Context) (repository.FarmTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.FarmTx), args.Error(1)
}

// MockFarmTx implements repository.FarmTx over an in-memory item
// ledger so ingredient deductions can be asserted after the call.
type MockFarmTx struct {
	mock.Mock
	quantities map[string]int
}

func NewMockFarmTx(initial map[string]int) *MockFarmTx {
	q := make(map[string]int, len(initial))
	for k, v := range initial {
		q[k] = v
	}
	return &MockFarmTx{quantities: q}
}

func (m *MockFarmTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFarmTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFarmTx) GetQuantitiesForUpdate(ctx context.Context, userID string, itemIDs []string) (map[string]int, error) {
	args := m.Called(ctx, userID, itemIDs)
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	out := make(map[string]int, len(itemIDs))
	for _, id := range itemIDs {
		out[id] = m.quantities[id]
	}
	return out, nil
}

func (m *MockFarmTx) ApplyItemDelta(ctx context.Context, userID, itemID string, delta int) error {
	args := m.Called(ctx, userID, itemID, delta)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	m.quantities[itemID] += delta
	return nil
}

func (m *MockFarmTx) GetPlantForUpdate(ctx context.Context, plantID string) (*domain.PlacedPlant, error) {
	args := m.Called(ctx, plantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlacedPlant), args.Error(1)
}

func (m *MockFarmTx) InsertPlant(ctx context.Context, plant *domain.PlacedPlant) error {
	args := m.Called(ctx, plant)
	return args.Error(0)
}

func (m *MockFarmTx) DeletePlant(ctx context.Context, plantID string) error {
	args := m.Called(ctx, plantID)
	return args.Error(0)
}

func (m *MockFarmTx) GetAnimalForUpdate(ctx context.Context, placedID string) (*domain.PlacedAnimal, error) {
	args := m.Called(ctx, placedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlacedAnimal), args.Error(1)
}

func (m *MockFarmTx) InsertAnimal(ctx context.Context, animal *domain.PlacedAnimal) error {
	args := m.Called(ctx, animal)
	return args.Error(0)
}

func (m *MockFarmTx) CountAnimals(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockFarmTx) UpdateAnimalCollected(ctx context.Context, placedID string, collectedAt time.Time) error {
	args := m.Called(ctx, placedID, collectedAt)
	return args.Error(0)
}

func (m *MockFarmTx) UpdateAnimalFed(ctx context.Context, placedID string, happiness int, fedAt time.Time) error {
	args := m.Called(ctx, placedID, happiness, fedAt)
	return args.Error(0)
}

func (m *MockFarmTx) GetProductionForUpdate(ctx context.Context, productionID string) (*domain.PlacedProduction, error) {
	args := m.Called(ctx, productionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlacedProduction), args.Error(1)
}

func (m *MockFarmTx) InsertProduction(ctx context.Context, production *domain.PlacedProduction) error {
	args := m.Called(ctx, production)
	return args.Error(0)
}

func (m *MockFarmTx) DeleteProduction(ctx context.Context, productionID string) error {
	args := m.Called(ctx, productionID)
	return args.Error(0)
}

// MockCatalogRepo implements repository.Catalog
type MockCatalogRepo struct {
	mock.Mock
}

func (m *MockCatalogRepo) GetZone(ctx context.Context, zoneID string) (*domain.Zone, error) {
	args := m.Called(ctx, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Zone), args.Error(1)
}

func (m *MockCatalogRepo) ListZones(ctx context.Context) ([]domain.Zone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Zone), args.Error(1)
}

func (m *MockCatalogRepo) GetItem(ctx context.Context, itemID string) (*domain.FarmItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FarmItem), args.Error(1)
}

func (m *MockCatalogRepo) ListSeeds(ctx context.Context, zoneID string) ([]domain.FarmItem, error) {
	args := m.Called(ctx, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FarmItem), args.Error(1)
}

func (m *MockCatalogRepo) GetAnimal(ctx context.Context, animalID string) (*domain.FarmAnimal, error) {
	args := m.Called(ctx, animalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FarmAnimal), args.Error(1)
}

func (m *MockCatalogRepo) ListAnimals(ctx context.Context, zoneID string) ([]domain.FarmAnimal, error) {
	args := m.Called(ctx, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FarmAnimal), args.Error(1)
}

func (m *MockCatalogRepo) GetChain(ctx context.Context, chainID string) (*domain.ProductionChain, error) {
	args := m.Called(ctx, chainID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductionChain), args.Error(1)
}

func (m *MockCatalogRepo) ListChains(ctx context.Context, zoneID string) ([]domain.ProductionChain, error) {
	args := m.Called(ctx, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductionChain), args.Error(1)
}

// MockProgressRepo implements repository.Progress
type MockProgressRepo struct {
	mock.Mock
}

func (m *MockProgressRepo) GetProgress(ctx context.Context, userID, zoneID string) (*domain.ZoneProgress, error) {
	args := m.Called(ctx, userID, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ZoneProgress), args.Error(1)
}

func (m *MockProgressRepo) GetAllProgress(ctx context.Context, userID string) ([]domain.ZoneProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ZoneProgress), args.Error(1)
}

func (m *MockProgressRepo) BeginTx(ctx context.Context) (repository.ProgressTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.ProgressTx), args.Error(1)
}
