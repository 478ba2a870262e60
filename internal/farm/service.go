package farm

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agroklass/SmartFarm_Go/internal/catalog"
	"github.com/agroklass/SmartFarm_Go/internal/domain"
	"github.com/agroklass/SmartFarm_Go/internal/inventory"
	"github.com/agroklass/SmartFarm_Go/internal/logger"
	"github.com/agroklass/SmartFarm_Go/internal/metrics"
	"github.com/agroklass/SmartFarm_Go/internal/repository"
)

// PlantView is a placed plant with readiness derived at read time.
type PlantView struct {
	domain.PlacedPlant
	Ready            bool  `json:"ready"`
	RemainingSeconds int64 `json:"remaining_seconds"`
}

// AnimalView is a placed animal with collection readiness derived at
// read time.
type AnimalView struct {
	domain.PlacedAnimal
	ProductionItemID string `json:"production_item_id"`
	Ready            bool   `json:"ready"`
	RemainingSeconds int64  `json:"remaining_seconds"`
}

// ProductionView is a running chain with readiness derived at read time.
type ProductionView struct {
	domain.PlacedProduction
	Ready            bool  `json:"ready"`
	RemainingSeconds int64 `json:"remaining_seconds"`
}

// ZoneState is everything placed by a user inside one zone.
type ZoneState struct {
	ZoneID      string           `json:"zone_id"`
	Plants      []PlantView      `json:"plants"`
	Animals     []AnimalView     `json:"animals"`
	Productions []ProductionView `json:"productions"`
}

// CollectResult reports the single inventory credit a collection made.
type CollectResult struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Service defines the production scheduler business logic
type Service interface {
	// GetZoneState returns the user's placed entities in a zone with
	// readiness computed against the current clock.
	GetZoneState(ctx context.Context, userID, zoneID string) (*ZoneState, error)

	// PlantSeed occupies a plant slot with the chosen seed. Planting
	// is free; access is gated by the seed's unlock threshold, not by
	// inventory. Fails with domain.ErrSlotOccupied when the slot is
	// taken and domain.ErrItemLocked when the threshold is not met.
	PlantSeed(ctx context.Context, userID, zoneID string, slotIndex int, seedItemID string) (*domain.PlacedPlant, error)

	// HarvestPlant credits one unit of the plant's crop and removes the
	// plant, atomically. A plant that is gone yields
	// domain.ErrPlantNotFound; one that is still growing yields
	// domain.ErrNotReady.
	HarvestPlant(ctx context.Context, userID, plantID string) (*CollectResult, error)

	// PlaceAnimal adds an animal to the user's pen, up to the pen
	// capacity.
	PlaceAnimal(ctx context.Context, userID, animalID string) (*domain.PlacedAnimal, error)

	// CollectAnimal credits one unit of the animal's production item
	// and resets its collection timestamp. The animal itself survives.
	CollectAnimal(ctx context.Context, userID, placedID string) (*CollectResult, error)

	// FeedAnimal consumes one feed item and raises happiness.
	FeedAnimal(ctx context.Context, userID, placedID string) error

	// StartProduction deducts every chain ingredient in one transaction
	// and schedules the output. No partial deduction: any shortage
	// fails the whole call with domain.ErrInsufficientIngredients.
	StartProduction(ctx context.Context, userID, zoneID string, slotIndex int, chainID string) (*domain.PlacedProduction, error)

	// CollectProduction credits the chain output and removes the
	// production record, atomically.
	CollectProduction(ctx context.Context, userID, productionID string) (*CollectResult, error)
}

type service struct {
	farmRepo     repository.Farm
	catalogRepo  repository.Catalog
	progressRepo repository.Progress
	now          func() time.Time
}

// NewService creates a new farm service
func NewService(farmRepo repository.Farm, catalogRepo repository.Catalog, progressRepo repository.Progress) Service {
	return &service{
		farmRepo:     farmRepo,
		catalogRepo:  catalogRepo,
		progressRepo: progressRepo,
		now:          time.Now,
	}
}

func (s *service) GetZoneState(ctx context.Context, userID, zoneID string) (*ZoneState, error) {
	now := s.now()

	plants, err := s.farmRepo.GetPlants(ctx, userID, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plants: %w", err)
	}
	animals, err := s.farmRepo.GetAnimals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get animals: %w", err)
	}
	productions, err := s.farmRepo.GetProductions(ctx, userID, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to get productions: %w", err)
	}

	state := &ZoneState{ZoneID: zoneID}
	for _, p := range plants {
		seed, err := s.catalogRepo.GetItem(ctx, p.SeedItemID)
		if err != nil {
			return nil, fmt.Errorf("failed to get seed %s: %w", p.SeedItemID, err)
		}
		readyAt := PlantReadyAt(&p, seed)
		state.Plants = append(state.Plants, PlantView{
			PlacedPlant:      p,
			Ready:            PlantReady(&p, seed, now),
			RemainingSeconds: int64(Remaining(readyAt, now) / time.Second),
		})
	}
	for _, a := range animals {
		def, err := s.catalogRepo.GetAnimal(ctx, a.AnimalID)
		if err != nil {
			return nil, fmt.Errorf("failed to get animal %s: %w", a.AnimalID, err)
		}
		if def.ZoneID != zoneID {
			continue
		}
		readyAt := AnimalReadyAt(&a, def)
		state.Animals = append(state.Animals, AnimalView{
			PlacedAnimal:     a,
			ProductionItemID: def.ProductionItemID,
			Ready:            AnimalReady(&a, def, now),
			RemainingSeconds: int64(Remaining(readyAt, now) / time.Second),
		})
	}
	for _, p := range productions {
		state.Productions = append(state.Productions, ProductionView{
			PlacedProduction: p,
			Ready:            ProductionReady(&p, now),
			RemainingSeconds: int64(Remaining(p.FinishAt, now) / time.Second),
		})
	}
	return state, nil
}

func (s *service) PlantSeed(ctx context.Context, userID, zoneID string, slotIndex int, seedItemID string) (*domain.PlacedPlant, error) {
	log := logger.FromContext(ctx)

	if slotIndex < 0 || slotIndex >= domain.PlantSlotCount {
		return nil, fmt.Errorf("%w: plant slot index %d out of range", domain.ErrInvalidInput, slotIndex)
	}

	zone, err := s.catalogRepo.GetZone(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to get zone: %w", err)
	}
	if !zone.SupportsSlot(domain.SlotPlant) {
		return nil, fmt.Errorf("%w: zone %s has no plant slots", domain.ErrInvalidInput, zoneID)
	}

	seed, err := s.catalogRepo.GetItem(ctx, seedItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get seed: %w", err)
	}
	if seed.Category != domain.CategorySeed {
		return nil, fmt.Errorf("%w: item %s is not a seed", domain.ErrInvalidInput, seedItemID)
	}

	if err := s.checkUnlock(ctx, userID, zoneID, seed.UnlockTasksRequired); err != nil {
		return nil, err
	}

	tx, err := s.farmRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Seeds are not stock: a fresh account plants its first unlocked
	// seed immediately, and harvesting is what fills the inventory.
	plant := &domain.PlacedPlant{
		ID:         uuid.NewString(),
		UserID:     userID,
		ZoneID:     zoneID,
		SlotIndex:  slotIndex,
		SeedItemID: seedItemID,
		PlantedAt:  s.now(),
	}
	if err := tx.InsertPlant(ctx, plant); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Seed planted", "userID", userID, "zoneID", zoneID, "slot", slotIndex, "seed", seedItemID)
	return plant, nil
}

func (s *service) HarvestPlant(ctx context.Context, userID, plantID string) (*CollectResult, error) {
	log := logger.FromContext(ctx)

	tx, err := s.farmRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	plant, err := tx.GetPlantForUpdate(ctx, plantID)
	if err != nil {
		return nil, err
	}
	if plant.UserID != userID {
		return nil, fmt.Errorf("%w: plant %s", domain.ErrPlantNotFound, plantID)
	}

	seed, err := s.catalogRepo.GetItem(ctx, plant.SeedItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get seed: %w", err)
	}
	if !PlantReady(plant, seed, s.now()) {
		return nil, fmt.Errorf("%w: plant %s is still growing", domain.ErrNotReady, plantID)
	}

	// Seed items double as their own crop: harvesting returns one
	// unit of the planted item.
	if err := inventory.Credit(ctx, tx, userID, plant.SeedItemID, 1); err != nil {
		return nil, err
	}
	if err := tx.DeletePlant(ctx, plantID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.PlantsHarvested.WithLabelValues(plant.ZoneID).Inc()
	log.Info("Plant harvested", "userID", userID, "plantID", plantID, "item", plant.SeedItemID)
	return &CollectResult{ItemID: plant.SeedItemID, Quantity: 1}, nil
}

func (s *service) PlaceAnimal(ctx context.Context, userID, animalID string) (*domain.PlacedAnimal, error) {
	log := logger.FromContext(ctx)

	def, err := s.catalogRepo.GetAnimal(ctx, animalID)
	if err != nil {
		return nil, err
	}
	if err := s.checkUnlock(ctx, userID, def.ZoneID, def.UnlockTasksRequired); err != nil {
		return nil, err
	}

	tx, err := s.farmRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	count, err := tx.CountAnimals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count animals: %w", err)
	}
	if count >= domain.AnimalSlotCount {
		return nil, fmt.Errorf("%w: animal pen is full", domain.ErrSlotOccupied)
	}

	now := s.now()
	animal := &domain.PlacedAnimal{
		ID:              uuid.NewString(),
		UserID:          userID,
		AnimalID:        animalID,
		Happiness:       def.MaxHappiness,
		LastFedAt:       now,
		LastCollectedAt: now,
		CreatedAt:       now,
	}
	if err := tx.InsertAnimal(ctx, animal); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Animal placed", "userID", userID, "animalID", animalID)
	return animal, nil
}

func (s *service) CollectAnimal(ctx context.Context, userID, placedID string) (*CollectResult, error) {
	log := logger.FromContext(ctx)

	tx, err := s.farmRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	animal, err := tx.GetAnimalForUpdate(ctx, placedID)
	if err != nil {
		return nil, err
	}
	if animal.UserID != userID {
		return nil, fmt.Errorf("%w: animal %s", domain.ErrAnimalNotFound, placedID)
	}

	def, err := s.catalogRepo.GetAnimal(ctx, animal.AnimalID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if !AnimalReady(animal, def, now) {
		return nil, fmt.Errorf("%w: animal %s has nothing to collect", domain.ErrNotReady, placedID)
	}

	if err := inventory.Credit(ctx, tx, userID, def.ProductionItemID, 1); err != nil {
		return nil, err
	}
	if err := tx.UpdateAnimalCollected(ctx, placedID, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.AnimalsCollected.Inc()
	log.Info("Animal output collected", "userID", userID, "placedID", placedID, "item", def.ProductionItemID)
	return &CollectResult{ItemID: def.ProductionItemID, Quantity: 1}, nil
}

func (s *service) FeedAnimal(ctx context.Context, userID, placedID string) error {
	log := logger.FromContext(ctx)

	tx, err := s.farmRepo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	animal, err := tx.GetAnimalForUpdate(ctx, placedID)
	if err != nil {
		return err
	}
	if animal.UserID != userID {
		return fmt.Errorf("%w: animal %s", domain.ErrAnimalNotFound, placedID)
	}

	def, err := s.catalogRepo.GetAnimal(ctx, animal.AnimalID)
	if err != nil {
		return err
	}
	if def.FeedItemID != "" {
		if err := inventory.Debit(ctx, tx, userID, def.FeedItemID, 1); err != nil {
			return err
		}
	}

	happiness := animal.Happiness + domain.AnimalFeedBonus
	if happiness > def.MaxHappiness {
		happiness = def.MaxHappiness
	}
	if err := tx.UpdateAnimalFed(ctx, placedID, happiness, s.now()); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Animal fed", "userID", userID, "placedID", placedID, "happiness", happiness)
	return nil
}

func (s *service) StartProduction(ctx context.Context, userID, zoneID string, slotIndex int, chainID string) (*domain.PlacedProduction, error) {
	log := logger.FromContext(ctx)

	if slotIndex < 0 || slotIndex >= domain.ProductionSlotCount {
		return nil, fmt.Errorf("%w: production slot index %d out of range", domain.ErrInvalidInput, slotIndex)
	}

	zone, err := s.catalogRepo.GetZone(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to get zone: %w", err)
	}
	if !zone.SupportsSlot(domain.SlotProduction) {
		return nil, fmt.Errorf("%w: zone %s has no production slots", domain.ErrInvalidInput, zoneID)
	}

	chain, err := s.catalogRepo.GetChain(ctx, chainID)
	if err != nil {
		return nil, err
	}
	if chain.ZoneID != zoneID {
		return nil, fmt.Errorf("%w: chain %s does not belong to zone %s", domain.ErrInvalidInput, chainID, zoneID)
	}
	if err := s.checkUnlock(ctx, userID, zoneID, chain.UnlockTasksRequired); err != nil {
		return nil, err
	}

	tx, err := s.farmRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Check every ingredient under lock before touching any quantity,
	// so a shortage in the last ingredient leaves the first untouched.
	itemIDs := make([]string, 0, len(chain.Ingredients))
	for _, ing := range chain.Ingredients {
		itemIDs = append(itemIDs, ing.ItemID)
	}
	quantities, err := tx.GetQuantitiesForUpdate(ctx, userID, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to read ingredient quantities: %w", err)
	}
	for _, ing := range chain.Ingredients {
		if quantities[ing.ItemID] < ing.QuantityNeeded {
			return nil, fmt.Errorf("%w: have %d of %s, need %d",
				domain.ErrInsufficientIngredients, quantities[ing.ItemID], ing.ItemID, ing.QuantityNeeded)
		}
	}
	for _, ing := range chain.Ingredients {
		if err := tx.ApplyItemDelta(ctx, userID, ing.ItemID, -ing.QuantityNeeded); err != nil {
			return nil, fmt.Errorf("failed to deduct ingredient %s: %w", ing.ItemID, err)
		}
	}

	now := s.now()
	production := &domain.PlacedProduction{
		ID:        uuid.NewString(),
		UserID:    userID,
		ZoneID:    zoneID,
		SlotIndex: slotIndex,
		ChainID:   chainID,
		StartedAt: now,
		FinishAt:  now.Add(time.Duration(chain.BaseTime) * time.Second),
	}
	if err := tx.InsertProduction(ctx, production); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.ProductionsStarted.WithLabelValues(zoneID).Inc()
	log.Info("Production started", "userID", userID, "chainID", chainID, "finishAt", production.FinishAt)
	return production, nil
}

func (s *service) CollectProduction(ctx context.Context, userID, productionID string) (*CollectResult, error) {
	log := logger.FromContext(ctx)

	tx, err := s.farmRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	production, err := tx.GetProductionForUpdate(ctx, productionID)
	if err != nil {
		return nil, err
	}
	if production.UserID != userID {
		return nil, fmt.Errorf("%w: production %s", domain.ErrProductionNotFound, productionID)
	}
	if !ProductionReady(production, s.now()) {
		return nil, fmt.Errorf("%w: production %s is still running", domain.ErrNotReady, productionID)
	}

	chain, err := s.catalogRepo.GetChain(ctx, production.ChainID)
	if err != nil {
		return nil, err
	}

	if err := inventory.Credit(ctx, tx, userID, chain.OutputItemID, chain.Output()); err != nil {
		return nil, err
	}
	if err := tx.DeleteProduction(ctx, productionID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.ProductionsCollected.WithLabelValues(production.ZoneID).Inc()
	log.Info("Production collected", "userID", userID, "productionID", productionID,
		"item", chain.OutputItemID, "quantity", chain.Output())
	return &CollectResult{ItemID: chain.OutputItemID, Quantity: chain.Output()}, nil
}

// checkUnlock compares a content threshold against the user's completed
// task count in the zone. A missing progress row counts as zero.
func (s *service) checkUnlock(ctx context.Context, userID, zoneID string, required int) error {
	progress, err := s.progressRepo.GetProgress(ctx, userID, zoneID)
	if err != nil {
		return fmt.Errorf("failed to get progress: %w", err)
	}
	completed := 0
	if progress != nil {
		completed = progress.TasksCompleted
	}
	if !catalog.IsUnlocked(required, completed) {
		return fmt.Errorf("%w: requires %d completed tasks, have %d", domain.ErrItemLocked, required, completed)
	}
	return nil
}
