package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
	"github.com/agroklass/SmartFarm_Go/internal/repository"
)

// FarmRepository implements the farm repository for PostgreSQL
type FarmRepository struct {
	db *pgxpool.Pool
}

// NewFarmRepository creates a new FarmRepository
func NewFarmRepository(db *pgxpool.Pool) repository.Farm {
	return &FarmRepository{db: db}
}

const plantColumns = `plant_id, user_id, zone_id, slot_index, seed_item_id, planted_at, needs_water`

func scanPlant(row pgx.Row) (*domain.PlacedPlant, error) {
	var plant domain.PlacedPlant
	err := row.Scan(
		&plant.ID,
		&plant.UserID,
		&plant.ZoneID,
		&plant.SlotIndex,
		&plant.SeedItemID,
		&plant.PlantedAt,
		&plant.NeedsWater,
	)
	if err != nil {
		return nil, err
	}
	return &plant, nil
}

// GetPlants returns the user's plants in one zone ordered by slot.
func (r *FarmRepository) GetPlants(ctx context.Context, userID, zoneID string) ([]domain.PlacedPlant, error) {
	query := `
		SELECT ` + plantColumns + `
		FROM user_plants
		WHERE user_id = $1 AND zone_id = $2
		ORDER BY slot_index
	`
	rows, err := r.db.Query(ctx, query, userID, zoneID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlants, err)
	}
	defer rows.Close()

	var plants []domain.PlacedPlant
	for rows.Next() {
		plant, err := scanPlant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plant: %w", err)
		}
		plants = append(plants, *plant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlants, err)
	}

	return plants, nil
}

const animalColumns = `placed_id, user_id, animal_id, happiness, last_fed_at, last_collected_at, created_at`

func scanAnimal(row pgx.Row) (*domain.PlacedAnimal, error) {
	var animal domain.PlacedAnimal
	err := row.Scan(
		&animal.ID,
		&animal.UserID,
		&animal.AnimalID,
		&animal.Happiness,
		&animal.LastFedAt,
		&animal.LastCollectedAt,
		&animal.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &animal, nil
}

// GetAnimals returns all animals the user owns ordered by placement time.
func (r *FarmRepository) GetAnimals(ctx context.Context, userID string) ([]domain.PlacedAnimal, error) {
	query := `
		SELECT ` + animalColumns + `
		FROM user_animals
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAnimals, err)
	}
	defer rows.Close()

	var animals []domain.PlacedAnimal
	for rows.Next() {
		animal, err := scanAnimal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan animal: %w", err)
		}
		animals = append(animals, *animal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAnimals, err)
	}

	return animals, nil
}

const productionColumns = `production_id, user_id, zone_id, slot_index, chain_id, started_at, finish_at`

func scanProduction(row pgx.Row) (*domain.PlacedProduction, error) {
	var production domain.PlacedProduction
	err := row.Scan(
		&production.ID,
		&production.UserID,
		&production.ZoneID,
		&production.SlotIndex,
		&production.ChainID,
		&production.StartedAt,
		&production.FinishAt,
	)
	if err != nil {
		return nil, err
	}
	return &production, nil
}

// GetProductions returns the user's running productions in one zone.
func (r *FarmRepository) GetProductions(ctx context.Context, userID, zoneID string) ([]domain.PlacedProduction, error) {
	query := `
		SELECT ` + productionColumns + `
		FROM user_productions
		WHERE user_id = $1 AND zone_id = $2
		ORDER BY slot_index
	`
	rows, err := r.db.Query(ctx, query, userID, zoneID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetProductions, err)
	}
	defer rows.Close()

	var productions []domain.PlacedProduction
	for rows.Next() {
		production, err := scanProduction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan production: %w", err)
		}
		productions = append(productions, *production)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetProductions, err)
	}

	return productions, nil
}

// BeginTx starts a farm transaction
func (r *FarmRepository) BeginTx(ctx context.Context) (repository.FarmTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, beginTxErr(err)
	}
	return &farmTx{tx: tx, invOps: invOps{q: tx}}, nil
}

type farmTx struct {
	tx pgx.Tx
	invOps
}

func (t *farmTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *farmTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetPlantForUpdate locks one plant row for the rest of the transaction.
func (t *farmTx) GetPlantForUpdate(ctx context.Context, plantID string) (*domain.PlacedPlant, error) {
	query := `
		SELECT ` + plantColumns + `
		FROM user_plants
		WHERE plant_id = $1
		FOR UPDATE
	`
	plant, err := scanPlant(t.tx.QueryRow(ctx, query, plantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlantNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlants, err)
	}
	return plant, nil
}

// InsertPlant adds a plant; the (user, zone, slot) unique constraint
// surfaces as domain.ErrSlotOccupied.
func (t *farmTx) InsertPlant(ctx context.Context, plant *domain.PlacedPlant) error {
	query := `
		INSERT INTO user_plants (plant_id, user_id, zone_id, slot_index, seed_item_id, planted_at, needs_water)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := t.tx.Exec(ctx, query,
		plant.ID, plant.UserID, plant.ZoneID, plant.SlotIndex,
		plant.SeedItemID, plant.PlantedAt, plant.NeedsWater,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: slot %d in zone %s", domain.ErrSlotOccupied, plant.SlotIndex, plant.ZoneID)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertPlant, err)
	}
	return nil
}

// DeletePlant removes a plant row; a row already gone surfaces as
// domain.ErrPlantNotFound so double harvests fail loudly.
func (t *farmTx) DeletePlant(ctx context.Context, plantID string) error {
	tag, err := t.tx.Exec(ctx, `DELETE FROM user_plants WHERE plant_id = $1`, plantID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeletePlant, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlantNotFound
	}
	return nil
}

// GetAnimalForUpdate locks one animal row for the rest of the transaction.
func (t *farmTx) GetAnimalForUpdate(ctx context.Context, placedID string) (*domain.PlacedAnimal, error) {
	query := `
		SELECT ` + animalColumns + `
		FROM user_animals
		WHERE placed_id = $1
		FOR UPDATE
	`
	animal, err := scanAnimal(t.tx.QueryRow(ctx, query, placedID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAnimalNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAnimals, err)
	}
	return animal, nil
}

func (t *farmTx) InsertAnimal(ctx context.Context, animal *domain.PlacedAnimal) error {
	query := `
		INSERT INTO user_animals (placed_id, user_id, animal_id, happiness, last_fed_at, last_collected_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := t.tx.Exec(ctx, query,
		animal.ID, animal.UserID, animal.AnimalID, animal.Happiness,
		animal.LastFedAt, animal.LastCollectedAt, animal.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertAnimal, err)
	}
	return nil
}

// CountAnimals counts the user's placed animals inside the transaction
// so pen capacity checks cannot race concurrent placements.
func (t *farmTx) CountAnimals(ctx context.Context, userID string) (int, error) {
	var count int
	err := t.tx.QueryRow(ctx, `SELECT COUNT(*) FROM user_animals WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountAnimals, err)
	}
	return count, nil
}

func (t *farmTx) UpdateAnimalCollected(ctx context.Context, placedID string, collectedAt time.Time) error {
	tag, err := t.tx.Exec(ctx,
		`UPDATE user_animals SET last_collected_at = $1 WHERE placed_id = $2`,
		collectedAt, placedID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateAnimal, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAnimalNotFound
	}
	return nil
}

func (t *farmTx) UpdateAnimalFed(ctx context.Context, placedID string, happiness int, fedAt time.Time) error {
	tag, err := t.tx.Exec(ctx,
		`UPDATE user_animals SET happiness = $1, last_fed_at = $2 WHERE placed_id = $3`,
		happiness, fedAt, placedID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateAnimal, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAnimalNotFound
	}
	return nil
}

// GetProductionForUpdate locks one production row for the rest of the transaction.
func (t *farmTx) GetProductionForUpdate(ctx context.Context, productionID string) (*domain.PlacedProduction, error) {
	query := `
		SELECT ` + productionColumns + `
		FROM user_productions
		WHERE production_id = $1
		FOR UPDATE
	`
	production, err := scanProduction(t.tx.QueryRow(ctx, query, productionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductionNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetProductions, err)
	}
	return production, nil
}

// InsertProduction adds a running production; the (user, zone, slot)
// unique constraint surfaces as domain.ErrSlotOccupied.
func (t *farmTx) InsertProduction(ctx context.Context, production *domain.PlacedProduction) error {
	query := `
		INSERT INTO user_productions (production_id, user_id, zone_id, slot_index, chain_id, started_at, finish_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := t.tx.Exec(ctx, query,
		production.ID, production.UserID, production.ZoneID, production.SlotIndex,
		production.ChainID, production.StartedAt, production.FinishAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: slot %d in zone %s", domain.ErrSlotOccupied, production.SlotIndex, production.ZoneID)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertProduction, err)
	}
	return nil
}

func (t *farmTx) DeleteProduction(ctx context.Context, productionID string) error {
	tag, err := t.tx.Exec(ctx, `DELETE FROM user_productions WHERE production_id = $1`, productionID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteProduction, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductionNotFound
	}
	return nil
}
