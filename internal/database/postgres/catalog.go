package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
	"github.com/agroklass/SmartFarm_Go/internal/repository"
)

// CatalogRepository implements the catalog repository for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) repository.Catalog {
	return &CatalogRepository{db: db}
}

const zoneColumns = `zone_id, zone_name, description, zone_type, allowed_slot_types, unlock_level`

func scanZone(row pgx.Row) (*domain.Zone, error) {
	var zone domain.Zone
	var description pgtype.Text
	err := row.Scan(
		&zone.ID,
		&zone.Name,
		&description,
		&zone.ZoneType,
		&zone.AllowedSlotTypes,
		&zone.UnlockLevel,
	)
	if err != nil {
		return nil, err
	}
	zone.Description = textOrEmpty(description)
	return &zone, nil
}

func (r *CatalogRepository) GetZone(ctx context.Context, zoneID string) (*domain.Zone, error) {
	query := `SELECT ` + zoneColumns + ` FROM zones WHERE zone_id = $1`
	zone, err := scanZone(r.db.QueryRow(ctx, query, zoneID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrZoneNotFound, zoneID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetZone, err)
	}
	return zone, nil
}

func (r *CatalogRepository) ListZones(ctx context.Context) ([]domain.Zone, error) {
	query := `SELECT ` + zoneColumns + ` FROM zones ORDER BY unlock_level, zone_id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListZones, err)
	}
	defer rows.Close()

	var zones []domain.Zone
	for rows.Next() {
		zone, err := scanZone(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan zone: %w", err)
		}
		zones = append(zones, *zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListZones, err)
	}

	return zones, nil
}

const itemColumns = `item_id, zone_id, item_name, icon_emoji, description, category, production_time, unlock_tasks_required, sell_price_npc`

func scanItem(row pgx.Row) (*domain.FarmItem, error) {
	var item domain.FarmItem
	var zoneID, description pgtype.Text
	err := row.Scan(
		&item.ID,
		&zoneID,
		&item.Name,
		&item.IconEmoji,
		&description,
		&item.Category,
		&item.ProductionTime,
		&item.UnlockTasksRequired,
		&item.SellPriceNPC,
	)
	if err != nil {
		return nil, err
	}
	item.ZoneID = textOrEmpty(zoneID)
	item.Description = textOrEmpty(description)
	return &item, nil
}

func (r *CatalogRepository) GetItem(ctx context.Context, itemID string) (*domain.FarmItem, error) {
	query := `SELECT ` + itemColumns + ` FROM farm_items WHERE item_id = $1`
	item, err := scanItem(r.db.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItem, err)
	}
	return item, nil
}

// ListSeeds returns the zone's plantable seeds ordered by unlock threshold.
func (r *CatalogRepository) ListSeeds(ctx context.Context, zoneID string) ([]domain.FarmItem, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM farm_items
		WHERE zone_id = $1 AND category = $2
		ORDER BY unlock_tasks_required, item_id
	`
	rows, err := r.db.Query(ctx, query, zoneID, string(domain.CategorySeed))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
	}
	defer rows.Close()

	var items []domain.FarmItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
	}

	return items, nil
}

const animalDefColumns = `animal_id, zone_id, animal_name, icon_emoji, description, production_item_id, production_time, feed_item_id, max_happiness, unlock_tasks_required`

func scanAnimalDef(row pgx.Row) (*domain.FarmAnimal, error) {
	var animal domain.FarmAnimal
	var description, feedItemID pgtype.Text
	err := row.Scan(
		&animal.ID,
		&animal.ZoneID,
		&animal.Name,
		&animal.IconEmoji,
		&description,
		&animal.ProductionItemID,
		&animal.ProductionTime,
		&feedItemID,
		&animal.MaxHappiness,
		&animal.UnlockTasksRequired,
	)
	if err != nil {
		return nil, err
	}
	animal.Description = textOrEmpty(description)
	animal.FeedItemID = textOrEmpty(feedItemID)
	return &animal, nil
}

func (r *CatalogRepository) GetAnimal(ctx context.Context, animalID string) (*domain.FarmAnimal, error) {
	query := `SELECT ` + animalDefColumns + ` FROM farm_animals WHERE animal_id = $1`
	animal, err := scanAnimalDef(r.db.QueryRow(ctx, query, animalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrAnimalNotFound, animalID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAnimalDef, err)
	}
	return animal, nil
}

// ListAnimals returns the zone's animals ordered by unlock threshold.
func (r *CatalogRepository) ListAnimals(ctx context.Context, zoneID string) ([]domain.FarmAnimal, error) {
	query := `
		SELECT ` + animalDefColumns + `
		FROM farm_animals
		WHERE zone_id = $1
		ORDER BY unlock_tasks_required, animal_id
	`
	rows, err := r.db.Query(ctx, query, zoneID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListAnimalDefs, err)
	}
	defer rows.Close()

	var animals []domain.FarmAnimal
	for rows.Next() {
		animal, err := scanAnimalDef(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan animal definition: %w", err)
		}
		animals = append(animals, *animal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListAnimalDefs, err)
	}

	return animals, nil
}

const chainColumns = `chain_id, zone_id, chain_name, output_item_id, output_quantity, base_time, unlock_tasks_required`

func scanChain(row pgx.Row) (*domain.ProductionChain, error) {
	var chain domain.ProductionChain
	err := row.Scan(
		&chain.ID,
		&chain.ZoneID,
		&chain.Name,
		&chain.OutputItemID,
		&chain.OutputQuantity,
		&chain.BaseTime,
		&chain.UnlockTasksRequired,
	)
	if err != nil {
		return nil, err
	}
	return &chain, nil
}

// GetChain returns the chain with its ingredients loaded.
func (r *CatalogRepository) GetChain(ctx context.Context, chainID string) (*domain.ProductionChain, error) {
	query := `SELECT ` + chainColumns + ` FROM production_chains WHERE chain_id = $1`
	chain, err := scanChain(r.db.QueryRow(ctx, query, chainID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrChainNotFound, chainID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetChain, err)
	}

	if err := r.loadIngredients(ctx, []*domain.ProductionChain{chain}); err != nil {
		return nil, err
	}
	return chain, nil
}

// ListChains returns the zone's chains with ingredients, ordered by
// unlock threshold.
func (r *CatalogRepository) ListChains(ctx context.Context, zoneID string) ([]domain.ProductionChain, error) {
	query := `
		SELECT ` + chainColumns + `
		FROM production_chains
		WHERE zone_id = $1
		ORDER BY unlock_tasks_required, chain_id
	`
	rows, err := r.db.Query(ctx, query, zoneID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListChains, err)
	}
	defer rows.Close()

	var chains []domain.ProductionChain
	for rows.Next() {
		chain, err := scanChain(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan production chain: %w", err)
		}
		chains = append(chains, *chain)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListChains, err)
	}

	refs := make([]*domain.ProductionChain, len(chains))
	for i := range chains {
		refs[i] = &chains[i]
	}
	if err := r.loadIngredients(ctx, refs); err != nil {
		return nil, err
	}

	return chains, nil
}

// loadIngredients attaches ingredient lists to the given chains with a
// single query.
func (r *CatalogRepository) loadIngredients(ctx context.Context, chains []*domain.ProductionChain) error {
	if len(chains) == 0 {
		return nil
	}

	byID := make(map[string]*domain.ProductionChain, len(chains))
	chainIDs := make([]string, 0, len(chains))
	for _, chain := range chains {
		byID[chain.ID] = chain
		chainIDs = append(chainIDs, chain.ID)
	}

	query := `
		SELECT chain_id, item_id, quantity_needed
		FROM chain_ingredients
		WHERE chain_id = ANY($1)
		ORDER BY chain_id, item_id
	`
	rows, err := r.db.Query(ctx, query, chainIDs)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToGetIngredients, err)
	}
	defer rows.Close()

	for rows.Next() {
		var chainID string
		var ingredient domain.ChainIngredient
		if err := rows.Scan(&chainID, &ingredient.ItemID, &ingredient.QuantityNeeded); err != nil {
			return fmt.Errorf("failed to scan chain ingredient: %w", err)
		}
		if chain, ok := byID[chainID]; ok {
			chain.Ingredients = append(chain.Ingredients, ingredient)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToGetIngredients, err)
	}

	return nil
}
