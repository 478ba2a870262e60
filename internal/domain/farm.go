package domain

import "time"

// FarmAnimal is a catalog definition of a placeable animal.
type FarmAnimal struct {
	ID                  string `json:"id"`
	ZoneID              string `json:"zone_id"`
	Name                string `json:"name"`
	IconEmoji           string `json:"icon_emoji"`
	Description         string `json:"description,omitempty"`
	ProductionItemID    string `json:"production_item_id"`
	ProductionTime      int    `json:"production_time"` // seconds between collections
	FeedItemID          string `json:"feed_item_id,omitempty"`
	MaxHappiness        int    `json:"max_happiness"`
	UnlockTasksRequired int    `json:"unlock_tasks_required"`
}

// ChainIngredient is a single input requirement of a production chain.
type ChainIngredient struct {
	ItemID         string `json:"item_id"`
	QuantityNeeded int    `json:"quantity_needed"`
}

// ProductionChain is a crafting recipe: input item quantities mapped
// to one output item over a fixed duration.
type ProductionChain struct {
	ID                  string            `json:"id"`
	ZoneID              string            `json:"zone_id"`
	Name                string            `json:"name"`
	OutputItemID        string            `json:"output_item_id"`
	OutputQuantity      int               `json:"output_quantity"` // 0 means 1
	BaseTime            int               `json:"base_time"`       // seconds
	UnlockTasksRequired int               `json:"unlock_tasks_required"`
	Ingredients         []ChainIngredient `json:"ingredients"`
}

// Output returns the credited quantity on collection, defaulting to 1.
func (c *ProductionChain) Output() int {
	if c.OutputQuantity <= 0 {
		return 1
	}
	return c.OutputQuantity
}

// AnimalFeedBonus is the happiness gained per feeding.
const AnimalFeedBonus = 20

// PlacedPlant is one growing plant occupying a (user, zone, slot).
type PlacedPlant struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	ZoneID     string    `json:"zone_id"`
	SlotIndex  int       `json:"slot_index"`
	SeedItemID string    `json:"seed_item_id"`
	PlantedAt  time.Time `json:"planted_at"`
	NeedsWater bool      `json:"needs_water"`
}

// PlacedAnimal is one owned animal. Animals are not slot-bound in the
// store; display order is by creation time.
type PlacedAnimal struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	AnimalID        string    `json:"animal_id"`
	Happiness       int       `json:"happiness"`
	LastFedAt       time.Time `json:"last_fed_at"`
	LastCollectedAt time.Time `json:"last_collected_at"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
}

// PlacedProduction is one running production chain instance.
// Ingredients are deducted when it starts, not when it finishes.
type PlacedProduction struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ZoneID    string    `json:"zone_id"`
	SlotIndex int       `json:"slot_index"`
	ChainID   string    `json:"chain_id"`
	StartedAt time.Time `json:"started_at"`
	FinishAt  time.Time `json:"finish_at"`
}
