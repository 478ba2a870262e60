package domain

import "time"

// ItemCategory classifies catalog items.
type ItemCategory string

const (
	CategorySeed    ItemCategory = "seed"
	CategoryRaw     ItemCategory = "raw"
	CategoryProduct ItemCategory = "product"
	CategoryFeed    ItemCategory = "feed"
	CategoryBooster ItemCategory = "booster"
)

// FarmItem is a catalog definition: a seed, raw material, product,
// feed or booster. Seeds carry a production time (growth) in seconds
// and a task-count unlock threshold.
type FarmItem struct {
	ID                  string       `json:"id"`
	ZoneID              string       `json:"zone_id,omitempty"`
	Name                string       `json:"name"`
	IconEmoji           string       `json:"icon_emoji"`
	Description         string       `json:"description,omitempty"`
	Category            ItemCategory `json:"category"`
	ProductionTime      int          `json:"production_time,omitempty"` // seconds
	UnlockTasksRequired int          `json:"unlock_tasks_required"`
	SellPriceNPC        int          `json:"sell_price_npc,omitempty"`
}

// GrowthDuration returns the item's production time as a duration.
func (i *FarmItem) GrowthDuration() time.Duration {
	return time.Duration(i.ProductionTime) * time.Second
}
