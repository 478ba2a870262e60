package domain

// InventoryEntry is a quantity-keyed ledger row: (user, item) -> count.
// Entries are created on first credit and never implicitly deleted;
// quantities are always non-negative.
type InventoryEntry struct {
	UserID   string `json:"user_id"`
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Inventory is a user's full ledger keyed by item.
type Inventory struct {
	UserID  string           `json:"user_id"`
	Entries []InventoryEntry `json:"entries"`
}

// Quantity returns the held quantity of an item, zero when absent.
func (inv *Inventory) Quantity(itemID string) int {
	for _, e := range inv.Entries {
		if e.ItemID == itemID {
			return e.Quantity
		}
	}
	return 0
}
