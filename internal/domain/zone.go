package domain

// ZoneType tags a zone with the subject it represents and controls
// which slot kinds the zone supports.
type ZoneType string

const (
	ZonePhysics   ZoneType = "physics"
	ZoneBiology   ZoneType = "biology"
	ZoneChemistry ZoneType = "chemistry"
	ZoneMath      ZoneType = "math"
	ZoneIT        ZoneType = "it"
)

// SlotType identifies the kind of placement a slot accepts.
type SlotType string

const (
	SlotPlant      SlotType = "plant"
	SlotAnimal     SlotType = "animal"
	SlotProduction SlotType = "production"
)

// Slot capacities per zone. Fixed in the product: six plant beds,
// four animal pens, three production lines.
const (
	PlantSlotCount      = 6
	AnimalSlotCount     = 4
	ProductionSlotCount = 3
)

// Zone is a subject-themed content area
type Zone struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	ZoneType         ZoneType `json:"zone_type"`
	AllowedSlotTypes []string `json:"allowed_slot_types"`
	UnlockLevel      int      `json:"unlock_level"`
}

// SupportsSlot reports whether the zone accepts the given slot kind.
func (z *Zone) SupportsSlot(st SlotType) bool {
	for _, s := range z.AllowedSlotTypes {
		if SlotType(s) == st {
			return true
		}
	}
	return false
}

// MaxSlots returns the slot capacity for a slot kind.
func MaxSlots(st SlotType) int {
	switch st {
	case SlotPlant:
		return PlantSlotCount
	case SlotAnimal:
		return AnimalSlotCount
	case SlotProduction:
		return ProductionSlotCount
	}
	return 0
}
