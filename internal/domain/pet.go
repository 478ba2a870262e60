package domain

import "time"

// PetType is the fixed set of companion animals.
type PetType string

const (
	PetCow     PetType = "cow"
	PetChicken PetType = "chicken"
	PetSheep   PetType = "sheep"
)

// ValidPetType reports whether t is one of the known companion types.
func ValidPetType(t PetType) bool {
	switch t {
	case PetCow, PetChicken, PetSheep:
		return true
	}
	return false
}

// Companion care tuning. Stats decay one point per active hour and
// care actions restore a fixed amount.
const (
	PetStatMax       = 100
	PetCareBonus     = 20
	ActiveHourStart  = 8  // 08:00 local
	ActiveHourEnd    = 20 // 20:00 local
	AbandonAfterDays = 14
)

// Pet is the single companion a user maintains. RanAwayAt is terminal:
// once set the pet is read-only until deleted.
type Pet struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	Name          string     `json:"name"`
	Type          PetType    `json:"type"`
	Hunger        int        `json:"hunger"`
	Thirst        int        `json:"thirst"`
	Happiness     int        `json:"happiness"`
	LastFedAt     time.Time  `json:"last_fed_at"`
	LastWateredAt time.Time  `json:"last_watered_at"`
	LastPlayedAt  time.Time  `json:"last_played_at"`
	CreatedAt     time.Time  `json:"created_at"`
	RanAwayAt     *time.Time `json:"ran_away_at,omitempty"`
}

// HasRunAway reports whether the pet reached the terminal state.
func (p *Pet) HasRunAway() bool {
	return p.RanAwayAt != nil
}

// PetAction is a care action on a companion.
type PetAction string

const (
	PetActionFeed  PetAction = "feed"
	PetActionWater PetAction = "water"
	PetActionPlay  PetAction = "play"
)
