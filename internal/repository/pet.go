package repository

import (
	"context"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
)

// Pet handles companion persistence. One companion per user.
type Pet interface {
	// GetPetByUser returns the user's companion or domain.ErrPetNotFound.
	GetPetByUser(ctx context.Context, userID string) (*domain.Pet, error)

	// CreatePet inserts a new companion; a unique constraint on user_id
	// surfaces as domain.ErrPetAlreadyExists.
	CreatePet(ctx context.Context, pet *domain.Pet) error

	// UpdatePet persists decayed stats, care actions and the terminal
	// ran_away_at marker.
	UpdatePet(ctx context.Context, pet *domain.Pet) error

	DeletePet(ctx context.Context, petID string) error
}
