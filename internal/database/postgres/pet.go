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

// PetRepository implements the pet repository for PostgreSQL
type PetRepository struct {
	db *pgxpool.Pool
}

// NewPetRepository creates a new PetRepository
func NewPetRepository(db *pgxpool.Pool) repository.Pet {
	return &PetRepository{db: db}
}

const petColumns = `pet_id, user_id, pet_name, pet_type, hunger, thirst, happiness, last_fed_at, last_watered_at, last_played_at, created_at, ran_away_at`

func scanPet(row pgx.Row) (*domain.Pet, error) {
	var pet domain.Pet
	var ranAwayAt pgtype.Timestamptz
	err := row.Scan(
		&pet.ID,
		&pet.UserID,
		&pet.Name,
		&pet.Type,
		&pet.Hunger,
		&pet.Thirst,
		&pet.Happiness,
		&pet.LastFedAt,
		&pet.LastWateredAt,
		&pet.LastPlayedAt,
		&pet.CreatedAt,
		&ranAwayAt,
	)
	if err != nil {
		return nil, err
	}
	pet.RanAwayAt = ptrTime(ranAwayAt)
	return &pet, nil
}

// GetPetByUser returns the user's companion or domain.ErrPetNotFound.
func (r *PetRepository) GetPetByUser(ctx context.Context, userID string) (*domain.Pet, error) {
	query := `SELECT ` + petColumns + ` FROM user_pets WHERE user_id = $1`
	pet, err := scanPet(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPetNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPet, err)
	}
	return pet, nil
}

// CreatePet inserts a new companion; the unique constraint on user_id
// surfaces as domain.ErrPetAlreadyExists.
func (r *PetRepository) CreatePet(ctx context.Context, pet *domain.Pet) error {
	query := `
		INSERT INTO user_pets (pet_id, user_id, pet_name, pet_type, hunger, thirst, happiness, last_fed_at, last_watered_at, last_played_at, created_at, ran_away_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(ctx, query,
		pet.ID, pet.UserID, pet.Name, string(pet.Type),
		pet.Hunger, pet.Thirst, pet.Happiness,
		pet.LastFedAt, pet.LastWateredAt, pet.LastPlayedAt,
		pet.CreatedAt, timestamptzOrNil(pet.RanAwayAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: user %s", domain.ErrPetAlreadyExists, pet.UserID)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreatePet, err)
	}
	return nil
}

// UpdatePet persists care timestamps, stats and the terminal
// ran_away_at marker.
func (r *PetRepository) UpdatePet(ctx context.Context, pet *domain.Pet) error {
	query := `
		UPDATE user_pets
		SET pet_name = $1, hunger = $2, thirst = $3, happiness = $4,
		    last_fed_at = $5, last_watered_at = $6, last_played_at = $7,
		    ran_away_at = $8
		WHERE pet_id = $9
	`
	tag, err := r.db.Exec(ctx, query,
		pet.Name, pet.Hunger, pet.Thirst, pet.Happiness,
		pet.LastFedAt, pet.LastWateredAt, pet.LastPlayedAt,
		timestamptzOrNil(pet.RanAwayAt), pet.ID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdatePet, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPetNotFound
	}
	return nil
}

func (r *PetRepository) DeletePet(ctx context.Context, petID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM user_pets WHERE pet_id = $1`, petID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeletePet, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPetNotFound
	}
	return nil
}
