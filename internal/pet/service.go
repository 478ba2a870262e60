package pet

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
	"github.com/agroklass/SmartFarm_Go/internal/logger"
	"github.com/agroklass/SmartFarm_Go/internal/metrics"
	"github.com/agroklass/SmartFarm_Go/internal/repository"
)

// Service defines the companion business logic
type Service interface {
	// Create adopts a companion. Fails with domain.ErrPetAlreadyExists
	// while any companion row exists for the user, ran-away ones
	// included; those must be deleted first.
	Create(ctx context.Context, userID, name string, petType domain.PetType) (*domain.Pet, error)

	// Get returns the companion with stats decayed to the current
	// clock. Crossing the abandonment horizon is detected and persisted
	// here.
	Get(ctx context.Context, userID string) (*domain.Pet, error)

	// Care applies one feed, water or play action: the acted-on stat
	// gains domain.PetCareBonus on top of its decayed value, capped at
	// domain.PetStatMax, and its timestamp resets to now. A ran-away
	// companion rejects care with domain.ErrPetRanAway.
	Care(ctx context.Context, userID string, action domain.PetAction) (*domain.Pet, error)

	// Delete removes the companion, freeing the user to adopt again.
	Delete(ctx context.Context, userID string) error
}

type service struct {
	petRepo repository.Pet
	now     func() time.Time
}

// NewService creates a new pet service
func NewService(petRepo repository.Pet) Service {
	return &service{petRepo: petRepo, now: time.Now}
}

func (s *service) Create(ctx context.Context, userID, name string, petType domain.PetType) (*domain.Pet, error) {
	log := logger.FromContext(ctx)

	if name == "" {
		return nil, fmt.Errorf("%w: pet name is required", domain.ErrInvalidInput)
	}
	if !domain.ValidPetType(petType) {
		return nil, fmt.Errorf("%w: unknown pet type %q", domain.ErrInvalidInput, petType)
	}

	now := s.now()
	pet := &domain.Pet{
		ID:            uuid.NewString(),
		UserID:        userID,
		Name:          name,
		Type:          petType,
		Hunger:        domain.PetStatMax,
		Thirst:        domain.PetStatMax,
		Happiness:     domain.PetStatMax,
		LastFedAt:     now,
		LastWateredAt: now,
		LastPlayedAt:  now,
		CreatedAt:     now,
	}
	if err := s.petRepo.CreatePet(ctx, pet); err != nil {
		return nil, err
	}

	log.Info("Pet created", "userID", userID, "petID", pet.ID, "type", petType)
	return pet, nil
}

func (s *service) Get(ctx context.Context, userID string) (*domain.Pet, error) {
	pet, err := s.petRepo.GetPetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if ShouldRunAway(pet, now) {
		ranAt := LastCaredAt(pet).Add(domain.AbandonAfterDays * 24 * time.Hour)
		pet.RanAwayAt = &ranAt
		if err := s.petRepo.UpdatePet(ctx, pet); err != nil {
			return nil, fmt.Errorf("failed to mark pet as ran away: %w", err)
		}
		metrics.PetsRanAway.Inc()
		logger.FromContext(ctx).Info("Pet ran away", "userID", userID, "petID", pet.ID)
	}

	return Decayed(pet, now), nil
}

func (s *service) Care(ctx context.Context, userID string, action domain.PetAction) (*domain.Pet, error) {
	log := logger.FromContext(ctx)

	pet, err := s.petRepo.GetPetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if pet.HasRunAway() || ShouldRunAway(pet, now) {
		if !pet.HasRunAway() {
			ranAt := LastCaredAt(pet).Add(domain.AbandonAfterDays * 24 * time.Hour)
			pet.RanAwayAt = &ranAt
			if err := s.petRepo.UpdatePet(ctx, pet); err != nil {
				return nil, fmt.Errorf("failed to mark pet as ran away: %w", err)
			}
			metrics.PetsRanAway.Inc()
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrPetRanAway, pet.Name)
	}

	switch action {
	case domain.PetActionFeed:
		pet.Hunger = careValue(pet.Hunger, pet.LastFedAt, now)
		pet.LastFedAt = now
	case domain.PetActionWater:
		pet.Thirst = careValue(pet.Thirst, pet.LastWateredAt, now)
		pet.LastWateredAt = now
	case domain.PetActionPlay:
		pet.Happiness = careValue(pet.Happiness, pet.LastPlayedAt, now)
		pet.LastPlayedAt = now
	default:
		return nil, fmt.Errorf("%w: unknown pet action %q", domain.ErrInvalidInput, action)
	}

	if err := s.petRepo.UpdatePet(ctx, pet); err != nil {
		return nil, fmt.Errorf("failed to update pet: %w", err)
	}

	metrics.PetActions.WithLabelValues(string(action)).Inc()
	log.Info("Pet cared for", "userID", userID, "petID", pet.ID, "action", action)
	return Decayed(pet, now), nil
}

func (s *service) Delete(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	pet, err := s.petRepo.GetPetByUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.petRepo.DeletePet(ctx, pet.ID); err != nil {
		return fmt.Errorf("failed to delete pet: %w", err)
	}

	log.Info("Pet deleted", "userID", userID, "petID", pet.ID)
	return nil
}

// careValue applies the care bonus on top of the decayed stat.
func careValue(stored int, since, now time.Time) int {
	v := DecayedStat(stored, since, now) + domain.PetCareBonus
	if v > domain.PetStatMax {
		return domain.PetStatMax
	}
	return v
}
