package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
	"github.com/agroklass/SmartFarm_Go/internal/repository"
)

// DefaultCacheTTL bounds how stale catalog listings may be served.
const DefaultCacheTTL = 5 * time.Minute

// SeedListing is a seed with its lock state for the requesting user.
type SeedListing struct {
	Item   domain.FarmItem `json:"item"`
	Locked bool            `json:"locked,omitempty"`
}

// AnimalListing is an animal definition with its lock state.
type AnimalListing struct {
	Animal domain.FarmAnimal `json:"animal"`
	Locked bool              `json:"locked,omitempty"`
}

// ChainListing is a production chain with its lock state.
type ChainListing struct {
	Chain  domain.ProductionChain `json:"chain"`
	Locked bool                   `json:"locked,omitempty"`
}

// Service exposes catalog browsing with the unlock-preview rule applied.
type Service interface {
	ListZones(ctx context.Context) ([]domain.Zone, error)
	GetZone(ctx context.Context, zoneID string) (*domain.Zone, error)

	// Visible listings: unlocked entries plus one locked preview,
	// derived from the caller's tasks completed in the zone.
	ListVisibleSeeds(ctx context.Context, userID, zoneID string) ([]SeedListing, error)
	ListVisibleAnimals(ctx context.Context, userID, zoneID string) ([]AnimalListing, error)
	ListVisibleChains(ctx context.Context, userID, zoneID string) ([]ChainListing, error)

	// InvalidateCache drops cached listings after catalog edits.
	InvalidateCache()
}

type service struct {
	catalogRepo  repository.Catalog
	progressRepo repository.Progress

	seedCache   *listCache[domain.FarmItem]
	animalCache *listCache[domain.FarmAnimal]
	chainCache  *listCache[domain.ProductionChain]
}

// NewService creates a new catalog service
func NewService(catalogRepo repository.Catalog, progressRepo repository.Progress) Service {
	return &service{
		catalogRepo:  catalogRepo,
		progressRepo: progressRepo,
		seedCache:    newListCache[domain.FarmItem](DefaultCacheTTL),
		animalCache:  newListCache[domain.FarmAnimal](DefaultCacheTTL),
		chainCache:   newListCache[domain.ProductionChain](DefaultCacheTTL),
	}
}

func (s *service) ListZones(ctx context.Context) ([]domain.Zone, error) {
	zones, err := s.catalogRepo.ListZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	return zones, nil
}

func (s *service) GetZone(ctx context.Context, zoneID string) (*domain.Zone, error) {
	zone, err := s.catalogRepo.GetZone(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to get zone: %w", err)
	}
	return zone, nil
}

// tasksCompleted resolves the caller's task count in a zone, treating
// a missing progress row as zero.
func (s *service) tasksCompleted(ctx context.Context, userID, zoneID string) (int, error) {
	progress, err := s.progressRepo.GetProgress(ctx, userID, zoneID)
	if err != nil {
		return 0, fmt.Errorf("failed to get progress: %w", err)
	}
	if progress == nil {
		return 0, nil
	}
	return progress.TasksCompleted, nil
}

func (s *service) ListVisibleSeeds(ctx context.Context, userID, zoneID string) ([]SeedListing, error) {
	seeds, ok := s.seedCache.Get(zoneID)
	if !ok {
		var err error
		seeds, err = s.catalogRepo.ListSeeds(ctx, zoneID)
		if err != nil {
			return nil, fmt.Errorf("failed to list seeds: %w", err)
		}
		s.seedCache.Set(zoneID, seeds)
	}

	completed, err := s.tasksCompleted(ctx, userID, zoneID)
	if err != nil {
		return nil, err
	}

	visible := FilterVisible(seeds, func(i domain.FarmItem) int { return i.UnlockTasksRequired }, completed)
	listings := make([]SeedListing, 0, len(visible))
	for _, item := range visible {
		listings = append(listings, SeedListing{
			Item:   item,
			Locked: !IsUnlocked(item.UnlockTasksRequired, completed),
		})
	}
	return listings, nil
}

func (s *service) ListVisibleAnimals(ctx context.Context, userID, zoneID string) ([]AnimalListing, error) {
	animals, ok := s.animalCache.Get(zoneID)
	if !ok {
		var err error
		animals, err = s.catalogRepo.ListAnimals(ctx, zoneID)
		if err != nil {
			return nil, fmt.Errorf("failed to list animals: %w", err)
		}
		s.animalCache.Set(zoneID, animals)
	}

	completed, err := s.tasksCompleted(ctx, userID, zoneID)
	if err != nil {
		return nil, err
	}

	visible := FilterVisible(animals, func(a domain.FarmAnimal) int { return a.UnlockTasksRequired }, completed)
	listings := make([]AnimalListing, 0, len(visible))
	for _, animal := range visible {
		listings = append(listings, AnimalListing{
			Animal: animal,
			Locked: !IsUnlocked(animal.UnlockTasksRequired, completed),
		})
	}
	return listings, nil
}

func (s *service) ListVisibleChains(ctx context.Context, userID, zoneID string) ([]ChainListing, error) {
	chains, ok := s.chainCache.Get(zoneID)
	if !ok {
		var err error
		chains, err = s.catalogRepo.ListChains(ctx, zoneID)
		if err != nil {
			return nil, fmt.Errorf("failed to list chains: %w", err)
		}
		s.chainCache.Set(zoneID, chains)
	}

	completed, err := s.tasksCompleted(ctx, userID, zoneID)
	if err != nil {
		return nil, err
	}

	visible := FilterVisible(chains, func(c domain.ProductionChain) int { return c.UnlockTasksRequired }, completed)
	listings := make([]ChainListing, 0, len(visible))
	for _, chain := range visible {
		listings = append(listings, ChainListing{
			Chain:  chain,
			Locked: !IsUnlocked(chain.UnlockTasksRequired, completed),
		})
	}
	return listings, nil
}

func (s *service) InvalidateCache() {
	s.seedCache.InvalidateAll()
	s.animalCache.InvalidateAll()
	s.chainCache.InvalidateAll()
	slog.Info("Catalog cache invalidated")
}
