package farm

import (
	"time"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
)

// Readiness is always recomputed from stored timestamps at the moment
// of the action. Client-reported timers are display hints only.

// PlantReadyAt returns the moment the plant becomes harvestable.
func PlantReadyAt(plant *domain.PlacedPlant, seed *domain.FarmItem) time.Time {
	return plant.PlantedAt.Add(seed.GrowthDuration())
}

// PlantReady reports whether the plant can be harvested at now.
func PlantReady(plant *domain.PlacedPlant, seed *domain.FarmItem, now time.Time) bool {
	return !now.Before(PlantReadyAt(plant, seed))
}

// AnimalReadyAt returns the next collection moment, measured from the
// last collection.
func AnimalReadyAt(animal *domain.PlacedAnimal, def *domain.FarmAnimal) time.Time {
	return animal.LastCollectedAt.Add(time.Duration(def.ProductionTime) * time.Second)
}

// AnimalReady reports whether the animal's output can be collected at now.
func AnimalReady(animal *domain.PlacedAnimal, def *domain.FarmAnimal, now time.Time) bool {
	return !now.Before(AnimalReadyAt(animal, def))
}

// ProductionReady reports whether a running chain has finished at now.
func ProductionReady(production *domain.PlacedProduction, now time.Time) bool {
	return !now.Before(production.FinishAt)
}

// Remaining returns the time left until readyAt, clamped to zero.
func Remaining(readyAt, now time.Time) time.Duration {
	if d := readyAt.Sub(now); d > 0 {
		return d
	}
	return 0
}
