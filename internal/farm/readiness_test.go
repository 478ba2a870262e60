package farm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
)

func TestPlantReadinessMonotonic(t *testing.T) {
	planted := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	plant := &domain.PlacedPlant{PlantedAt: planted}
	seed := &domain.FarmItem{ProductionTime: 1800}

	readyAt := PlantReadyAt(plant, seed)
	assert.Equal(t, planted.Add(30*time.Minute), readyAt)

	// Once ready, every later instant stays ready.
	wasReady := false
	for _, offset := range []time.Duration{0, 10 * time.Minute, 30 * time.Minute, 30*time.Minute + time.Second, 48 * time.Hour} {
		ready := PlantReady(plant, seed, planted.Add(offset))
		if wasReady {
			assert.True(t, ready, "readiness regressed at offset %v", offset)
		}
		wasReady = wasReady || ready
	}
	assert.True(t, wasReady)
}

func TestPlantReadyAtExactBoundary(t *testing.T) {
	planted := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	plant := &domain.PlacedPlant{PlantedAt: planted}
	seed := &domain.FarmItem{ProductionTime: 60}

	assert.False(t, PlantReady(plant, seed, planted.Add(59*time.Second)))
	assert.True(t, PlantReady(plant, seed, planted.Add(60*time.Second)))
}

func TestAnimalReadyFromLastCollection(t *testing.T) {
	collected := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	animal := &domain.PlacedAnimal{LastCollectedAt: collected}
	def := &domain.FarmAnimal{ProductionTime: 3600}

	assert.False(t, AnimalReady(animal, def, collected.Add(30*time.Minute)))
	assert.True(t, AnimalReady(animal, def, collected.Add(time.Hour)))
}

func TestProductionReadyAtFinish(t *testing.T) {
	finish := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	p := &domain.PlacedProduction{FinishAt: finish}

	assert.False(t, ProductionReady(p, finish.Add(-time.Nanosecond)))
	assert.True(t, ProductionReady(p, finish))
}

func TestRemainingClampsToZero(t *testing.T) {
	readyAt := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	assert.Equal(t, 5*time.Minute, Remaining(readyAt, readyAt.Add(-5*time.Minute)))
	assert.Equal(t, time.Duration(0), Remaining(readyAt, readyAt))
	assert.Equal(t, time.Duration(0), Remaining(readyAt, readyAt.Add(time.Hour)))
}
