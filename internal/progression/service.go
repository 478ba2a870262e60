package progression

import (
	"context"
	"fmt"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
	"github.com/agroklass/SmartFarm_Go/internal/logger"
	"github.com/agroklass/SmartFarm_Go/internal/metrics"
	"github.com/agroklass/SmartFarm_Go/internal/repository"
)

// Service defines the progression ledger business logic
type Service interface {
	// RecordTaskCompletion advances a user's zone progress by one task
	// and the given experience reward, recomputing the derived level.
	RecordTaskCompletion(ctx context.Context, userID, zoneID string, xpReward int) (*domain.ZoneProgress, error)

	// GetProgress returns the user's progress in a zone. A missing row
	// is the valid zero state, not an error.
	GetProgress(ctx context.Context, userID, zoneID string) (*domain.ZoneProgress, error)

	// GetAllProgress returns every zone the user has progress in.
	GetAllProgress(ctx context.Context, userID string) ([]domain.ZoneProgress, error)
}

type service struct {
	progressRepo repository.Progress
}

// NewService creates a new progression service
func NewService(progressRepo repository.Progress) Service {
	return &service{progressRepo: progressRepo}
}

func (s *service) RecordTaskCompletion(ctx context.Context, userID, zoneID string, xpReward int) (*domain.ZoneProgress, error) {
	log := logger.FromContext(ctx)
	log.Info("RecordTaskCompletion called", "userID", userID, "zoneID", zoneID, "xp", xpReward)

	if xpReward < 0 {
		return nil, fmt.Errorf("%w: negative xp reward", domain.ErrInvalidInput)
	}

	tx, err := s.progressRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	progress, err := tx.GetProgressForUpdate(ctx, userID, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	if progress == nil {
		progress = domain.ZeroProgress(userID, zoneID)
	}

	progress.TasksCompleted++
	progress.Experience += xpReward
	progress.Level = domain.LevelForExperience(progress.Experience)

	if err := tx.UpsertProgress(ctx, progress); err != nil {
		return nil, fmt.Errorf("failed to upsert progress: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.TasksCompleted.WithLabelValues(zoneID).Inc()
	log.Info("Task completion recorded",
		"userID", userID,
		"zoneID", zoneID,
		"tasksCompleted", progress.TasksCompleted,
		"level", progress.Level)

	return progress, nil
}

func (s *service) GetProgress(ctx context.Context, userID, zoneID string) (*domain.ZoneProgress, error) {
	progress, err := s.progressRepo.GetProgress(ctx, userID, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	if progress == nil {
		return domain.ZeroProgress(userID, zoneID), nil
	}
	return progress, nil
}

func (s *service) GetAllProgress(ctx context.Context, userID string) ([]domain.ZoneProgress, error) {
	all, err := s.progressRepo.GetAllProgress(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get all progress: %w", err)
	}
	return all, nil
}
