package repository

import (
	"context"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
)

// Progress handles per-(user, zone) progression rows.
type Progress interface {
	// GetProgress returns the row, or (nil, nil) when absent. Absence
	// is a valid zero state; callers substitute domain.ZeroProgress.
	GetProgress(ctx context.Context, userID, zoneID string) (*domain.ZoneProgress, error)
	GetAllProgress(ctx context.Context, userID string) ([]domain.ZoneProgress, error)

	BeginTx(ctx context.Context) (ProgressTx, error)
}

// ProgressTx is a progression transaction.
type ProgressTx interface {
	Tx

	// GetProgressForUpdate locks the row; (nil, nil) when absent.
	GetProgressForUpdate(ctx context.Context, userID, zoneID string) (*domain.ZoneProgress, error)
	UpsertProgress(ctx context.Context, progress *domain.ZoneProgress) error
}
