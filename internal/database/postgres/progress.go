package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
	"github.com/agroklass/SmartFarm_Go/internal/repository"
)

// ProgressRepository implements the progress repository for PostgreSQL
type ProgressRepository struct {
	db *pgxpool.Pool
}

// NewProgressRepository creates a new ProgressRepository
func NewProgressRepository(db *pgxpool.Pool) repository.Progress {
	return &ProgressRepository{db: db}
}

const progressColumns = `user_id, zone_id, tasks_completed, experience, level`

func scanProgress(row pgx.Row) (*domain.ZoneProgress, error) {
	var progress domain.ZoneProgress
	err := row.Scan(
		&progress.UserID,
		&progress.ZoneID,
		&progress.TasksCompleted,
		&progress.Experience,
		&progress.Level,
	)
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// GetProgress returns the row, or (nil, nil) when no row exists yet.
func (r *ProgressRepository) GetProgress(ctx context.Context, userID, zoneID string) (*domain.ZoneProgress, error) {
	query := `SELECT ` + progressColumns + ` FROM user_progress WHERE user_id = $1 AND zone_id = $2`
	progress, err := scanProgress(r.db.QueryRow(ctx, query, userID, zoneID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetProgress, err)
	}
	return progress, nil
}

func (r *ProgressRepository) GetAllProgress(ctx context.Context, userID string) ([]domain.ZoneProgress, error) {
	query := `SELECT ` + progressColumns + ` FROM user_progress WHERE user_id = $1 ORDER BY zone_id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetProgress, err)
	}
	defer rows.Close()

	var progresses []domain.ZoneProgress
	for rows.Next() {
		progress, err := scanProgress(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan progress: %w", err)
		}
		progresses = append(progresses, *progress)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetProgress, err)
	}

	return progresses, nil
}

// BeginTx starts a progress transaction
func (r *ProgressRepository) BeginTx(ctx context.Context) (repository.ProgressTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, beginTxErr(err)
	}
	return &progressTx{tx: tx}, nil
}

type progressTx struct {
	tx pgx.Tx
}

func (t *progressTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *progressTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetProgressForUpdate locks the row; (nil, nil) when absent.
func (t *progressTx) GetProgressForUpdate(ctx context.Context, userID, zoneID string) (*domain.ZoneProgress, error) {
	query := `
		SELECT ` + progressColumns + `
		FROM user_progress
		WHERE user_id = $1 AND zone_id = $2
		FOR UPDATE
	`
	progress, err := scanProgress(t.tx.QueryRow(ctx, query, userID, zoneID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetProgress, err)
	}
	return progress, nil
}

func (t *progressTx) UpsertProgress(ctx context.Context, progress *domain.ZoneProgress) error {
	query := `
		INSERT INTO user_progress (user_id, zone_id, tasks_completed, experience, level)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, zone_id)
		DO UPDATE SET tasks_completed = $3, experience = $4, level = $5
	`
	_, err := t.tx.Exec(ctx, query,
		progress.UserID, progress.ZoneID,
		progress.TasksCompleted, progress.Experience, progress.Level,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertProgress, err)
	}
	return nil
}
