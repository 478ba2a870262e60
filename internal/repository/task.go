package repository

import (
	"context"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
)

// Task handles assignments and submissions.
type Task interface {
	CreateTask(ctx context.Context, task *domain.Task) error
	GetTask(ctx context.Context, taskID string) (*domain.Task, error)
	ListTasksByZone(ctx context.Context, zoneID string) ([]domain.Task, error)

	CreateSubmission(ctx context.Context, sub *domain.TaskSubmission) error
	GetSubmission(ctx context.Context, submissionID string) (*domain.TaskSubmission, error)
	ListSubmissionsByUser(ctx context.Context, userID string) ([]domain.TaskSubmission, error)
	ListPendingSubmissions(ctx context.Context, zoneID string) ([]domain.TaskSubmission, error)
	HasSubmission(ctx context.Context, userID, taskID string) (bool, error)
	// UpdateSubmission writes a grade onto a still-pending submission.
	// Once a submission has left the pending state the write fails with
	// domain.ErrInvalidInput, so at most one grader wins.
	UpdateSubmission(ctx context.Context, sub *domain.TaskSubmission) error
}
