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

// TaskRepository implements the task repository for PostgreSQL
type TaskRepository struct {
	db *pgxpool.Pool
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *pgxpool.Pool) repository.Task {
	return &TaskRepository{db: db}
}

const taskColumns = `task_id, zone_id, title, description, instructions, difficulty, experience_reward, required_level, created_by, created_at`

func scanTask(row pgx.Row) (*domain.Task, error) {
	var task domain.Task
	var description, instructions pgtype.Text
	err := row.Scan(
		&task.ID,
		&task.ZoneID,
		&task.Title,
		&description,
		&instructions,
		&task.Difficulty,
		&task.ExperienceReward,
		&task.RequiredLevel,
		&task.CreatedBy,
		&task.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	task.Description = textOrEmpty(description)
	task.Instructions = textOrEmpty(instructions)
	return &task, nil
}

func (r *TaskRepository) CreateTask(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (task_id, zone_id, title, description, instructions, difficulty, experience_reward, required_level, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query,
		task.ID, task.ZoneID, task.Title, task.Description, task.Instructions,
		task.Difficulty, task.ExperienceReward, task.RequiredLevel,
		task.CreatedBy, task.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateTask, err)
	}
	return nil
}

func (r *TaskRepository) GetTask(ctx context.Context, taskID string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE task_id = $1`
	task, err := scanTask(r.db.QueryRow(ctx, query, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, taskID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTask, err)
	}
	return task, nil
}

func (r *TaskRepository) ListTasksByZone(ctx context.Context, zoneID string) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE zone_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, zoneID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListTasks, err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListTasks, err)
	}

	return tasks, nil
}

const submissionColumns = `submission_id, task_id, user_id, content, status, grade, graded_by, submitted_at, graded_at`

func scanSubmission(row pgx.Row) (*domain.TaskSubmission, error) {
	var sub domain.TaskSubmission
	var grade pgtype.Int4
	var gradedBy pgtype.Text
	var gradedAt pgtype.Timestamptz
	err := row.Scan(
		&sub.ID,
		&sub.TaskID,
		&sub.UserID,
		&sub.Content,
		&sub.Status,
		&grade,
		&gradedBy,
		&sub.SubmittedAt,
		&gradedAt,
	)
	if err != nil {
		return nil, err
	}
	sub.Grade = ptrInt(grade)
	sub.GradedBy = textOrEmpty(gradedBy)
	sub.GradedAt = ptrTime(gradedAt)
	return &sub, nil
}

// CreateSubmission inserts a pending submission; the (task, user)
// unique constraint surfaces as domain.ErrAlreadySubmitted.
func (r *TaskRepository) CreateSubmission(ctx context.Context, sub *domain.TaskSubmission) error {
	query := `
		INSERT INTO task_submissions (submission_id, task_id, user_id, content, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query,
		sub.ID, sub.TaskID, sub.UserID, sub.Content, string(sub.Status), sub.SubmittedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: task %s", domain.ErrAlreadySubmitted, sub.TaskID)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateSubmission, err)
	}
	return nil
}

func (r *TaskRepository) GetSubmission(ctx context.Context, submissionID string) (*domain.TaskSubmission, error) {
	query := `SELECT ` + submissionColumns + ` FROM task_submissions WHERE submission_id = $1`
	sub, err := scanSubmission(r.db.QueryRow(ctx, query, submissionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSubmissionNotFound, submissionID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSubmission, err)
	}
	return sub, nil
}

func (r *TaskRepository) ListSubmissionsByUser(ctx context.Context, userID string) ([]domain.TaskSubmission, error) {
	query := `SELECT ` + submissionColumns + ` FROM task_submissions WHERE user_id = $1 ORDER BY submitted_at DESC`
	return r.listSubmissions(ctx, query, userID)
}

// ListPendingSubmissions returns the review queue for one zone, oldest
// first.
func (r *TaskRepository) ListPendingSubmissions(ctx context.Context, zoneID string) ([]domain.TaskSubmission, error) {
	query := `
		SELECT s.submission_id, s.task_id, s.user_id, s.content, s.status, s.grade, s.graded_by, s.submitted_at, s.graded_at
		FROM task_submissions s
		JOIN tasks t ON t.task_id = s.task_id
		WHERE t.zone_id = $1 AND s.status = $2
		ORDER BY s.submitted_at
	`
	return r.listSubmissions(ctx, query, zoneID, string(domain.SubmissionPending))
}

func (r *TaskRepository) listSubmissions(ctx context.Context, query string, args ...any) ([]domain.TaskSubmission, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSubmissions, err)
	}
	defer rows.Close()

	var subs []domain.TaskSubmission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		subs = append(subs, *sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSubmissions, err)
	}

	return subs, nil
}

func (r *TaskRepository) HasSubmission(ctx context.Context, userID, taskID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM task_submissions WHERE user_id = $1 AND task_id = $2)`
	if err := r.db.QueryRow(ctx, query, userID, taskID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToGetSubmission, err)
	}
	return exists, nil
}

// UpdateSubmission records a grade. The pending guard in the WHERE
// clause makes grading single-shot: the row transitions out of pending
// exactly once, so concurrent graders cannot both claim it.
func (r *TaskRepository) UpdateSubmission(ctx context.Context, sub *domain.TaskSubmission) error {
	query := `
		UPDATE task_submissions
		SET status = $1, grade = $2, graded_by = $3, graded_at = $4
		WHERE submission_id = $5 AND status = $6
	`
	var gradedBy pgtype.Text
	if sub.GradedBy != "" {
		gradedBy = pgtype.Text{String: sub.GradedBy, Valid: true}
	}
	tag, err := r.db.Exec(ctx, query,
		string(sub.Status), int4OrNil(sub.Grade), gradedBy,
		timestamptzOrNil(sub.GradedAt), sub.ID, string(domain.SubmissionPending),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateSubmission, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: submission %s is not pending", domain.ErrInvalidInput, sub.ID)
	}
	return nil
}
