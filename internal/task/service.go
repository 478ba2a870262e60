package task

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
	"github.com/agroklass/SmartFarm_Go/internal/logger"
	"github.com/agroklass/SmartFarm_Go/internal/progression"
	"github.com/agroklass/SmartFarm_Go/internal/repository"
)

// CreateTaskInput carries the teacher-authored task fields.
type CreateTaskInput struct {
	ZoneID           string
	Title            string
	Description      string
	Instructions     string
	Difficulty       int
	ExperienceReward int
	RequiredLevel    int
}

// Service defines the assignment workflow: teachers author tasks,
// students submit answers, teachers grade them. An approved grade is
// the only path that advances zone progress.
type Service interface {
	// CreateTask authors a new assignment. Only teachers may create
	// tasks; everyone else gets domain.ErrNotTeacher.
	CreateTask(ctx context.Context, creatorID string, input CreateTaskInput) (*domain.Task, error)

	GetTask(ctx context.Context, taskID string) (*domain.Task, error)

	// ListTasks returns a zone's tasks. A non-empty viewerID hides
	// tasks above the viewer's level in that zone.
	ListTasks(ctx context.Context, zoneID, viewerID string) ([]domain.Task, error)

	// Submit records a student's answer. One submission per (user,
	// task); a second attempt fails with domain.ErrAlreadySubmitted.
	Submit(ctx context.Context, userID, taskID, content string) (*domain.TaskSubmission, error)

	ListSubmissions(ctx context.Context, userID string) ([]domain.TaskSubmission, error)

	// ListPending returns a zone's ungraded submissions for review.
	// Teacher only.
	ListPending(ctx context.Context, reviewerID, zoneID string) ([]domain.TaskSubmission, error)

	// Grade reviews a pending submission. Approval records the task
	// completion and credits the task's experience reward to the
	// student's zone progress; rejection only marks the submission.
	Grade(ctx context.Context, reviewerID, submissionID string, approve bool, grade int) (*domain.TaskSubmission, error)
}

type service struct {
	taskRepo    repository.Task
	userRepo    repository.User
	progression progression.Service
	now         func() time.Time
}

// NewService creates a new task service
func NewService(taskRepo repository.Task, userRepo repository.User, progressionSvc progression.Service) Service {
	return &service{
		taskRepo:    taskRepo,
		userRepo:    userRepo,
		progression: progressionSvc,
		now:         time.Now,
	}
}

func (s *service) CreateTask(ctx context.Context, creatorID string, input CreateTaskInput) (*domain.Task, error) {
	log := logger.FromContext(ctx)

	if err := s.requireTeacher(ctx, creatorID); err != nil {
		return nil, err
	}
	if input.Title == "" {
		return nil, fmt.Errorf("%w: task title is required", domain.ErrInvalidInput)
	}
	if input.Difficulty < 1 || input.Difficulty > 4 {
		return nil, fmt.Errorf("%w: difficulty %d out of range", domain.ErrInvalidInput, input.Difficulty)
	}
	if input.ExperienceReward < 0 {
		return nil, fmt.Errorf("%w: negative experience reward", domain.ErrInvalidInput)
	}

	task := &domain.Task{
		ID:               uuid.NewString(),
		ZoneID:           input.ZoneID,
		Title:            input.Title,
		Description:      input.Description,
		Instructions:     input.Instructions,
		Difficulty:       input.Difficulty,
		ExperienceReward: input.ExperienceReward,
		RequiredLevel:    input.RequiredLevel,
		CreatedBy:        creatorID,
		CreatedAt:        s.now(),
	}
	if err := s.taskRepo.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	log.Info("Task created", "taskID", task.ID, "zoneID", task.ZoneID, "createdBy", creatorID)
	return task, nil
}

func (s *service) GetTask(ctx context.Context, taskID string) (*domain.Task, error) {
	return s.taskRepo.GetTask(ctx, taskID)
}

func (s *service) ListTasks(ctx context.Context, zoneID, viewerID string) ([]domain.Task, error) {
	tasks, err := s.taskRepo.ListTasksByZone(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	if viewerID == "" {
		return tasks, nil
	}

	progress, err := s.progression.GetProgress(ctx, viewerID, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	visible := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.RequiredLevel <= progress.Level {
			visible = append(visible, t)
		}
	}
	return visible, nil
}

func (s *service) Submit(ctx context.Context, userID, taskID, content string) (*domain.TaskSubmission, error) {
	log := logger.FromContext(ctx)

	if content == "" {
		return nil, fmt.Errorf("%w: submission content is required", domain.ErrInvalidInput)
	}
	if _, err := s.taskRepo.GetTask(ctx, taskID); err != nil {
		return nil, err
	}

	exists, err := s.taskRepo.HasSubmission(ctx, userID, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to check submission: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: task %s", domain.ErrAlreadySubmitted, taskID)
	}

	sub := &domain.TaskSubmission{
		ID:          uuid.NewString(),
		TaskID:      taskID,
		UserID:      userID,
		Content:     content,
		Status:      domain.SubmissionPending,
		SubmittedAt: s.now(),
	}
	if err := s.taskRepo.CreateSubmission(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}

	log.Info("Task submitted", "taskID", taskID, "userID", userID, "submissionID", sub.ID)
	return sub, nil
}

func (s *service) ListSubmissions(ctx context.Context, userID string) ([]domain.TaskSubmission, error) {
	subs, err := s.taskRepo.ListSubmissionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return subs, nil
}

func (s *service) ListPending(ctx context.Context, reviewerID, zoneID string) ([]domain.TaskSubmission, error) {
	if err := s.requireTeacher(ctx, reviewerID); err != nil {
		return nil, err
	}
	subs, err := s.taskRepo.ListPendingSubmissions(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending submissions: %w", err)
	}
	return subs, nil
}

func (s *service) Grade(ctx context.Context, reviewerID, submissionID string, approve bool, grade int) (*domain.TaskSubmission, error) {
	log := logger.FromContext(ctx)

	if err := s.requireTeacher(ctx, reviewerID); err != nil {
		return nil, err
	}
	if grade < 1 || grade > 5 {
		return nil, fmt.Errorf("%w: grade %d out of range", domain.ErrInvalidInput, grade)
	}

	sub, err := s.taskRepo.GetSubmission(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if sub.Status != domain.SubmissionPending {
		return nil, fmt.Errorf("%w: submission %s is already graded", domain.ErrInvalidInput, submissionID)
	}

	task, err := s.taskRepo.GetTask(ctx, sub.TaskID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	sub.Status = domain.SubmissionRejected
	if approve {
		sub.Status = domain.SubmissionApproved
	}
	sub.Grade = &grade
	sub.GradedBy = reviewerID
	sub.GradedAt = &now
	if err := s.taskRepo.UpdateSubmission(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to update submission: %w", err)
	}

	if approve {
		if _, err := s.progression.RecordTaskCompletion(ctx, sub.UserID, task.ZoneID, task.ExperienceReward); err != nil {
			return nil, fmt.Errorf("failed to record task completion: %w", err)
		}
	}

	log.Info("Submission graded", "submissionID", submissionID, "status", sub.Status,
		"grade", grade, "gradedBy", reviewerID)
	return sub, nil
}

func (s *service) requireTeacher(ctx context.Context, userID string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.IsTeacher() {
		return fmt.Errorf("%w: user %s", domain.ErrNotTeacher, userID)
	}
	return nil
}
