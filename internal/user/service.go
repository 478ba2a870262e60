package user

import (
	"context"
	"fmt"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
	"github.com/agroklass/SmartFarm_Go/internal/logger"
	"github.com/agroklass/SmartFarm_Go/internal/repository"
)

// RegisterInput carries the profile fields supplied by the identity
// layer on first login.
type RegisterInput struct {
	UserID     string
	FullName   string
	Grade      int
	SchoolName string
	Role       domain.Role
}

// Service defines the user profile business logic
type Service interface {
	// Register creates or refreshes a profile. Registration is
	// idempotent: repeated calls update the mutable fields.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)

	Get(ctx context.Context, userID string) (*domain.User, error)
}

type service struct {
	userRepo repository.User
}

// NewService creates a new user service
func NewService(userRepo repository.User) Service {
	return &service{userRepo: userRepo}
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	log := logger.FromContext(ctx)

	if input.UserID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	role := input.Role
	if role == "" {
		role = domain.RoleStudent
	}
	switch role {
	case domain.RoleStudent, domain.RoleTeacher, domain.RoleAdmin:
	default:
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, input.Role)
	}

	user := &domain.User{
		ID:         input.UserID,
		FullName:   input.FullName,
		Grade:      input.Grade,
		SchoolName: input.SchoolName,
		Role:       role,
	}
	if err := s.userRepo.UpsertUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	log.Info("User registered", "userID", user.ID, "role", user.Role)
	return user, nil
}

func (s *service) Get(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}
