package repository

import (
	"context"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
)

// User defines the interface for user profile persistence
type User interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	UpsertUser(ctx context.Context, user *domain.User) error
}
