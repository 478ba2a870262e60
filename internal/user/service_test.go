package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
)

// MockUserRepo implements repository.User
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) UpsertUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func TestRegisterDefaultsToStudent(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepo)
	svc := NewService(repo)

	repo.On("UpsertUser", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.ID == "user-1" && u.Role == domain.RoleStudent && u.FullName == "Ivan Petrov"
	})).Return(nil).Once()

	user, err := svc.Register(ctx, RegisterInput{UserID: "user-1", FullName: "Ivan Petrov", Grade: 7})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStudent, user.Role)
	repo.AssertExpectations(t)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepo)
	svc := NewService(repo)

	_, err := svc.Register(ctx, RegisterInput{UserID: "user-1", Role: domain.Role("principal")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "UpsertUser", mock.Anything, mock.Anything)
}

func TestRegisterRequiresUserID(t *testing.T) {
	ctx := context.Background()
	svc := NewService(new(MockUserRepo))

	_, err := svc.Register(ctx, RegisterInput{FullName: "No ID"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetMissingUser(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepo)
	svc := NewService(repo)

	repo.On("GetUserByID", ctx, "ghost").Return(nil, domain.ErrUserNotFound).Once()

	_, err := svc.Get(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
