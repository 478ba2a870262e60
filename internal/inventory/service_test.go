package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
	"github.com/agroklass/SmartFarm_Go/internal/repository"
)

// MockInventoryRepo implements repository.Inventory
type MockInventoryRepo struct {
	mock.Mock
}

func (m *MockInventoryRepo) GetInventory(ctx context.Context, userID string) (*domain.Inventory, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

func (m *MockInventoryRepo) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.InventoryTx), args.Error(1)
}

// MockInventoryTx implements repository.InventoryTx over an in-memory
// ledger so credit/debit round trips exercise real arithmetic.
type MockInventoryTx struct {
	mock.Mock
	quantities map[string]int
	committed  map[string]int
}

func NewMockInventoryTx(initial map[string]int) *MockInventoryTx {
	q := make(map[string]int, len(initial))
	for k, v := range initial {
		q[k] = v
	}
	return &MockInventoryTx{quantities: q}
}

func (m *MockInventoryTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	if args.Error(0) == nil {
		m.committed = m.quantities
	}
	return args.Error(0)
}

func (m *MockInventoryTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInventoryTx) GetQuantitiesForUpdate(ctx context.Context, userID string, itemIDs []string) (map[string]int, error) {
	args := m.Called(ctx, userID, itemIDs)
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	out := make(map[string]int, len(itemIDs))
	for _, id := range itemIDs {
		out[id] = m.quantities[id]
	}
	return out, nil
}

func (m *MockInventoryTx) ApplyItemDelta(ctx context.Context, userID, itemID string, delta int) error {
	args := m.Called(ctx, userID, itemID, delta)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	m.quantities[itemID] += delta
	return nil
}

func TestCreditThenDebitRestoresQuantity(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInventoryRepo)
	svc := NewService(repo)

	tx := NewMockInventoryTx(map[string]int{"wheat": 7})
	repo.On("BeginTx", ctx).Return(tx, nil).Twice()
	tx.On("ApplyItemDelta", ctx, "user-1", "wheat", 5).Return(nil).Once()
	tx.On("GetQuantitiesForUpdate", ctx, "user-1", []string{"wheat"}).Return(nil, nil).Once()
	tx.On("ApplyItemDelta", ctx, "user-1", "wheat", -5).Return(nil).Once()
	tx.On("Commit", ctx).Return(nil).Twice()
	tx.On("Rollback", ctx).Return(errors.New(domain.ErrMsgTxClosed)).Maybe()

	require.NoError(t, svc.Credit(ctx, "user-1", "wheat", 5))
	require.NoError(t, svc.Debit(ctx, "user-1", "wheat", 5))

	assert.Equal(t, 7, tx.committed["wheat"])
	tx.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestDebitInsufficientQuantity(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInventoryRepo)
	svc := NewService(repo)

	tx := NewMockInventoryTx(map[string]int{"milk": 2})
	repo.On("BeginTx", ctx).Return(tx, nil).Once()
	tx.On("GetQuantitiesForUpdate", ctx, "user-1", []string{"milk"}).Return(nil, nil).Once()
	tx.On("Rollback", ctx).Return(nil).Once()

	err := svc.Debit(ctx, "user-1", "milk", 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)

	// No delta was applied and nothing committed.
	tx.AssertNotCalled(t, "ApplyItemDelta", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
	assert.Equal(t, 2, tx.quantities["milk"])
}

func TestDebitMissingItemFails(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInventoryRepo)
	svc := NewService(repo)

	tx := NewMockInventoryTx(nil)
	repo.On("BeginTx", ctx).Return(tx, nil).Once()
	tx.On("GetQuantitiesForUpdate", ctx, "user-1", []string{"egg"}).Return(nil, nil).Once()
	tx.On("Rollback", ctx).Return(nil).Once()

	err := svc.Debit(ctx, "user-1", "egg", 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
}

func TestCreditRejectsNonPositiveAmount(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInventoryRepo)
	svc := NewService(repo)

	assert.ErrorIs(t, svc.Credit(ctx, "user-1", "wheat", 0), domain.ErrInvalidInput)
	assert.ErrorIs(t, svc.Credit(ctx, "user-1", "wheat", -4), domain.ErrInvalidInput)
	assert.ErrorIs(t, svc.Debit(ctx, "user-1", "wheat", 0), domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestGetReturnsLedger(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInventoryRepo)
	svc := NewService(repo)

	want := &domain.Inventory{
		UserID: "user-1",
		Entries: []domain.InventoryEntry{
			{UserID: "user-1", ItemID: "wheat", Quantity: 3},
		},
	}
	repo.On("GetInventory", ctx, "user-1").Return(want, nil).Once()

	got, err := svc.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Quantity("wheat"))
	assert.Equal(t, 0, got.Quantity("unknown"))
}
