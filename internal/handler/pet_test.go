package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
)

// MockPetService implements pet.Service
type MockPetService struct {
	mock.Mock
}

func (m *MockPetService) Create(ctx context.Context, userID, name string, petType domain.PetType) (*domain.Pet, error) {
	args := m.Called(ctx, userID, name, petType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pet), args.Error(1)
}

func (m *MockPetService) Get(ctx context.Context, userID string) (*domain.Pet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pet), args.Error(1)
}

func (m *MockPetService) Care(ctx context.Context, userID string, action domain.PetAction) (*domain.Pet, error) {
	args := m.Called(ctx, userID, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pet), args.Error(1)
}

func (m *MockPetService) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestHandleCreatePet(t *testing.T) {
	svc := new(MockPetService)
	h := NewPetHandler(svc)

	svc.On("Create", mock.Anything, "user-1", "Burenka", domain.PetCow).Return(&domain.Pet{
		ID: "pet-1", UserID: "user-1", Name: "Burenka", Type: domain.PetCow,
		Hunger: 100, Thirst: 100, Happiness: 100,
	}, nil).Once()

	body, _ := json.Marshal(CreatePetRequest{UserID: "user-1", Name: "Burenka", Type: "cow"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pet", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleCreatePet(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got domain.Pet
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "pet-1", got.ID)
	assert.Equal(t, 100, got.Hunger)
	svc.AssertExpectations(t)
}

func TestHandleCreatePetInvalidType(t *testing.T) {
	svc := new(MockPetService)
	h := NewPetHandler(svc)

	body, _ := json.Marshal(CreatePetRequest{UserID: "user-1", Name: "Rex", Type: "dog"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pet", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleCreatePet(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleCreatePetDuplicateConflict(t *testing.T) {
	svc := new(MockPetService)
	h := NewPetHandler(svc)

	svc.On("Create", mock.Anything, "user-1", "Burenka", domain.PetCow).
		Return(nil, domain.ErrPetAlreadyExists).Once()

	body, _ := json.Marshal(CreatePetRequest{UserID: "user-1", Name: "Burenka", Type: "cow"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pet", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleCreatePet(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgPetAlreadyExistsError)
}

func TestHandleGetPetMissingUserID(t *testing.T) {
	h := NewPetHandler(new(MockPetService))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pet", nil)
	rec := httptest.NewRecorder()

	h.HandleGetPet(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgMissingUserID)
}

func TestHandleGetPetNotFound(t *testing.T) {
	svc := new(MockPetService)
	h := NewPetHandler(svc)

	svc.On("Get", mock.Anything, "user-1").Return(nil, domain.ErrPetNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pet?user_id=user-1", nil)
	rec := httptest.NewRecorder()

	h.HandleGetPet(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgPetNotFoundError)
}

func TestHandleCarePetRanAwayConflict(t *testing.T) {
	svc := new(MockPetService)
	h := NewPetHandler(svc)

	svc.On("Care", mock.Anything, "user-1", domain.PetActionFeed).
		Return(nil, domain.ErrPetRanAway).Once()

	body, _ := json.Marshal(PetCareRequest{UserID: "user-1", Action: "feed"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pet/care", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleCarePet(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgPetRanAwayError)
}
