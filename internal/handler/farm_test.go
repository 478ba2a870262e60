package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
	"github.com/agroklass/SmartFarm_Go/internal/farm"
)

// MockFarmService implements farm.Service
type MockFarmService struct {
	mock.Mock
}

func (m *MockFarmService) GetZoneState(ctx context.Context, userID, zoneID string) (*farm.ZoneState, error) {
	args := m.Called(ctx, userID, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*farm.ZoneState), args.Error(1)
}

func (m *MockFarmService) PlantSeed(ctx context.Context, userID, zoneID string, slotIndex int, seedItemID string) (*domain.PlacedPlant, error) {
	args := m.Called(ctx, userID, zoneID, slotIndex, seedItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlacedPlant), args.Error(1)
}

func (m *MockFarmService) HarvestPlant(ctx context.Context, userID, plantID string) (*farm.CollectResult, error) {
	args := m.Called(ctx, userID, plantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*farm.CollectResult), args.Error(1)
}

func (m *MockFarmService) PlaceAnimal(ctx context.Context, userID, animalID string) (*domain.PlacedAnimal, error) {
	args := m.Called(ctx, userID, animalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlacedAnimal), args.Error(1)
}

func (m *MockFarmService) CollectAnimal(ctx context.Context, userID, placedID string) (*farm.CollectResult, error) {
	args := m.Called(ctx, userID, placedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*farm.CollectResult), args.Error(1)
}

func (m *MockFarmService) FeedAnimal(ctx context.Context, userID, placedID string) error {
	args := m.Called(ctx, userID, placedID)
	return args.Error(0)
}

func (m *MockFarmService) StartProduction(ctx context.Context, userID, zoneID string, slotIndex int, chainID string) (*domain.PlacedProduction, error) {
	args := m.Called(ctx, userID, zoneID, slotIndex, chainID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlacedProduction), args.Error(1)
}

func (m *MockFarmService) CollectProduction(ctx context.Context, userID, productionID string) (*farm.CollectResult, error) {
	args := m.Called(ctx, userID, productionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*farm.CollectResult), args.Error(1)
}

// withURLParam attaches a chi route parameter to the request context.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestHandleHarvestPlant(t *testing.T) {
	svc := new(MockFarmService)
	h := NewFarmHandler(svc)

	svc.On("HarvestPlant", mock.Anything, "user-1", "plant-1").
		Return(&farm.CollectResult{ItemID: "wheat", Quantity: 1}, nil).Once()

	body, _ := json.Marshal(CollectRequest{UserID: "user-1"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/farm/plants/plant-1/harvest", bytes.NewReader(body))
	req = withURLParam(req, "plantID", "plant-1")
	rec := httptest.NewRecorder()

	h.HandleHarvestPlant(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got farm.CollectResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "wheat", got.ItemID)
	svc.AssertExpectations(t)
}

func TestHandleHarvestPlantNotReady(t *testing.T) {
	svc := new(MockFarmService)
	h := NewFarmHandler(svc)

	svc.On("HarvestPlant", mock.Anything, "user-1", "plant-1").
		Return(nil, domain.ErrNotReady).Once()

	body, _ := json.Marshal(CollectRequest{UserID: "user-1"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/farm/plants/plant-1/harvest", bytes.NewReader(body))
	req = withURLParam(req, "plantID", "plant-1")
	rec := httptest.NewRecorder()

	h.HandleHarvestPlant(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgNotReadyError)
}

func TestHandleStartProductionInsufficientIngredients(t *testing.T) {
	svc := new(MockFarmService)
	h := NewFarmHandler(svc)

	svc.On("StartProduction", mock.Anything, "user-1", "biology", 0, "bread").
		Return(nil, domain.ErrInsufficientIngredients).Once()

	body, _ := json.Marshal(StartProductionRequest{
		UserID: "user-1", ZoneID: "biology", SlotIndex: 0, ChainID: "bread",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/farm/productions", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleStartProduction(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgInsufficientIngredError)
}

func TestHandlePlantSeedSlotOccupiedConflict(t *testing.T) {
	svc := new(MockFarmService)
	h := NewFarmHandler(svc)

	svc.On("PlantSeed", mock.Anything, "user-1", "biology", 2, "wheat").
		Return(nil, domain.ErrSlotOccupied).Once()

	body, _ := json.Marshal(PlantSeedRequest{
		UserID: "user-1", ZoneID: "biology", SlotIndex: 2, SeedItemID: "wheat",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/farm/plants", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandlePlantSeed(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgSlotOccupiedError)
}

func TestHandlePlantSeedSlotIndexOutOfRange(t *testing.T) {
	svc := new(MockFarmService)
	h := NewFarmHandler(svc)

	body, _ := json.Marshal(PlantSeedRequest{
		UserID: "user-1", ZoneID: "biology", SlotIndex: 9, SeedItemID: "wheat",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/farm/plants", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandlePlantSeed(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "PlantSeed", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleGetZoneState(t *testing.T) {
	svc := new(MockFarmService)
	h := NewFarmHandler(svc)

	svc.On("GetZoneState", mock.Anything, "user-1", "biology").Return(&farm.ZoneState{
		ZoneID: "biology",
		Plants: []farm.PlantView{{Ready: true}},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/farm/zones/biology?user_id=user-1", nil)
	req = withURLParam(req, "zoneID", "biology")
	rec := httptest.NewRecorder()

	h.HandleGetZoneState(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got farm.ZoneState
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "biology", got.ZoneID)
	assert.Len(t, got.Plants, 1)
}
