package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/agroklass/SmartFarm_Go/internal/farm"
	"github.com/agroklass/SmartFarm_Go/internal/logger"
)

// PlantSeedRequest represents the request to occupy a plant slot
type PlantSeedRequest struct {
	UserID     string `json:"user_id" validate:"required"`
	ZoneID     string `json:"zone_id" validate:"required"`
	SlotIndex  int    `json:"slot_index" validate:"gte=0,lte=5"`
	SeedItemID string `json:"seed_item_id" validate:"required"`
}

// PlaceAnimalRequest represents the request to add an animal to the pen
type PlaceAnimalRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	AnimalID string `json:"animal_id" validate:"required"`
}

// StartProductionRequest represents the request to start a chain
type StartProductionRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	ZoneID    string `json:"zone_id" validate:"required"`
	SlotIndex int    `json:"slot_index" validate:"gte=0,lte=2"`
	ChainID   string `json:"chain_id" validate:"required"`
}

// CollectRequest identifies a placed entity to collect from
type CollectRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// FarmHandler handles farm-related HTTP requests
type FarmHandler struct {
	farmSvc farm.Service
}

// NewFarmHandler creates a new farm handler
func NewFarmHandler(farmSvc farm.Service) *FarmHandler {
	return &FarmHandler{farmSvc: farmSvc}
}

// HandleGetZoneState returns the user's placed entities in a zone.
func (h *FarmHandler) HandleGetZoneState(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := queryUserID(r, w)
	if !ok {
		return
	}
	zoneID := chi.URLParam(r, "zoneID")

	state, err := h.farmSvc.GetZoneState(r.Context(), userID, zoneID)
	if err != nil {
		log.Error("Get zone state failed", "error", err, "userID", userID, "zoneID", zoneID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, state)
}

// HandlePlantSeed plants a seed into a slot.
func (h *FarmHandler) HandlePlantSeed(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req PlantSeedRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Plant seed"); err != nil {
		return
	}

	plant, err := h.farmSvc.PlantSeed(r.Context(), req.UserID, req.ZoneID, req.SlotIndex, req.SeedItemID)
	if err != nil {
		log.Error("Plant seed failed", "error", err, "userID", req.UserID, "seed", req.SeedItemID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusCreated, plant)
}

// HandleHarvestPlant harvests a ready plant.
func (h *FarmHandler) HandleHarvestPlant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	plantID := chi.URLParam(r, "plantID")
	var req CollectRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Harvest plant"); err != nil {
		return
	}

	result, err := h.farmSvc.HarvestPlant(r.Context(), req.UserID, plantID)
	if err != nil {
		log.Error("Harvest failed", "error", err, "userID", req.UserID, "plantID", plantID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandlePlaceAnimal adds an animal to the user's pen.
func (h *FarmHandler) HandlePlaceAnimal(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req PlaceAnimalRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Place animal"); err != nil {
		return
	}

	animal, err := h.farmSvc.PlaceAnimal(r.Context(), req.UserID, req.AnimalID)
	if err != nil {
		log.Error("Place animal failed", "error", err, "userID", req.UserID, "animalID", req.AnimalID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusCreated, animal)
}

// HandleCollectAnimal collects an animal's accumulated output.
func (h *FarmHandler) HandleCollectAnimal(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	placedID := chi.URLParam(r, "placedID")
	var req CollectRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Collect animal"); err != nil {
		return
	}

	result, err := h.farmSvc.CollectAnimal(r.Context(), req.UserID, placedID)
	if err != nil {
		log.Error("Collect animal failed", "error", err, "userID", req.UserID, "placedID", placedID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleFeedAnimal feeds a placed animal.
func (h *FarmHandler) HandleFeedAnimal(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	placedID := chi.URLParam(r, "placedID")
	var req CollectRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Feed animal"); err != nil {
		return
	}

	if err := h.farmSvc.FeedAnimal(r.Context(), req.UserID, placedID); err != nil {
		log.Error("Feed animal failed", "error", err, "userID", req.UserID, "placedID", placedID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Animal fed"})
}

// HandleStartProduction starts a production chain in a slot.
func (h *FarmHandler) HandleStartProduction(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req StartProductionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Start production"); err != nil {
		return
	}

	production, err := h.farmSvc.StartProduction(r.Context(), req.UserID, req.ZoneID, req.SlotIndex, req.ChainID)
	if err != nil {
		log.Error("Start production failed", "error", err, "userID", req.UserID, "chainID", req.ChainID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusCreated, production)
}

// HandleCollectProduction collects a finished production.
func (h *FarmHandler) HandleCollectProduction(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	productionID := chi.URLParam(r, "productionID")
	var req CollectRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Collect production"); err != nil {
		return
	}

	result, err := h.farmSvc.CollectProduction(r.Context(), req.UserID, productionID)
	if err != nil {
		log.Error("Collect production failed", "error", err, "userID", req.UserID, "productionID", productionID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
