package handler

import (
	"net/http"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
	"github.com/agroklass/SmartFarm_Go/internal/logger"
	"github.com/agroklass/SmartFarm_Go/internal/pet"
)

// CreatePetRequest represents the request to adopt a companion
type CreatePetRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Name   string `json:"name" validate:"required,max=50"`
	Type   string `json:"type" validate:"required,pet_type"`
}

// PetCareRequest represents a feed/water/play action
type PetCareRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Action string `json:"action" validate:"required,pet_action"`
}

// PetHandler handles companion HTTP requests
type PetHandler struct {
	petSvc pet.Service
}

// NewPetHandler creates a new pet handler
func NewPetHandler(petSvc pet.Service) *PetHandler {
	return &PetHandler{petSvc: petSvc}
}

// HandleCreatePet adopts a new companion.
func (h *PetHandler) HandleCreatePet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req CreatePetRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create pet"); err != nil {
		return
	}

	created, err := h.petSvc.Create(r.Context(), req.UserID, req.Name, domain.PetType(req.Type))
	if err != nil {
		log.Error("Create pet failed", "error", err, "userID", req.UserID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// HandleGetPet returns the companion with decayed stats.
func (h *PetHandler) HandleGetPet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := queryUserID(r, w)
	if !ok {
		return
	}

	p, err := h.petSvc.Get(r.Context(), userID)
	if err != nil {
		log.Error("Get pet failed", "error", err, "userID", userID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, p)
}

// HandleCarePet applies a care action.
func (h *PetHandler) HandleCarePet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req PetCareRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Care pet"); err != nil {
		return
	}

	p, err := h.petSvc.Care(r.Context(), req.UserID, domain.PetAction(req.Action))
	if err != nil {
		log.Error("Pet care failed", "error", err, "userID", req.UserID, "action", req.Action)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, p)
}

// HandleDeletePet removes the companion.
func (h *PetHandler) HandleDeletePet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := queryUserID(r, w)
	if !ok {
		return
	}

	if err := h.petSvc.Delete(r.Context(), userID); err != nil {
		log.Error("Delete pet failed", "error", err, "userID", userID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Pet deleted"})
}
