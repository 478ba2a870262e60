package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/agroklass/SmartFarm_Go/internal/catalog"
	"github.com/agroklass/SmartFarm_Go/internal/logger"
)

// CatalogHandler handles content catalog HTTP requests
type CatalogHandler struct {
	catalogSvc catalog.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogSvc catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// HandleListZones returns every zone.
func (h *CatalogHandler) HandleListZones(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	zones, err := h.catalogSvc.ListZones(r.Context())
	if err != nil {
		log.Error("List zones failed", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: zones})
}

// HandleListSeeds returns the zone's seeds visible to the user:
// everything unlocked plus the next locked preview.
func (h *CatalogHandler) HandleListSeeds(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := queryUserID(r, w)
	if !ok {
		return
	}
	zoneID := chi.URLParam(r, "zoneID")

	seeds, err := h.catalogSvc.ListVisibleSeeds(r.Context(), userID, zoneID)
	if err != nil {
		log.Error("List seeds failed", "error", err, "userID", userID, "zoneID", zoneID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: seeds})
}

// HandleListAnimals returns the zone's animals visible to the user.
func (h *CatalogHandler) HandleListAnimals(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := queryUserID(r, w)
	if !ok {
		return
	}
	zoneID := chi.URLParam(r, "zoneID")

	animals, err := h.catalogSvc.ListVisibleAnimals(r.Context(), userID, zoneID)
	if err != nil {
		log.Error("List animals failed", "error", err, "userID", userID, "zoneID", zoneID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: animals})
}

// HandleListChains returns the zone's production chains visible to the
// user.
func (h *CatalogHandler) HandleListChains(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := queryUserID(r, w)
	if !ok {
		return
	}
	zoneID := chi.URLParam(r, "zoneID")

	chains, err := h.catalogSvc.ListVisibleChains(r.Context(), userID, zoneID)
	if err != nil {
		log.Error("List chains failed", "error", err, "userID", userID, "zoneID", zoneID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: chains})
}

// HandleInvalidateCache drops the catalog cache after content edits.
func (h *CatalogHandler) HandleInvalidateCache(w http.ResponseWriter, r *http.Request) {
	h.catalogSvc.InvalidateCache()
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Catalog cache invalidated"})
}
