package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
	"github.com/agroklass/SmartFarm_Go/internal/logger"
	"github.com/agroklass/SmartFarm_Go/internal/progression"
)

// ZoneProgressResponse decorates a progress row with the derived
// percent toward the next level.
type ZoneProgressResponse struct {
	domain.ZoneProgress
	ProgressPercent int `json:"progress_percent"`
}

func toProgressResponse(p *domain.ZoneProgress) ZoneProgressResponse {
	return ZoneProgressResponse{ZoneProgress: *p, ProgressPercent: p.ProgressPercent()}
}

// ProgressionHandlers handles progression HTTP requests
type ProgressionHandlers struct {
	progressionSvc progression.Service
}

// NewProgressionHandlers creates progression handlers
func NewProgressionHandlers(progressionSvc progression.Service) *ProgressionHandlers {
	return &ProgressionHandlers{progressionSvc: progressionSvc}
}

// HandleGetZoneProgress returns the user's progress in one zone.
func (h *ProgressionHandlers) HandleGetZoneProgress(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := queryUserID(r, w)
	if !ok {
		return
	}
	zoneID := chi.URLParam(r, "zoneID")

	progress, err := h.progressionSvc.GetProgress(r.Context(), userID, zoneID)
	if err != nil {
		log.Error("Get progress failed", "error", err, "userID", userID, "zoneID", zoneID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, toProgressResponse(progress))
}

// HandleGetAllProgress returns the user's progress across every zone
// with a row.
func (h *ProgressionHandlers) HandleGetAllProgress(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := queryUserID(r, w)
	if !ok {
		return
	}

	all, err := h.progressionSvc.GetAllProgress(r.Context(), userID)
	if err != nil {
		log.Error("Get all progress failed", "error", err, "userID", userID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	responses := make([]ZoneProgressResponse, 0, len(all))
	for i := range all {
		responses = append(responses, toProgressResponse(&all[i]))
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: responses})
}
