package handler

import (
	"net/http"

	"github.com/agroklass/SmartFarm_Go/internal/inventory"
	"github.com/agroklass/SmartFarm_Go/internal/logger"
)

// HandleGetInventory returns the user's item ledger.
func HandleGetInventory(inventorySvc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := queryUserID(r, w)
		if !ok {
			return
		}

		inv, err := inventorySvc.Get(r.Context(), userID)
		if err != nil {
			log.Error("Get inventory failed", "error", err, "userID", userID)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, inv)
	}
}
