package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, nothing more can be written.
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgUserNotFoundError       = "User not found"
	ErrMsgZoneNotFoundError       = "Zone not found"
	ErrMsgItemNotFoundError       = "Item not found"
	ErrMsgPlantNotFoundError      = "Plant not found"
	ErrMsgAnimalNotFoundError     = "Animal not found"
	ErrMsgProductionNotFoundError = "Production not found"
	ErrMsgChainNotFoundError      = "Production chain not found"
	ErrMsgTaskNotFoundError       = "Task not found"
	ErrMsgSubmissionNotFoundError = "Submission not found"
	ErrMsgPetNotFoundError        = "You don't have a pet yet"

	ErrMsgInsufficientItemsError  = "Not enough items"
	ErrMsgInsufficientIngredError = "Not enough ingredients to start this production"
	ErrMsgNotReadyError           = "Not ready yet. Come back later"
	ErrMsgSlotOccupiedError       = "That slot is already taken"
	ErrMsgItemLockedError         = "Locked. Complete more tasks to unlock"
	ErrMsgPetAlreadyExistsError   = "You already have a pet"
	ErrMsgPetRanAwayError         = "Your pet has run away"
	ErrMsgAlreadySubmittedError   = "You have already submitted this task"
	ErrMsgNotTeacherError         = "Only teachers can do that"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes
// and messages users can understand and act on.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrZoneNotFound):
		return http.StatusNotFound, ErrMsgZoneNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrPlantNotFound):
		return http.StatusNotFound, ErrMsgPlantNotFoundError
	case errors.Is(err, domain.ErrAnimalNotFound):
		return http.StatusNotFound, ErrMsgAnimalNotFoundError
	case errors.Is(err, domain.ErrProductionNotFound):
		return http.StatusNotFound, ErrMsgProductionNotFoundError
	case errors.Is(err, domain.ErrChainNotFound):
		return http.StatusNotFound, ErrMsgChainNotFoundError
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, ErrMsgTaskNotFoundError
	case errors.Is(err, domain.ErrSubmissionNotFound):
		return http.StatusNotFound, ErrMsgSubmissionNotFoundError
	case errors.Is(err, domain.ErrPetNotFound):
		return http.StatusNotFound, ErrMsgPetNotFoundError
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return http.StatusBadRequest, ErrMsgInsufficientItemsError
	case errors.Is(err, domain.ErrInsufficientIngredients):
		return http.StatusBadRequest, ErrMsgInsufficientIngredError
	case errors.Is(err, domain.ErrNotReady):
		return http.StatusBadRequest, ErrMsgNotReadyError
	case errors.Is(err, domain.ErrSlotOccupied):
		return http.StatusConflict, ErrMsgSlotOccupiedError
	case errors.Is(err, domain.ErrItemLocked):
		return http.StatusForbidden, ErrMsgItemLockedError
	case errors.Is(err, domain.ErrPetAlreadyExists):
		return http.StatusConflict, ErrMsgPetAlreadyExistsError
	case errors.Is(err, domain.ErrPetRanAway):
		return http.StatusConflict, ErrMsgPetRanAwayError
	case errors.Is(err, domain.ErrAlreadySubmitted):
		return http.StatusConflict, ErrMsgAlreadySubmittedError
	case errors.Is(err, domain.ErrNotTeacher):
		return http.StatusForbidden, ErrMsgNotTeacherError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
