package handler

import (
	"net/http"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
	"github.com/agroklass/SmartFarm_Go/internal/logger"
	"github.com/agroklass/SmartFarm_Go/internal/user"
)

// RegisterUserRequest represents the registration payload from the
// identity layer.
type RegisterUserRequest struct {
	UserID     string `json:"user_id" validate:"required,max=100"`
	FullName   string `json:"full_name" validate:"required,max=200"`
	Grade      int    `json:"grade" validate:"gte=0,lte=11"`
	SchoolName string `json:"school_name" validate:"max=200"`
	Role       string `json:"role" validate:"omitempty,oneof=student teacher admin"`
}

// HandleRegisterUser creates or refreshes a user profile.
func HandleRegisterUser(userSvc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RegisterUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
			return
		}

		registered, err := userSvc.Register(r.Context(), user.RegisterInput{
			UserID:     req.UserID,
			FullName:   req.FullName,
			Grade:      req.Grade,
			SchoolName: req.SchoolName,
			Role:       domain.Role(req.Role),
		})
		if err != nil {
			log.Error("Register user failed", "error", err, "userID", req.UserID)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, registered)
	}
}

// HandleGetUser returns a user profile.
func HandleGetUser(userSvc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := queryUserID(r, w)
		if !ok {
			return
		}

		u, err := userSvc.Get(r.Context(), userID)
		if err != nil {
			log.Error("Get user failed", "error", err, "userID", userID)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, u)
	}
}
