package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/agroklass/SmartFarm_Go/internal/logger"
	"github.com/agroklass/SmartFarm_Go/internal/task"
)

// CreateTaskRequest represents a teacher's new assignment
type CreateTaskRequest struct {
	CreatorID        string `json:"creator_id" validate:"required"`
	ZoneID           string `json:"zone_id" validate:"required"`
	Title            string `json:"title" validate:"required,max=200"`
	Description      string `json:"description" validate:"max=2000"`
	Instructions     string `json:"instructions" validate:"max=5000"`
	Difficulty       int    `json:"difficulty" validate:"required,min=1,max=4"`
	ExperienceReward int    `json:"experience_reward" validate:"gte=0"`
	RequiredLevel    int    `json:"required_level" validate:"gte=0"`
}

// SubmitTaskRequest represents a student's answer
type SubmitTaskRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	Content string `json:"content" validate:"required,max=10000"`
}

// GradeRequest represents a teacher's review decision
type GradeRequest struct {
	ReviewerID string `json:"reviewer_id" validate:"required"`
	Approve    bool   `json:"approve"`
	Grade      int    `json:"grade" validate:"required,min=1,max=5"`
}

// TaskHandler handles assignment HTTP requests
type TaskHandler struct {
	taskSvc task.Service
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskSvc task.Service) *TaskHandler {
	return &TaskHandler{taskSvc: taskSvc}
}

// HandleCreateTask authors a new assignment.
func (h *TaskHandler) HandleCreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req CreateTaskRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create task"); err != nil {
		return
	}

	created, err := h.taskSvc.CreateTask(r.Context(), req.CreatorID, task.CreateTaskInput{
		ZoneID:           req.ZoneID,
		Title:            req.Title,
		Description:      req.Description,
		Instructions:     req.Instructions,
		Difficulty:       req.Difficulty,
		ExperienceReward: req.ExperienceReward,
		RequiredLevel:    req.RequiredLevel,
	})
	if err != nil {
		log.Error("Create task failed", "error", err, "creatorID", req.CreatorID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// HandleListTasks returns a zone's assignments.
func (h *TaskHandler) HandleListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	zoneID := chi.URLParam(r, "zoneID")
	viewerID := r.URL.Query().Get("user_id")

	tasks, err := h.taskSvc.ListTasks(r.Context(), zoneID, viewerID)
	if err != nil {
		log.Error("List tasks failed", "error", err, "zoneID", zoneID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: tasks})
}

// HandleSubmitTask records a student's answer.
func (h *TaskHandler) HandleSubmitTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	taskID := chi.URLParam(r, "taskID")
	var req SubmitTaskRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Submit task"); err != nil {
		return
	}

	sub, err := h.taskSvc.Submit(r.Context(), req.UserID, taskID, req.Content)
	if err != nil {
		log.Error("Submit task failed", "error", err, "userID", req.UserID, "taskID", taskID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusCreated, sub)
}

// HandleListSubmissions returns the user's own submissions.
func (h *TaskHandler) HandleListSubmissions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := queryUserID(r, w)
	if !ok {
		return
	}

	subs, err := h.taskSvc.ListSubmissions(r.Context(), userID)
	if err != nil {
		log.Error("List submissions failed", "error", err, "userID", userID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: subs})
}

// HandleListPending returns a zone's ungraded submissions for review.
func (h *TaskHandler) HandleListPending(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	reviewerID := r.URL.Query().Get("reviewer_id")
	if reviewerID == "" {
		respondError(w, http.StatusBadRequest, "reviewer_id is required")
		return
	}
	zoneID := chi.URLParam(r, "zoneID")

	subs, err := h.taskSvc.ListPending(r.Context(), reviewerID, zoneID)
	if err != nil {
		log.Error("List pending failed", "error", err, "reviewerID", reviewerID, "zoneID", zoneID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: subs})
}

// HandleGradeSubmission reviews a pending submission.
func (h *TaskHandler) HandleGradeSubmission(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	submissionID := chi.URLParam(r, "submissionID")
	var req GradeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Grade submission"); err != nil {
		return
	}

	sub, err := h.taskSvc.Grade(r.Context(), req.ReviewerID, submissionID, req.Approve, req.Grade)
	if err != nil {
		log.Error("Grade failed", "error", err, "reviewerID", req.ReviewerID, "submissionID", submissionID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, sub)
}
