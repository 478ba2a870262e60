package domain

import "time"

// SubmissionStatus is the review state of a task submission.
type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

// Task is a subject assignment authored by a teacher.
type Task struct {
	ID               string    `json:"id"`
	ZoneID           string    `json:"zone_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	Instructions     string    `json:"instructions,omitempty"`
	Difficulty       int       `json:"difficulty"` // 1-4
	ExperienceReward int       `json:"experience_reward"`
	RequiredLevel    int       `json:"required_level"`
	CreatedBy        string    `json:"created_by"`
	CreatedAt        time.Time `json:"created_at,omitempty"`
}

// TaskSubmission is a student's answer awaiting review. Grading an
// approved submission is what advances zone progress.
type TaskSubmission struct {
	ID          string           `json:"id"`
	TaskID      string           `json:"task_id"`
	UserID      string           `json:"user_id"`
	Content     string           `json:"content"`
	Status      SubmissionStatus `json:"status"`
	Grade       *int             `json:"grade,omitempty"` // 1-5, set on review
	GradedBy    string           `json:"graded_by,omitempty"`
	SubmittedAt time.Time        `json:"submitted_at"`
	GradedAt    *time.Time       `json:"graded_at,omitempty"`
}
