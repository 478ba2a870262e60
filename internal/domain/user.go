package domain

import "time"

// Role is the coarse role supplied by the identity layer.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// User represents a registered user profile
type User struct {
	ID         string    `json:"id"`
	FullName   string    `json:"full_name"`
	Grade      int       `json:"grade,omitempty"`
	SchoolName string    `json:"school_name,omitempty"`
	Role       Role      `json:"role"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

// IsTeacher reports whether the user may author and grade tasks.
func (u *User) IsTeacher() bool {
	return u.Role == RoleTeacher || u.Role == RoleAdmin
}
