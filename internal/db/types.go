package db

import (
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered user.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"` // never serialized
	PasswordSet  bool      `json:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
}

// Evaluation is a stored evaluation outcome. Only the final score and the
// missing-everywhere skills are persisted; full results are never cached.
type Evaluation struct {
	ID            uuid.UUID `json:"id"`
	UserEmail     string    `json:"user_email,omitempty"`
	FinalScore    int       `json:"final_score"`
	MissingSkills []string  `json:"missing_skills"`
	CreatedAt     time.Time `json:"created_at"`
}
