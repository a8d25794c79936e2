package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a person allowed to ask questions. The ID is the opaque identifier
// that query history is recorded against.
type User struct {
	ID        uuid.UUID `json:"id"`
	Sub       string    `json:"sub"`      // OIDC subject identifier, or "pki:<username>"
	Username  string    `json:"username"` // Extracted from PKI CN e.g. "ravik" from "Ravi Kumar (ravik)"
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName returns the best human-readable name for the user.
func (u *User) DisplayName() string {
	switch {
	case u.Name != "":
		return u.Name
	case u.Username != "":
		return u.Username
	default:
		return u.Email
	}
}
