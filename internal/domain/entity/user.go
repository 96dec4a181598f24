// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account, member or admin.
// PasswordHash never leaves the domain; delivery DTOs map around it.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Name         string    // The user's display name.
	Email        string    // The user's login identifier, unique across the system.
	PasswordHash string    // The bcrypt hash of the user's password.
	Role         Role      // The user's role (member or admin).
	CreatedAt    time.Time // Timestamp of when this account was created.
}
