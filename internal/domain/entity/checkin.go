// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CheckIn records a user presenting at a gym at a point in time.
// CreatedAt is the authoritative clock for every time-window rule.
// ValidatedAt moves from nil to a timestamp exactly once and never reverts.
type CheckIn struct {
	ID          uuid.UUID  // The unique identifier for the check-in.
	UserID      uuid.UUID  // The user who checked in.
	GymID       uuid.UUID  // The gym the user checked in at.
	CreatedAt   time.Time  // The moment the check-in was created.
	ValidatedAt *time.Time // When staff validated the check-in; nil = unvalidated.
}

// IsValidated reports whether staff already validated this check-in.
func (c *CheckIn) IsValidated() bool {
	return c.ValidatedAt != nil
}
