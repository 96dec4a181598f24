// Package service defines interfaces for core, stateless domain logic.
package service

import "time"

// Clock abstracts "now" for the check-in use-cases. The daily-uniqueness and
// validation-window rules read the current instant through this interface so
// tests can pin and advance time without global time mocking.
type Clock interface {
	// Now returns the current instant.
	Now() time.Time
}
