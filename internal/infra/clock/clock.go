// Package clock provides the concrete time source for the application.
package clock

import (
	"time"

	"gympoint/internal/domain/service"
)

// systemClock reads the wall clock.
type systemClock struct{}

// NewSystemClock is the constructor for systemClock.
// It returns the implementation as a service.Clock interface.
func NewSystemClock() service.Clock {
	return &systemClock{}
}

// Now returns the current local time.
func (systemClock) Now() time.Time {
	return time.Now()
}
