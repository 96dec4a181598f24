// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/shopspring/decimal"
)

// Gym represents a registered gym and its geographic position.
// Coordinates are stored as exact decimals so that repeated distance
// comparisons never drift between the in-process path and the SQL path.
type Gym struct {
	ID          uuid.UUID       // The unique identifier for the gym.
	Title       string          // The gym's display name, used for text search.
	Description *string         // Optional free-form description.
	Phone       *string         // Optional contact phone number.
	Latitude    decimal.Decimal // Latitude in degrees, within [-90, 90].
	Longitude   decimal.Decimal // Longitude in degrees, within [-180, 180].
	CreatedAt   time.Time       // Timestamp of when this gym was registered.
}

// Point returns the gym's coordinates as an orb.Point (lon/lat order).
func (g *Gym) Point() orb.Point {
	return orb.Point{g.Longitude.InexactFloat64(), g.Latitude.InexactFloat64()}
}
