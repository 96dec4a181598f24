// Package geo provides the great-circle distance computation shared by the
// check-in geofence and the nearby-gyms filter. The persistent adapter pushes
// the same formula into SQL; both paths must stay within 0.01 km of each
// other, so the formula and Earth radius here are the single source of truth.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	// EarthRadiusKm is the Earth radius used by every distance computation,
	// in-process and in SQL.
	EarthRadiusKm = 6371.0

	// MaxCheckInDistanceKm is the geofence radius: a check-in is accepted
	// only when the user is at most this far from the gym. The boundary is
	// inclusive, and the nearby-gyms filter applies the same policy.
	MaxCheckInDistanceKm = 10.0
)

// Distance returns the haversine great-circle distance between two points
// in kilometers. Points follow the orb convention: {longitude, latitude}.
// Pure and deterministic: symmetric, and zero for identical points.
func Distance(a, b orb.Point) float64 {
	lat1 := radians(a.Lat())
	lat2 := radians(b.Lat())
	dLat := radians(b.Lat() - a.Lat())
	dLon := radians(b.Lon() - a.Lon())

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	return EarthRadiusKm * 2 * math.Asin(math.Sqrt(h))
}

// WithinCheckInRadius reports whether two points are within the check-in
// geofence, boundary inclusive.
func WithinCheckInRadius(a, b orb.Point) bool {
	return Distance(a, b) <= MaxCheckInDistanceKm
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
