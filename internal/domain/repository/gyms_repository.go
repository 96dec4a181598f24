package repository

import (
	"context"
	"errors"

	"gympoint/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ErrGymNotFound is returned when no gym matches the lookup.
var ErrGymNotFound = errors.New("gym not found")

// PageSize is the fixed page length for every paginated listing.
// Pages are 1-indexed.
const PageSize = 20

// GymsRepository defines the standard operations for gym persistence.
type GymsRepository interface {
	// FindByID retrieves a single gym by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Gym, error)

	// Create persists a new gym entity to the storage.
	Create(ctx context.Context, gym *entity.Gym) error

	// FindManyNearby retrieves every gym within the check-in radius of the
	// given point, boundary inclusive. Adapters may push the distance
	// computation into the storage engine as long as they reproduce the
	// geo package's formula and threshold.
	FindManyNearby(ctx context.Context, userPoint orb.Point) ([]*entity.Gym, error)

	// SearchMany retrieves one page of gyms whose title contains the query
	// as a substring, matched exactly as stored.
	SearchMany(ctx context.Context, query string, page int) ([]*entity.Gym, error)
}
