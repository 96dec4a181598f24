package repository

import (
	"context"
	"errors"
	"time"

	"gympoint/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCheckInNotFound is returned when no check-in matches the lookup.
var ErrCheckInNotFound = errors.New("check-in not found")

// CheckInsRepository defines the standard operations for check-in persistence.
type CheckInsRepository interface {
	// Create persists a new check-in entity to the storage.
	Create(ctx context.Context, checkIn *entity.CheckIn) error

	// FindByID retrieves a single check-in by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CheckIn, error)

	// Save performs a full-record update of an existing check-in.
	// Used by validation to persist the ValidatedAt transition.
	Save(ctx context.Context, checkIn *entity.CheckIn) error

	// FindByUserIDOnDate retrieves the user's check-in whose CreatedAt
	// falls on the same calendar day as date (start-of-day to end-of-day
	// in date's location, not a rolling 24h window).
	FindByUserIDOnDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.CheckIn, error)

	// FindManyByUserID retrieves one page of the user's check-ins in
	// creation order.
	FindManyByUserID(ctx context.Context, userID uuid.UUID, page int) ([]*entity.CheckIn, error)

	// CountByUserID returns the total number of check-ins for the user.
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}
