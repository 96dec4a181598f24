package usecase

import (
	"context"

	"gympoint/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCheckInInput defines the data required to check in at a gym.
// The coordinates are the user's reported position at check-in time.
type CreateCheckInInput struct {
	UserID        uuid.UUID
	GymID         uuid.UUID
	UserLatitude  float64
	UserLongitude float64
}

// ValidateCheckInInput identifies the check-in a staff member validates.
type ValidateCheckInInput struct {
	CheckInID uuid.UUID
}

// FetchCheckInsHistoryInput defines a paginated history lookup.
type FetchCheckInsHistoryInput struct {
	UserID uuid.UUID
	Page   int
}

// CheckInOutput returns a single check-in record.
type CheckInOutput struct {
	CheckIn *entity.CheckIn
}

// CheckInsHistoryOutput returns one page of a user's check-ins.
type CheckInsHistoryOutput struct {
	CheckIns []*entity.CheckIn
}

// UserMetricsOutput returns the user's total check-in count.
type UserMetricsOutput struct {
	CheckInsCount int64
}

// CheckInUsecase defines the interface for the check-in lifecycle:
// creation under the geofence and daily-uniqueness rules, staff validation
// under the expiry rule, history and metrics.
type CheckInUsecase interface {
	CreateCheckIn(ctx context.Context, input *CreateCheckInInput) (*CheckInOutput, error)
	ValidateCheckIn(ctx context.Context, input *ValidateCheckInInput) (*CheckInOutput, error)
	FetchUserCheckInsHistory(ctx context.Context, input *FetchCheckInsHistoryInput) (*CheckInsHistoryOutput, error)
	GetUserMetrics(ctx context.Context, userID uuid.UUID) (*UserMetricsOutput, error)
}
