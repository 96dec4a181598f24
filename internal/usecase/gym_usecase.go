package usecase

import (
	"context"

	"gympoint/internal/domain/entity"
)

// CreateGymInput defines the data required to register a new gym.
type CreateGymInput struct {
	Title       string
	Description *string
	Phone       *string
	Latitude    float64
	Longitude   float64
}

// SearchGymsInput defines a paginated text search over gym titles.
type SearchGymsInput struct {
	Query string
	Page  int
}

// FetchNearbyGymsInput carries the user's reported coordinates.
type FetchNearbyGymsInput struct {
	UserLatitude  float64
	UserLongitude float64
}

// CreateGymOutput returns the newly created gym.
type CreateGymOutput struct {
	Gym *entity.Gym
}

// GymsOutput returns a list of gyms for search and nearby lookups.
type GymsOutput struct {
	Gyms []*entity.Gym
}

// GymUsecase defines the interface for gym-related business operations.
type GymUsecase interface {
	CreateGym(ctx context.Context, input *CreateGymInput) (*CreateGymOutput, error)
	SearchGyms(ctx context.Context, input *SearchGymsInput) (*GymsOutput, error)
	FetchNearbyGyms(ctx context.Context, input *FetchNearbyGymsInput) (*GymsOutput, error)
}
