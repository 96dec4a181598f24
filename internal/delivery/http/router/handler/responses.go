// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"gympoint/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// userResponse is the public view of a user. The password hash never leaves
// the service.
type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
	}
}

type gymResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description,omitempty"`
	Phone       *string         `json:"phone,omitempty"`
	Latitude    decimal.Decimal `json:"latitude"`
	Longitude   decimal.Decimal `json:"longitude"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func toGymResponse(gym *entity.Gym) gymResponse {
	return gymResponse{
		ID:          gym.ID,
		Title:       gym.Title,
		Description: gym.Description,
		Phone:       gym.Phone,
		Latitude:    gym.Latitude,
		Longitude:   gym.Longitude,
		CreatedAt:   gym.CreatedAt,
	}
}

func toGymResponses(gyms []*entity.Gym) []gymResponse {
	responses := make([]gymResponse, 0, len(gyms))
	for _, gym := range gyms {
		responses = append(responses, toGymResponse(gym))
	}

	return responses
}

type checkInResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	GymID       uuid.UUID  `json:"gymId"`
	CreatedAt   time.Time  `json:"createdAt"`
	ValidatedAt *time.Time `json:"validatedAt,omitempty"`
}

func toCheckInResponse(checkIn *entity.CheckIn) checkInResponse {
	return checkInResponse{
		ID:          checkIn.ID,
		UserID:      checkIn.UserID,
		GymID:       checkIn.GymID,
		CreatedAt:   checkIn.CreatedAt,
		ValidatedAt: checkIn.ValidatedAt,
	}
}

func toCheckInResponses(checkIns []*entity.CheckIn) []checkInResponse {
	responses := make([]checkInResponse, 0, len(checkIns))
	for _, checkIn := range checkIns {
		responses = append(responses, toCheckInResponse(checkIn))
	}

	return responses
}
