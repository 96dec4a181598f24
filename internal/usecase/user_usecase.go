// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gympoint/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// Field-shape validation (email format, password length) happens in the
// delivery layer before the use-case is invoked.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthenticateInput defines the data required for a user to authenticate.
type AuthenticateInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user.
type RegisterOutput struct {
	User *entity.User
}

// AuthenticateOutput returns the authenticated user and their token pair.
type AuthenticateOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns the re-issued token pair. The refresh token is
// rotated on every exchange.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// GetUserProfileOutput returns the requested user's profile.
type GetUserProfileOutput struct {
	User *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error)
	RefreshToken(ctx context.Context, refreshToken string) (*RefreshTokenOutput, error)
	GetUserProfile(ctx context.Context, userID uuid.UUID) (*GetUserProfileOutput, error)
}
