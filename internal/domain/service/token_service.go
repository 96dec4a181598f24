// Package service defines interfaces for core, stateless domain logic.
package service

import (
	"gympoint/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenClaims carries the identity extracted from a verified token.
type TokenClaims struct {
	UserID uuid.UUID   // The authenticated user's ID (the token's "sub").
	Role   entity.Role // The role embedded in the access token.
}

// TokenService defines the interface for issuing and verifying session tokens.
// The core never parses tokens itself; the delivery layer uses this service
// to resolve the authenticated user before a use-case is invoked.
type TokenService interface {
	// GenerateTokens creates a new access/refresh token pair for a user.
	GenerateTokens(userID uuid.UUID, role entity.Role) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken verifies an access token and returns its claims.
	ValidateAccessToken(token string) (*TokenClaims, error)

	// ValidateRefreshToken verifies a refresh token and returns its claims.
	ValidateRefreshToken(token string) (*TokenClaims, error)
}
