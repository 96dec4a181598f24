// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer. Absence is always reported through the
// sentinel errors below, never swallowed, so the use-case layer decides
// which domain-level error a missing record becomes.
package repository

import (
	"context"
	"errors"

	"gympoint/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UsersRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not on a concrete adapter.
type UsersRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	// Emails are matched exactly as stored.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error
}
