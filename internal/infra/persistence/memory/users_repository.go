// Package memory provides in-memory repository implementations backed by
// plain slices. They preserve insertion order and are safe for concurrent
// use, which makes them suitable for tests and local development without a
// database.
package memory

import (
	"context"
	"sync"
	"time"

	"gympoint/internal/domain/entity"
	"gympoint/internal/domain/repository"

	"github.com/google/uuid"
)

// UsersRepository is an in-memory implementation of
// repository.UsersRepository.
type UsersRepository struct {
	mu    sync.RWMutex
	users []entity.User
}

// NewUsersRepository is the constructor for UsersRepository.
func NewUsersRepository() *UsersRepository {
	return &UsersRepository{}
}

// FindByID finds a user by their unique ID.
func (repo *UsersRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for i := range repo.users {
		if repo.users[i].ID == id {
			user := repo.users[i]

			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// FindByEmail finds a user by their e-mail address, matched exactly as
// stored.
func (repo *UsersRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for i := range repo.users {
		if repo.users[i].Email == email {
			user := repo.users[i]

			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// Create persists a new user, stamping CreatedAt when the caller left it
// unset.
func (repo *UsersRepository) Create(_ context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	repo.users = append(repo.users, *user)

	return nil
}
