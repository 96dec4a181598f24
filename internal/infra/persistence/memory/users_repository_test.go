package memory

import (
	"context"
	"testing"

	"gympoint/internal/domain/entity"
	"gympoint/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersRepository_FindByEmail(t *testing.T) {
	repo := NewUsersRepository()
	ctx := context.Background()

	user := &entity.User{
		ID:    uuid.New(),
		Name:  "John Doe",
		Email: "john@example.com",
		Role:  entity.RoleMember,
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.False(t, user.CreatedAt.IsZero())

	found, err := repo.FindByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.FindByEmail(ctx, "John@Example.com")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	_, err = repo.FindByEmail(ctx, "missing@example.com")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestUsersRepository_FindByID(t *testing.T) {
	repo := NewUsersRepository()
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Name: "John Doe", Email: "john@example.com"}
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, found.Email)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}
