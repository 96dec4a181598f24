package memory

import (
	"context"
	"testing"
	"time"

	"gympoint/internal/domain/entity"
	"gympoint/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckIn(userID uuid.UUID, createdAt time.Time) *entity.CheckIn {
	return &entity.CheckIn{
		ID:        uuid.New(),
		UserID:    userID,
		GymID:     uuid.New(),
		CreatedAt: createdAt,
	}
}

func TestCheckInsRepository_FindByUserIDOnDate_DayBounds(t *testing.T) {
	repo := NewCheckInsRepository()
	ctx := context.Background()
	userID := uuid.New()

	// 23:59 on January 9th.
	lateNight := time.Date(2026, time.January, 9, 23, 59, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, newCheckIn(userID, lateNight)))

	// Querying the 9th finds it, querying the 10th does not.
	found, err := repo.FindByUserIDOnDate(ctx, userID, time.Date(2026, time.January, 9, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, lateNight, found.CreatedAt)

	_, err = repo.FindByUserIDOnDate(ctx, userID, time.Date(2026, time.January, 10, 0, 1, 0, 0, time.UTC))
	assert.True(t, errors.Is(err, repository.ErrCheckInNotFound))
}

func TestCheckInsRepository_FindByUserIDOnDate_IgnoresOtherUsers(t *testing.T) {
	repo := NewCheckInsRepository()
	ctx := context.Background()
	now := time.Date(2026, time.January, 10, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, newCheckIn(uuid.New(), now)))

	_, err := repo.FindByUserIDOnDate(ctx, uuid.New(), now)
	assert.True(t, errors.Is(err, repository.ErrCheckInNotFound))
}

func TestCheckInsRepository_FindManyByUserID_PreservesInsertionOrder(t *testing.T) {
	repo := NewCheckInsRepository()
	ctx := context.Background()
	userID := uuid.New()
	base := time.Date(2026, time.January, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 22; i++ {
		require.NoError(t, repo.Create(ctx, newCheckIn(userID, base.AddDate(0, 0, i))))
	}

	firstPage, err := repo.FindManyByUserID(ctx, userID, 1)
	require.NoError(t, err)
	require.Len(t, firstPage, 20)
	assert.Equal(t, base, firstPage[0].CreatedAt)

	secondPage, err := repo.FindManyByUserID(ctx, userID, 2)
	require.NoError(t, err)
	require.Len(t, secondPage, 2)
	assert.Equal(t, base.AddDate(0, 0, 20), secondPage[0].CreatedAt)
	assert.Equal(t, base.AddDate(0, 0, 21), secondPage[1].CreatedAt)

	thirdPage, err := repo.FindManyByUserID(ctx, userID, 3)
	require.NoError(t, err)
	assert.Empty(t, thirdPage)
}

func TestCheckInsRepository_Save_UnknownID(t *testing.T) {
	repo := NewCheckInsRepository()
	ctx := context.Background()

	err := repo.Save(ctx, newCheckIn(uuid.New(), time.Now()))
	assert.True(t, errors.Is(err, repository.ErrCheckInNotFound))
}

func TestCheckInsRepository_CountByUserID(t *testing.T) {
	repo := NewCheckInsRepository()
	ctx := context.Background()
	userID := uuid.New()
	base := time.Date(2026, time.January, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, newCheckIn(userID, base.AddDate(0, 0, i))))
	}
	require.NoError(t, repo.Create(ctx, newCheckIn(uuid.New(), base)))

	count, err := repo.CountByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}
