package impl

import (
	"context"
	"fmt"
	"testing"

	"gympoint/internal/infra/persistence/memory"
	"gympoint/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestGymService(t *testing.T) usecase.GymUsecase {
	t.Helper()

	return NewGymService(GymServiceParams{
		GymRepo: memory.NewGymsRepository(),
		Logger:  newDiscardLogger(),
	})
}

func TestGymService_CreateGym_Success(t *testing.T) {
	service := createTestGymService(t)
	ctx := context.Background()

	description := "24/7 access"
	phone := "11999990000"
	output, err := service.CreateGym(ctx, &usecase.CreateGymInput{
		Title:       "JavaScript Gym",
		Description: &description,
		Phone:       &phone,
		Latitude:    -27.2092052,
		Longitude:   -49.6401091,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, output.Gym.ID)
	assert.Equal(t, "JavaScript Gym", output.Gym.Title)
	assert.Equal(t, "-27.2092052", output.Gym.Latitude.String())
	assert.Equal(t, "-49.6401091", output.Gym.Longitude.String())
}

func TestGymService_SearchGyms_FiltersByTitle(t *testing.T) {
	service := createTestGymService(t)
	ctx := context.Background()

	for _, title := range []string{"JavaScript Gym", "TypeScript Gym", "Pilates Studio"} {
		_, err := service.CreateGym(ctx, &usecase.CreateGymInput{Title: title})
		require.NoError(t, err)
	}

	output, err := service.SearchGyms(ctx, &usecase.SearchGymsInput{Query: "Script", Page: 1})

	require.NoError(t, err)
	require.Len(t, output.Gyms, 2)
	assert.Equal(t, "JavaScript Gym", output.Gyms[0].Title)
	assert.Equal(t, "TypeScript Gym", output.Gyms[1].Title)
}

func TestGymService_SearchGyms_Pagination(t *testing.T) {
	service := createTestGymService(t)
	ctx := context.Background()

	for i := 1; i <= 22; i++ {
		_, err := service.CreateGym(ctx, &usecase.CreateGymInput{
			Title: fmt.Sprintf("JavaScript Gym %02d", i),
		})
		require.NoError(t, err)
	}

	firstPage, err := service.SearchGyms(ctx, &usecase.SearchGymsInput{Query: "JavaScript", Page: 1})
	require.NoError(t, err)
	assert.Len(t, firstPage.Gyms, 20)

	secondPage, err := service.SearchGyms(ctx, &usecase.SearchGymsInput{Query: "JavaScript", Page: 2})
	require.NoError(t, err)
	require.Len(t, secondPage.Gyms, 2)
	assert.Equal(t, "JavaScript Gym 21", secondPage.Gyms[0].Title)
	assert.Equal(t, "JavaScript Gym 22", secondPage.Gyms[1].Title)
}

func TestGymService_FetchNearbyGyms(t *testing.T) {
	service := createTestGymService(t)
	ctx := context.Background()

	_, err := service.CreateGym(ctx, &usecase.CreateGymInput{
		Title:     "Near Gym",
		Latitude:  -27.2092052,
		Longitude: -49.6401091,
	})
	require.NoError(t, err)

	_, err = service.CreateGym(ctx, &usecase.CreateGymInput{
		Title:     "Far Gym",
		Latitude:  -27.0610928,
		Longitude: -49.5229501,
	})
	require.NoError(t, err)

	output, err := service.FetchNearbyGyms(ctx, &usecase.FetchNearbyGymsInput{
		UserLatitude:  -27.2092052,
		UserLongitude: -49.6401091,
	})

	require.NoError(t, err)
	require.Len(t, output.Gyms, 1)
	assert.Equal(t, "Near Gym", output.Gyms[0].Title)
}
