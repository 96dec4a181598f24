package impl

import (
	"context"
	"log/slog"

	"gympoint/internal/domain/entity"
	"gympoint/internal/domain/repository"
	"gympoint/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// gymService implements the GymUsecase interface.
type gymService struct {
	gymRepo repository.GymsRepository
	logger  *slog.Logger
}

// GymServiceParams holds dependencies for gymService, injected by Fx.
type GymServiceParams struct {
	fx.In

	GymRepo repository.GymsRepository
	Logger  *slog.Logger
}

// NewGymService is the constructor for gymService.
func NewGymService(params GymServiceParams) usecase.GymUsecase {
	return &gymService{
		gymRepo: params.GymRepo,
		logger:  params.Logger,
	}
}

// CreateGym registers a new gym. Coordinates are stored as exact decimals so
// repeated reads never drift from the registered location.
func (srv *gymService) CreateGym(ctx context.Context, input *usecase.CreateGymInput) (*usecase.CreateGymOutput, error) {
	gym := &entity.Gym{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Phone:       input.Phone,
		Latitude:    decimal.NewFromFloat(input.Latitude),
		Longitude:   decimal.NewFromFloat(input.Longitude),
	}

	if err := srv.gymRepo.Create(ctx, gym); err != nil {
		return nil, errors.Wrap(err, "failed to create gym")
	}

	srv.logger.Debug("Gym created", slog.Any("gymID", gym.ID), slog.String("title", gym.Title))

	return &usecase.CreateGymOutput{Gym: gym}, nil
}

// SearchGyms returns one page of gyms whose title contains the query.
func (srv *gymService) SearchGyms(ctx context.Context, input *usecase.SearchGymsInput) (*usecase.GymsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}

	gyms, err := srv.gymRepo.SearchMany(ctx, input.Query, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search gyms")
	}

	return &usecase.GymsOutput{Gyms: gyms}, nil
}

// FetchNearbyGyms returns the gyms within the check-in radius of the user's
// position.
func (srv *gymService) FetchNearbyGyms(ctx context.Context, input *usecase.FetchNearbyGymsInput) (*usecase.GymsOutput, error) {
	userPoint := orb.Point{input.UserLongitude, input.UserLatitude}

	gyms, err := srv.gymRepo.FindManyNearby(ctx, userPoint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch nearby gyms")
	}

	return &usecase.GymsOutput{Gyms: gyms}, nil
}
