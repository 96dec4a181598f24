// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"gympoint/config"
	"gympoint/internal/domain/entity"
	domainerrors "gympoint/internal/domain/errors"
	"gympoint/internal/domain/geo"
	"gympoint/internal/domain/repository"
	"gympoint/internal/domain/service"
	"gympoint/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultValidationWindow = 20 * time.Minute

// checkInService implements the CheckInUsecase interface.
type checkInService struct {
	txManager        repository.TransactionManager
	checkInRepo      repository.CheckInsRepository
	gymRepo          repository.GymsRepository
	clock            service.Clock
	maxDistanceKm    float64
	validationWindow time.Duration
	logger           *slog.Logger
}

// CheckInServiceParams holds dependencies for checkInService, injected by Fx.
type CheckInServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CheckInRepo repository.CheckInsRepository
	GymRepo     repository.GymsRepository
	Clock       service.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCheckInService is the constructor for checkInService.
// Missing policy configuration falls back to the standard rules:
// a 10 km geofence and a 20-minute validation window.
func NewCheckInService(params CheckInServiceParams) usecase.CheckInUsecase {
	maxDistanceKm := geo.MaxCheckInDistanceKm
	validationWindow := defaultValidationWindow
	if params.Config != nil && params.Config.CheckIn != nil {
		if params.Config.CheckIn.MaxDistanceKm > 0 {
			maxDistanceKm = params.Config.CheckIn.MaxDistanceKm
		}
		if params.Config.CheckIn.ValidationWindow > 0 {
			validationWindow = params.Config.CheckIn.ValidationWindow
		}
	}

	return &checkInService{
		txManager:        params.TxManager,
		checkInRepo:      params.CheckInRepo,
		gymRepo:          params.GymRepo,
		clock:            params.Clock,
		maxDistanceKm:    maxDistanceKm,
		validationWindow: validationWindow,
		logger:           params.Logger,
	}
}

// CreateCheckIn registers a check-in after the geofence and daily-uniqueness
// gates pass. The gym lookup and the distance gate run outside the
// transaction; only the same-day check and the insert need to be atomic, and
// the persistent adapter's unique index backs that up under concurrent
// requests. Every rejection is a terminal business outcome, never retried.
func (srv *checkInService) CreateCheckIn(ctx context.Context, input *usecase.CreateCheckInInput) (*usecase.CheckInOutput, error) {
	now := srv.clock.Now()

	gym, err := srv.gymRepo.FindByID(ctx, input.GymID)
	if err != nil {
		if errors.Is(err, repository.ErrGymNotFound) {
			return nil, domainerrors.ErrResourceNotFound.WrapMessage("gym not found")
		}

		return nil, errors.Wrap(err, "failed to find gym by id")
	}

	userPoint := orb.Point{input.UserLongitude, input.UserLatitude}
	distance := geo.Distance(userPoint, gym.Point())
	if distance > srv.maxDistanceKm {
		srv.logger.Warn("Check-in outside geofence",
			slog.Any("userID", input.UserID),
			slog.Any("gymID", input.GymID),
			slog.Float64("distanceKm", distance))

		return nil, domainerrors.ErrMaxDistanceReached.WrapMessage("user is too far from the gym")
	}

	var created *entity.CheckIn
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		checkInRepo := repoFactory.CheckInRepo()

		sameDay, err := checkInRepo.FindByUserIDOnDate(ctx, input.UserID, now)
		if err != nil && !errors.Is(err, repository.ErrCheckInNotFound) {
			return errors.Wrap(err, "failed to find check-in on date")
		}
		if sameDay != nil {
			return domainerrors.ErrMaxNumberOfCheckIns.WrapMessage("user already checked in today")
		}

		checkIn := &entity.CheckIn{
			ID:        uuid.New(),
			UserID:    input.UserID,
			GymID:     input.GymID,
			CreatedAt: now,
		}

		if err := checkInRepo.Create(ctx, checkIn); err != nil {
			return errors.Wrap(err, "failed to create check-in")
		}

		created = checkIn

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute check-in transaction")
	}

	srv.logger.Debug("Check-in created",
		slog.Any("checkInID", created.ID),
		slog.Any("userID", created.UserID),
		slog.Any("gymID", created.GymID))

	return &usecase.CheckInOutput{CheckIn: created}, nil
}

// ValidateCheckIn stamps ValidatedAt on an unvalidated check-in while the
// validation window is still open. A check-in past the window is permanently
// invalid, and an already-validated check-in is rejected rather than
// silently re-stamped.
func (srv *checkInService) ValidateCheckIn(ctx context.Context, input *usecase.ValidateCheckInInput) (*usecase.CheckInOutput, error) {
	now := srv.clock.Now()

	var validated *entity.CheckIn
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		checkInRepo := repoFactory.CheckInRepo()

		checkIn, err := checkInRepo.FindByID(ctx, input.CheckInID)
		if err != nil {
			if errors.Is(err, repository.ErrCheckInNotFound) {
				return domainerrors.ErrResourceNotFound.WrapMessage("check-in not found")
			}

			return errors.Wrap(err, "failed to find check-in by id")
		}

		if checkIn.IsValidated() {
			return domainerrors.ErrCheckInAlreadyValidated.WrapMessage("check-in was already validated")
		}

		if now.Sub(checkIn.CreatedAt) > srv.validationWindow {
			srv.logger.Warn("Late check-in validation rejected",
				slog.Any("checkInID", checkIn.ID),
				slog.Duration("elapsed", now.Sub(checkIn.CreatedAt)))

			return domainerrors.ErrLateCheckInValidation.WrapMessage("validation window expired")
		}

		checkIn.ValidatedAt = &now

		if err := checkInRepo.Save(ctx, checkIn); err != nil {
			return errors.Wrap(err, "failed to save validated check-in")
		}

		validated = checkIn

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute check-in validation transaction")
	}

	srv.logger.Debug("Check-in validated", slog.Any("checkInID", validated.ID))

	return &usecase.CheckInOutput{CheckIn: validated}, nil
}

// FetchUserCheckInsHistory returns one page of the user's check-ins in
// creation order.
func (srv *checkInService) FetchUserCheckInsHistory(ctx context.Context, input *usecase.FetchCheckInsHistoryInput) (*usecase.CheckInsHistoryOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}

	checkIns, err := srv.checkInRepo.FindManyByUserID(ctx, input.UserID, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch check-ins history")
	}

	return &usecase.CheckInsHistoryOutput{CheckIns: checkIns}, nil
}

// GetUserMetrics returns the user's total check-in count.
func (srv *checkInService) GetUserMetrics(ctx context.Context, userID uuid.UUID) (*usecase.UserMetricsOutput, error) {
	count, err := srv.checkInRepo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count check-ins")
	}

	return &usecase.UserMetricsOutput{CheckInsCount: count}, nil
}
