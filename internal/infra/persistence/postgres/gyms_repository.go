package postgres

import (
	"context"

	"gympoint/internal/domain/entity"
	domainerrors "gympoint/internal/domain/errors"
	"gympoint/internal/domain/geo"
	"gympoint/internal/domain/repository"
	"gympoint/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gymsRepository implements the repository.GymsRepository interface using GORM.
type gymsRepository struct {
	db *gorm.DB
}

// NewGymsRepository is the constructor for gymsRepository.
func NewGymsRepository(db *gorm.DB) repository.GymsRepository {
	return &gymsRepository{db: db}
}

// FindByID retrieves a single gym by its unique ID.
func (repo *gymsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Gym, error) {
	var gymM model.GymModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&gymM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGymNotFound
		}

		return nil, errors.Wrap(err, "failed to find gym by id")
	}

	return toGymDomain(&gymM), nil
}

// Create persists a new gym entity to the database.
func (repo *gymsRepository) Create(ctx context.Context, gym *entity.Gym) error {
	gymM := fromGymDomain(gym)

	if err := repo.db.WithContext(ctx).Create(gymM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create gym")
	}

	gym.CreatedAt = gymM.CreatedAt

	return nil
}

// FindManyNearby retrieves the gyms within the check-in radius of the given
// point. The distance runs in SQL with the same haversine formula and earth
// radius the domain uses, so the database and the in-process gate never
// disagree about the boundary.
func (repo *gymsRepository) FindManyNearby(ctx context.Context, userPoint orb.Point) ([]*entity.Gym, error) {
	var gymMs []model.GymModel
	err := repo.db.WithContext(ctx).
		Where(`(? * 2 * asin(sqrt(
			power(sin(radians(latitude - ?) / 2), 2) +
			cos(radians(?)) * cos(radians(latitude)) *
			power(sin(radians(longitude - ?) / 2), 2)
		))) <= ?`,
			geo.EarthRadiusKm, userPoint.Lat(), userPoint.Lat(), userPoint.Lon(), geo.MaxCheckInDistanceKm).
		Order("created_at, id").
		Find(&gymMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find nearby gyms")
	}

	return toGymDomains(gymMs), nil
}

// SearchMany retrieves one page of gyms whose title contains the query as a
// substring, matched exactly as stored, in creation order.
func (repo *gymsRepository) SearchMany(ctx context.Context, query string, page int) ([]*entity.Gym, error) {
	var gymMs []model.GymModel
	err := repo.db.WithContext(ctx).
		Where("title LIKE ?", "%"+query+"%").
		Order("created_at, id").
		Limit(repository.PageSize).
		Offset((page - 1) * repository.PageSize).
		Find(&gymMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search gyms")
	}

	return toGymDomains(gymMs), nil
}

// --- Mapper Functions ---

// toGymDomain converts a GORM GymModel to a domain Gym entity.
func toGymDomain(data *model.GymModel) *entity.Gym {
	if data == nil {
		return nil
	}

	return &entity.Gym{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Phone:       data.Phone,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		CreatedAt:   data.CreatedAt,
	}
}

func toGymDomains(data []model.GymModel) []*entity.Gym {
	gyms := make([]*entity.Gym, 0, len(data))
	for i := range data {
		gyms = append(gyms, toGymDomain(&data[i]))
	}

	return gyms
}

// fromGymDomain converts a domain Gym entity to a GORM GymModel for persistence.
func fromGymDomain(data *entity.Gym) *model.GymModel {
	if data == nil {
		return nil
	}

	return &model.GymModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Phone:       data.Phone,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
	}
}
