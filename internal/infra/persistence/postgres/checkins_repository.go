package postgres

import (
	"context"
	"time"

	"gympoint/internal/domain/entity"
	domainerrors "gympoint/internal/domain/errors"
	"gympoint/internal/domain/repository"
	"gympoint/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// checkInsRepository implements the repository.CheckInsRepository interface using GORM.
type checkInsRepository struct {
	db *gorm.DB
}

// NewCheckInsRepository is the constructor for checkInsRepository.
func NewCheckInsRepository(db *gorm.DB) repository.CheckInsRepository {
	return &checkInsRepository{db: db}
}

// Create persists a new check-in. A unique-index violation from the
// (user_id, day) safety net surfaces as the same domain error the usecase's
// own same-day check produces.
func (repo *checkInsRepository) Create(ctx context.Context, checkIn *entity.CheckIn) error {
	checkInM := fromCheckInDomain(checkIn)

	if err := repo.db.WithContext(ctx).Create(checkInM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrMaxNumberOfCheckIns.WrapMessage("user already checked in today")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrResourceNotFound.WrapMessage("user or gym does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create check-in")
	}

	return nil
}

// FindByID retrieves a single check-in by its unique ID.
func (repo *checkInsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CheckIn, error) {
	var checkInM model.CheckInModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&checkInM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCheckInNotFound
		}

		return nil, errors.Wrap(err, "failed to find check-in by id")
	}

	return toCheckInDomain(&checkInM), nil
}

// Save overwrites an existing check-in.
func (repo *checkInsRepository) Save(ctx context.Context, checkIn *entity.CheckIn) error {
	checkInM := fromCheckInDomain(checkIn)

	result := repo.db.WithContext(ctx).
		Model(&model.CheckInModel{}).
		Where("id = ?", checkInM.ID).
		Updates(map[string]any{"validated_at": checkInM.ValidatedAt})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save check-in")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCheckInNotFound
	}

	return nil
}

// FindByUserIDOnDate retrieves the user's check-in on the calendar day of
// the given instant, using the instant's own location for the day bounds.
func (repo *checkInsRepository) FindByUserIDOnDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.CheckIn, error) {
	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	startOfNextDay := startOfDay.AddDate(0, 0, 1)

	var checkInM model.CheckInModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, startOfDay, startOfNextDay).
		First(&checkInM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCheckInNotFound
		}

		return nil, errors.Wrap(err, "failed to find check-in on date")
	}

	return toCheckInDomain(&checkInM), nil
}

// FindManyByUserID retrieves one page of the user's check-ins in creation
// order. The id tiebreaker keeps the order stable when two rows share a
// timestamp.
func (repo *checkInsRepository) FindManyByUserID(ctx context.Context, userID uuid.UUID, page int) ([]*entity.CheckIn, error) {
	var checkInMs []model.CheckInModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at, id").
		Limit(repository.PageSize).
		Offset((page - 1) * repository.PageSize).
		Find(&checkInMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find check-ins by user id")
	}

	checkIns := make([]*entity.CheckIn, 0, len(checkInMs))
	for i := range checkInMs {
		checkIns = append(checkIns, toCheckInDomain(&checkInMs[i]))
	}

	return checkIns, nil
}

// CountByUserID returns the user's total number of check-ins.
func (repo *checkInsRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.CheckInModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count check-ins")
	}

	return count, nil
}

// --- Mapper Functions ---

// toCheckInDomain converts a GORM CheckInModel to a domain CheckIn entity.
func toCheckInDomain(data *model.CheckInModel) *entity.CheckIn {
	if data == nil {
		return nil
	}

	return &entity.CheckIn{
		ID:          data.ID,
		UserID:      data.UserID,
		GymID:       data.GymID,
		CreatedAt:   data.CreatedAt,
		ValidatedAt: data.ValidatedAt,
	}
}

// fromCheckInDomain converts a domain CheckIn entity to a GORM CheckInModel.
func fromCheckInDomain(data *entity.CheckIn) *model.CheckInModel {
	if data == nil {
		return nil
	}

	return &model.CheckInModel{
		ID:          data.ID,
		UserID:      data.UserID,
		GymID:       data.GymID,
		CreatedAt:   data.CreatedAt,
		ValidatedAt: data.ValidatedAt,
	}
}
