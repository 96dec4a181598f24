package memory

import (
	"context"
	"sync"
	"time"

	"gympoint/internal/domain/entity"
	"gympoint/internal/domain/repository"

	"github.com/google/uuid"
)

// CheckInsRepository is an in-memory implementation of
// repository.CheckInsRepository.
type CheckInsRepository struct {
	mu       sync.RWMutex
	checkIns []entity.CheckIn
}

// NewCheckInsRepository is the constructor for CheckInsRepository.
func NewCheckInsRepository() *CheckInsRepository {
	return &CheckInsRepository{}
}

// Create persists a new check-in. CreatedAt is taken from the entity, never
// stamped here, so the caller's clock stays the single time source.
func (repo *CheckInsRepository) Create(_ context.Context, checkIn *entity.CheckIn) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.checkIns = append(repo.checkIns, *checkIn)

	return nil
}

// FindByID finds a check-in by its unique ID.
func (repo *CheckInsRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.CheckIn, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for i := range repo.checkIns {
		if repo.checkIns[i].ID == id {
			checkIn := repo.checkIns[i]

			return &checkIn, nil
		}
	}

	return nil, repository.ErrCheckInNotFound
}

// Save overwrites an existing check-in.
func (repo *CheckInsRepository) Save(_ context.Context, checkIn *entity.CheckIn) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.checkIns {
		if repo.checkIns[i].ID == checkIn.ID {
			repo.checkIns[i] = *checkIn

			return nil
		}
	}

	return repository.ErrCheckInNotFound
}

// FindByUserIDOnDate finds the user's check-in on the calendar day of the
// given instant, using the instant's own location for the day bounds.
func (repo *CheckInsRepository) FindByUserIDOnDate(_ context.Context, userID uuid.UUID, date time.Time) (*entity.CheckIn, error) {
	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	startOfNextDay := startOfDay.AddDate(0, 0, 1)

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for i := range repo.checkIns {
		checkIn := repo.checkIns[i]
		if checkIn.UserID != userID {
			continue
		}
		if checkIn.CreatedAt.Before(startOfDay) || !checkIn.CreatedAt.Before(startOfNextDay) {
			continue
		}

		return &checkIn, nil
	}

	return nil, repository.ErrCheckInNotFound
}

// FindManyByUserID returns one page of the user's check-ins in insertion
// order.
func (repo *CheckInsRepository) FindManyByUserID(_ context.Context, userID uuid.UUID, page int) ([]*entity.CheckIn, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	matched := make([]*entity.CheckIn, 0)
	for i := range repo.checkIns {
		if repo.checkIns[i].UserID == userID {
			checkIn := repo.checkIns[i]
			matched = append(matched, &checkIn)
		}
	}

	return paginate(matched, page), nil
}

// CountByUserID returns the user's total number of check-ins.
func (repo *CheckInsRepository) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var count int64
	for i := range repo.checkIns {
		if repo.checkIns[i].UserID == userID {
			count++
		}
	}

	return count, nil
}
