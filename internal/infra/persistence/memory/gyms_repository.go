package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"gympoint/internal/domain/entity"
	"gympoint/internal/domain/geo"
	"gympoint/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// GymsRepository is an in-memory implementation of
// repository.GymsRepository.
type GymsRepository struct {
	mu   sync.RWMutex
	gyms []entity.Gym
}

// NewGymsRepository is the constructor for GymsRepository.
func NewGymsRepository() *GymsRepository {
	return &GymsRepository{}
}

// FindByID finds a gym by its unique ID.
func (repo *GymsRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Gym, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for i := range repo.gyms {
		if repo.gyms[i].ID == id {
			gym := repo.gyms[i]

			return &gym, nil
		}
	}

	return nil, repository.ErrGymNotFound
}

// Create persists a new gym, stamping CreatedAt when the caller left it
// unset.
func (repo *GymsRepository) Create(_ context.Context, gym *entity.Gym) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if gym.CreatedAt.IsZero() {
		gym.CreatedAt = time.Now()
	}

	repo.gyms = append(repo.gyms, *gym)

	return nil
}

// FindManyNearby returns every gym within the check-in radius of the given
// point, in insertion order.
func (repo *GymsRepository) FindManyNearby(_ context.Context, userPoint orb.Point) ([]*entity.Gym, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	nearby := make([]*entity.Gym, 0)
	for i := range repo.gyms {
		if geo.WithinCheckInRadius(userPoint, repo.gyms[i].Point()) {
			gym := repo.gyms[i]
			nearby = append(nearby, &gym)
		}
	}

	return nearby, nil
}

// SearchMany returns one page of gyms whose title contains the query as a
// substring, matched exactly as stored, in insertion order.
func (repo *GymsRepository) SearchMany(_ context.Context, query string, page int) ([]*entity.Gym, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	matched := make([]*entity.Gym, 0)
	for i := range repo.gyms {
		if strings.Contains(repo.gyms[i].Title, query) {
			gym := repo.gyms[i]
			matched = append(matched, &gym)
		}
	}

	return paginate(matched, page), nil
}

// paginate slices out one page of PageSize items. Pages past the end come
// back empty, never as an error.
func paginate[T any](items []T, page int) []T {
	start := (page - 1) * repository.PageSize
	if start >= len(items) {
		return []T{}
	}

	end := start + repository.PageSize
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}
