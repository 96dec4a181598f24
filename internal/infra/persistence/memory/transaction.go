package memory

import (
	"context"

	"gympoint/internal/domain/repository"
)

// TransactionManager is an in-memory implementation of
// repository.TransactionManager. The backing slices have no notion of
// rollback, so Execute only provides the factory shape the usecases expect.
type TransactionManager struct {
	factory *repositoryFactory
}

// NewTransactionManager is the constructor for TransactionManager. The given
// repositories are the ones handed to every transactional function.
func NewTransactionManager(
	userRepo *UsersRepository,
	gymRepo *GymsRepository,
	checkInRepo *CheckInsRepository,
) *TransactionManager {
	return &TransactionManager{
		factory: &repositoryFactory{
			userRepo:    userRepo,
			gymRepo:     gymRepo,
			checkInRepo: checkInRepo,
		},
	}
}

// Execute runs the given function against the shared repositories.
func (tm *TransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(tm.factory)
}

// repositoryFactory implements repository.RepositoryFactory over the
// in-memory repositories.
type repositoryFactory struct {
	userRepo    *UsersRepository
	gymRepo     *GymsRepository
	checkInRepo *CheckInsRepository
}

// UserRepo returns the users repository.
func (f *repositoryFactory) UserRepo() repository.UsersRepository {
	return f.userRepo
}

// GymRepo returns the gyms repository.
func (f *repositoryFactory) GymRepo() repository.GymsRepository {
	return f.gymRepo
}

// CheckInRepo returns the check-ins repository.
func (f *repositoryFactory) CheckInRepo() repository.CheckInsRepository {
	return f.checkInRepo
}
