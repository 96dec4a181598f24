package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This lets the use-case layer group a check-then-act sequence into one unit
// of work without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise it is committed. All repository operations obtained from the
	// factory use the same underlying transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
type RepositoryFactory interface {
	// UserRepo returns a UsersRepository bound to the current transaction.
	UserRepo() UsersRepository

	// GymRepo returns a GymsRepository bound to the current transaction.
	GymRepo() GymsRepository

	// CheckInRepo returns a CheckInsRepository bound to the current transaction.
	CheckInRepo() CheckInsRepository
}
