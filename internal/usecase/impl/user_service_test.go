package impl

import (
	"context"
	"testing"

	domainerrors "gympoint/internal/domain/errors"
	"gympoint/internal/infra/auth"
	"gympoint/internal/infra/persistence/memory"
	"gympoint/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *memory.UsersRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	cfg := newTestConfig()
	userRepo := memory.NewUsersRepository()
	gymRepo := memory.NewGymsRepository()
	checkInRepo := memory.NewCheckInsRepository()
	txManager := memory.NewTransactionManager(userRepo, gymRepo, checkInRepo)

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	output, err := fixtures.service.Register(ctx, &usecase.RegisterInput{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "secret-password",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
	assert.Equal(t, "john@example.com", output.User.Email)
	assert.NotEqual(t, "secret-password", output.User.PasswordHash)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "secret-password",
	}

	_, err := fixtures.service.Register(ctx, input)
	require.NoError(t, err)

	_, err = fixtures.service.Register(ctx, input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Authenticate_Success(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	registered, err := fixtures.service.Register(ctx, &usecase.RegisterInput{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	output, err := fixtures.service.Authenticate(ctx, &usecase.AuthenticateInput{
		Email:    "john@example.com",
		Password: "secret-password",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, output.AccessToken)
	assert.NotEmpty(t, output.RefreshToken)
	assert.Equal(t, registered.User.ID, output.User.ID)
}

func TestUserService_Authenticate_WrongPassword(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	_, err := fixtures.service.Register(ctx, &usecase.RegisterInput{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	_, err = fixtures.service.Authenticate(ctx, &usecase.AuthenticateInput{
		Email:    "john@example.com",
		Password: "wrong-password",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Authenticate_UnknownEmail(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	_, err := fixtures.service.Authenticate(ctx, &usecase.AuthenticateInput{
		Email:    "missing@example.com",
		Password: "secret-password",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_RefreshToken_Success(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	_, err := fixtures.service.Register(ctx, &usecase.RegisterInput{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	authenticated, err := fixtures.service.Authenticate(ctx, &usecase.AuthenticateInput{
		Email:    "john@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	output, err := fixtures.service.RefreshToken(ctx, authenticated.RefreshToken)

	require.NoError(t, err)
	assert.NotEmpty(t, output.AccessToken)
	assert.NotEmpty(t, output.RefreshToken)
}

func TestUserService_RefreshToken_Garbage(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	_, err := fixtures.service.RefreshToken(ctx, "not-a-token")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestUserService_GetUserProfile_Success(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	registered, err := fixtures.service.Register(ctx, &usecase.RegisterInput{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	output, err := fixtures.service.GetUserProfile(ctx, registered.User.ID)

	require.NoError(t, err)
	assert.Equal(t, "John Doe", output.User.Name)
	assert.Equal(t, "john@example.com", output.User.Email)
}

func TestUserService_GetUserProfile_NotFound(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	_, err := fixtures.service.GetUserProfile(ctx, uuid.New())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrResourceNotFound))
}
