package router

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gympoint/config"
	"gympoint/internal/delivery/http/middleware"
	"gympoint/internal/delivery/http/router/handler"
	"gympoint/internal/delivery/http/validator"
	"gympoint/internal/domain/entity"
	"gympoint/internal/domain/service"
	"gympoint/internal/infra/auth"
	"gympoint/internal/infra/clock"
	"gympoint/internal/infra/persistence/memory"
	"gympoint/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// routerFixtures wires the full delivery stack over the in-memory adapters:
// echo with the error handler and validator, the real JWT service, and the
// routes as registered in production.
type routerFixtures struct {
	server   *echo.Echo
	tokenSvc service.TokenService
	gymRepo  *memory.GymsRepository
}

func createTestRouter(t *testing.T) *routerFixtures {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 6,
			AccessTTL:  15 * time.Minute,
			RefreshTTL: 7 * 24 * time.Hour,
		},
	}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	userRepo := memory.NewUsersRepository()
	gymRepo := memory.NewGymsRepository()
	checkInRepo := memory.NewCheckInsRepository()
	txManager := memory.NewTransactionManager(userRepo, gymRepo, checkInRepo)

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userUC := impl.NewUserService(impl.UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenSvc,
		Logger:       logger,
	})
	gymUC := impl.NewGymService(impl.GymServiceParams{
		GymRepo: gymRepo,
		Logger:  logger,
	})
	checkInUC := impl.NewCheckInService(impl.CheckInServiceParams{
		TxManager:   txManager,
		CheckInRepo: checkInRepo,
		GymRepo:     gymRepo,
		Clock:       clock.NewSystemClock(),
		Config:      cfg,
		Logger:      logger,
	})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		UserHandler:    handler.NewUserHandler(userUC, logger),
		GymHandler:     handler.NewGymHandler(gymUC, logger),
		CheckInHandler: handler.NewCheckInHandler(checkInUC, logger),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenSvc),
	}).RegisterRoutes(e)

	return &routerFixtures{
		server:   e,
		tokenSvc: tokenSvc,
		gymRepo:  gymRepo,
	}
}

func (f *routerFixtures) createGym(t *testing.T, title string, latitude, longitude float64) uuid.UUID {
	t.Helper()

	gym := &entity.Gym{
		ID:        uuid.New(),
		Title:     title,
		Latitude:  decimal.NewFromFloat(latitude),
		Longitude: decimal.NewFromFloat(longitude),
	}
	require.NoError(t, f.gymRepo.Create(context.Background(), gym))

	return gym.ID
}

func (f *routerFixtures) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)

	return rec
}

func (f *routerFixtures) checkInRequest(gymID uuid.UUID, accessToken string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/gyms/"+gymID.String()+"/check-ins",
		strings.NewReader(`{"latitude":0,"longitude":0}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+accessToken)

	return req
}

func TestRouter_CreateCheckIn_SameDayConflict(t *testing.T) {
	fixtures := createTestRouter(t)
	gymID := fixtures.createGym(t, "JavaScript Gym", 0, 0)

	accessToken, _, err := fixtures.tokenSvc.GenerateTokens(uuid.New(), entity.RoleMember)
	require.NoError(t, err)

	rec := fixtures.do(fixtures.checkInRequest(gymID, accessToken))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = fixtures.do(fixtures.checkInRequest(gymID, accessToken))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "MAX_NUMBER_OF_CHECK_INS")
}

func TestRouter_CreateCheckIn_DistantGym(t *testing.T) {
	fixtures := createTestRouter(t)
	gymID := fixtures.createGym(t, "Far Gym", -27.0610928, -49.5229501)

	accessToken, _, err := fixtures.tokenSvc.GenerateTokens(uuid.New(), entity.RoleMember)
	require.NoError(t, err)

	rec := fixtures.do(fixtures.checkInRequest(gymID, accessToken))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MAX_DISTANCE_REACHED")
}

func TestRouter_CreateCheckIn_MissingToken(t *testing.T) {
	fixtures := createTestRouter(t)
	gymID := fixtures.createGym(t, "JavaScript Gym", 0, 0)

	req := httptest.NewRequest(http.MethodPost, "/gyms/"+gymID.String()+"/check-ins",
		strings.NewReader(`{"latitude":0,"longitude":0}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := fixtures.do(req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_ValidateCheckIn_NotFound(t *testing.T) {
	fixtures := createTestRouter(t)

	accessToken, _, err := fixtures.tokenSvc.GenerateTokens(uuid.New(), entity.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPatch, "/check-ins/"+uuid.NewString()+"/validate", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+accessToken)

	rec := fixtures.do(req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "RESOURCE_NOT_FOUND")
}

func TestRouter_ValidateCheckIn_MemberForbidden(t *testing.T) {
	fixtures := createTestRouter(t)

	accessToken, _, err := fixtures.tokenSvc.GenerateTokens(uuid.New(), entity.RoleMember)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPatch, "/check-ins/"+uuid.NewString()+"/validate", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+accessToken)

	rec := fixtures.do(req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Permission denied")
}
