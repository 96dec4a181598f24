package handler

import (
	"log/slog"
	"net/http"

	"gympoint/internal/delivery/http/middleware"
	"gympoint/internal/delivery/http/response"
	"gympoint/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckInHandler holds dependencies for check-in-related handlers.
type CheckInHandler struct {
	uc     usecase.CheckInUsecase
	logger *slog.Logger
}

// NewCheckInHandler is the constructor for CheckInHandler, injected by Fx.
func NewCheckInHandler(uc usecase.CheckInUsecase, logger *slog.Logger) *CheckInHandler {
	return &CheckInHandler{
		uc:     uc,
		logger: logger,
	}
}

type createCheckInRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// Create handles the check-in request against a gym.
func (h *CheckInHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Authentication required")
	}

	gymID, err := uuid.Parse(c.Param("gymId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid gym id")
	}

	var req createCheckInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid check-in input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateCheckIn(c.Request().Context(), &usecase.CreateCheckInInput{
		UserID:        userID,
		GymID:         gymID,
		UserLatitude:  req.Latitude,
		UserLongitude: req.Longitude,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCheckInResponse(output.CheckIn), "Checked in successfully")
}

// Validate handles the staff confirmation of a check-in.
func (h *CheckInHandler) Validate(c echo.Context) error {
	checkInID, err := uuid.Parse(c.Param("checkInId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid check-in id")
	}

	output, err := h.uc.ValidateCheckIn(c.Request().Context(), &usecase.ValidateCheckInInput{
		CheckInID: checkInID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCheckInResponse(output.CheckIn), "Check-in validated successfully")
}

// History handles the paginated check-in history request.
func (h *CheckInHandler) History(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Authentication required")
	}

	output, err := h.uc.FetchUserCheckInsHistory(c.Request().Context(), &usecase.FetchCheckInsHistoryInput{
		UserID: userID,
		Page:   pageParam(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCheckInResponses(output.CheckIns), "")
}

// Metrics handles the check-in count request.
func (h *CheckInHandler) Metrics(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Authentication required")
	}

	output, err := h.uc.GetUserMetrics(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{
		"checkInsCount": output.CheckInsCount,
	}, "")
}
