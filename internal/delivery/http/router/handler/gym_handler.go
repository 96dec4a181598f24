package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"gympoint/internal/delivery/http/response"
	"gympoint/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GymHandler holds dependencies for gym-related handlers.
type GymHandler struct {
	uc     usecase.GymUsecase
	logger *slog.Logger
}

// NewGymHandler is the constructor for GymHandler, injected by Fx.
func NewGymHandler(uc usecase.GymUsecase, logger *slog.Logger) *GymHandler {
	return &GymHandler{
		uc:     uc,
		logger: logger,
	}
}

type createGymRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description"`
	Phone       *string `json:"phone" validate:"omitempty,max=20"`
	Latitude    float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude   float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// Create handles the gym registration request.
func (h *GymHandler) Create(c echo.Context) error {
	var req createGymRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid gym input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateGym(c.Request().Context(), &usecase.CreateGymInput{
		Title:       req.Title,
		Description: req.Description,
		Phone:       req.Phone,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toGymResponse(output.Gym), "Gym created successfully")
}

// Search handles the paginated gym title search request.
func (h *GymHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'q' is required")
	}

	output, err := h.uc.SearchGyms(c.Request().Context(), &usecase.SearchGymsInput{
		Query: query,
		Page:  pageParam(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toGymResponses(output.Gyms), "")
}

// Nearby handles the nearby gyms request.
func (h *GymHandler) Nearby(c echo.Context) error {
	latitude, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil || latitude < -90 || latitude > 90 {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'latitude' must be a valid latitude")
	}

	longitude, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil || longitude < -180 || longitude > 180 {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'longitude' must be a valid longitude")
	}

	output, err := h.uc.FetchNearbyGyms(c.Request().Context(), &usecase.FetchNearbyGymsInput{
		UserLatitude:  latitude,
		UserLongitude: longitude,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toGymResponses(output.Gyms), "")
}

// pageParam reads the 'page' query parameter, defaulting to the first page.
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}

	return page
}
