// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gympoint/internal/delivery/http/middleware"
	"gympoint/internal/delivery/http/router/handler"
	"gympoint/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	GymHandler     *handler.GymHandler
	CheckInHandler *handler.CheckInHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	gymHandler     *handler.GymHandler
	checkInHandler *handler.CheckInHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		gymHandler:     params.GymHandler,
		checkInHandler: params.CheckInHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public account routes
	e.POST("/users", r.userHandler.Register)
	e.POST("/sessions", r.userHandler.Authenticate)
	e.PATCH("/token/refresh", r.userHandler.RefreshToken)

	// Authenticated profile route
	e.GET("/me", r.userHandler.Me, r.authMiddleware.Authenticate)

	// Gym routes
	gymGroup := e.Group("/gyms")
	gymGroup.Use(r.authMiddleware.Authenticate)
	{
		gymGroup.POST("", r.gymHandler.Create, r.authMiddleware.RequireRole(entity.RoleAdmin))
		gymGroup.GET("/search", r.gymHandler.Search)
		gymGroup.GET("/nearby", r.gymHandler.Nearby)
		gymGroup.POST("/:gymId/check-ins", r.checkInHandler.Create)
	}

	// Check-in routes
	checkInGroup := e.Group("/check-ins")
	checkInGroup.Use(r.authMiddleware.Authenticate)
	{
		checkInGroup.PATCH("/:checkInId/validate", r.checkInHandler.Validate, r.authMiddleware.RequireRole(entity.RoleAdmin))
		checkInGroup.GET("/history", r.checkInHandler.History)
		checkInGroup.GET("/metrics", r.checkInHandler.Metrics)
	}
}
