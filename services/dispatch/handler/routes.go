package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/openfleet/cabdispatch/internal/pkg/middleware"
	"github.com/openfleet/cabdispatch/internal/pkg/models"
	httphandler "github.com/openfleet/cabdispatch/services/dispatch/handler/http"
)

// Handler coordinates the protocol handlers for the dispatch service
type Handler struct {
	tripHandler *httphandler.TripHandler
	cabHandler  *httphandler.CabHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	tripHandler *httphandler.TripHandler,
	cabHandler *httphandler.CabHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		tripHandler: tripHandler,
		cabHandler:  cabHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers all dispatch routes on the echo instance.
// Trip routes require a rider token; fleet mutation routes require
// the admin role. Cab location pings carry a driver token.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	trips := e.Group("/trips", auth)
	trips.POST("", h.tripHandler.RequestTrip)
	trips.GET("", h.tripHandler.ListTrips)
	trips.GET("/:tripID", h.tripHandler.GetTrip)
	trips.POST("/:tripID/complete", h.tripHandler.CompleteTrip)
	trips.POST("/:tripID/cancel", h.tripHandler.CancelTrip)

	cabs := e.Group("/cabs", auth)
	cabs.GET("/available", h.cabHandler.ListAvailableCabs)
	cabs.PUT("/:cabID/location", h.cabHandler.UpdateCabLocation)
	cabs.PUT("/:cabID/status", h.cabHandler.UpdateCabStatus)

	admin := cabs.Group("", middleware.RequireRole("admin"))
	admin.POST("", h.cabHandler.RegisterCab)
	admin.GET("", h.cabHandler.ListCabs)
}
