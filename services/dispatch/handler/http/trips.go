package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/openfleet/cabdispatch/internal/pkg/middleware"
	"github.com/openfleet/cabdispatch/internal/pkg/models"
	"github.com/openfleet/cabdispatch/internal/utils"
	"github.com/openfleet/cabdispatch/services/dispatch"
)

// TripHandler handles HTTP requests for trip operations
type TripHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewTripHandler creates a new trip HTTP handler
func NewTripHandler(dispatchUC dispatch.DispatchUC) *TripHandler {
	return &TripHandler{
		dispatchUC: dispatchUC,
	}
}

// RequestTrip handles POST /trips
func (h *TripHandler) RequestTrip(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.TripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	resp, err := h.dispatchUC.RequestTrip(c.Request().Context(), userID, &req)
	if err != nil {
		return tripErrorResponse(c, err)
	}

	if resp.AssignedCab == nil {
		return utils.SuccessResponse(c, http.StatusCreated, "no cab available", resp)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "cab assigned", resp)
}

// GetTrip handles GET /trips/:tripID
func (h *TripHandler) GetTrip(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Trip ID must be a valid UUID")
	}

	trip, err := h.dispatchUC.GetTrip(c.Request().Context(), tripID, userID)
	if err != nil {
		return tripErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "trip found", trip)
}

// ListTrips handles GET /trips
func (h *TripHandler) ListTrips(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	trips, err := h.dispatchUC.ListTrips(c.Request().Context(), userID)
	if err != nil {
		return tripErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "trips listed", trips)
}

// CompleteTrip handles POST /trips/:tripID/complete
func (h *TripHandler) CompleteTrip(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Trip ID must be a valid UUID")
	}

	completion, err := h.dispatchUC.CompleteTrip(c.Request().Context(), tripID, userID)
	if err != nil {
		return tripErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "trip completed", completion)
}

// CancelTrip handles POST /trips/:tripID/cancel
func (h *TripHandler) CancelTrip(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Trip ID must be a valid UUID")
	}

	trip, err := h.dispatchUC.CancelTrip(c.Request().Context(), tripID, userID)
	if err != nil {
		return tripErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "trip cancelled", trip)
}

// tripErrorResponse maps dispatch errors onto HTTP statuses.
func tripErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, dispatch.ErrInvalidInput):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, dispatch.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, dispatch.ErrInvalidState):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, dispatch.ErrCabConflict):
		return utils.ConflictResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, "")
	}
}
