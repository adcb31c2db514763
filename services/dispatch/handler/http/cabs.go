package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/openfleet/cabdispatch/internal/pkg/models"
	"github.com/openfleet/cabdispatch/internal/utils"
	"github.com/openfleet/cabdispatch/services/dispatch"
)

// CabHandler handles HTTP requests for cab fleet operations
type CabHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewCabHandler creates a new cab HTTP handler
func NewCabHandler(dispatchUC dispatch.DispatchUC) *CabHandler {
	return &CabHandler{
		dispatchUC: dispatchUC,
	}
}

// RegisterCab handles POST /cabs
func (h *CabHandler) RegisterCab(c echo.Context) error {
	var req models.CabRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	cab, err := h.dispatchUC.RegisterCab(c.Request().Context(), &req)
	if err != nil {
		return tripErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "cab registered", cab)
}

// ListCabs handles GET /cabs
func (h *CabHandler) ListCabs(c echo.Context) error {
	cabs, err := h.dispatchUC.ListCabs(c.Request().Context())
	if err != nil {
		return tripErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "cabs listed", cabs)
}

// ListAvailableCabs handles GET /cabs/available
func (h *CabHandler) ListAvailableCabs(c echo.Context) error {
	cabs, err := h.dispatchUC.ListAvailableCabs(c.Request().Context())
	if err != nil {
		return tripErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "available cabs listed", cabs)
}

// UpdateCabLocation handles PUT /cabs/:cabID/location
func (h *CabHandler) UpdateCabLocation(c echo.Context) error {
	cabID, err := uuid.Parse(c.Param("cabID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Cab ID must be a valid UUID")
	}

	var update models.CabLocationUpdate
	if err := c.Bind(&update); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	cab, err := h.dispatchUC.UpdateCabLocation(c.Request().Context(), cabID, &update)
	if err != nil {
		return tripErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "cab location updated", cab)
}

// CabStatusRequest is the request body for a cab status change
type CabStatusRequest struct {
	Status models.CabStatus `json:"status"`
}

// UpdateCabStatus handles PUT /cabs/:cabID/status
func (h *CabHandler) UpdateCabStatus(c echo.Context) error {
	cabID, err := uuid.Parse(c.Param("cabID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Cab ID must be a valid UUID")
	}

	var req CabStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	cab, err := h.dispatchUC.UpdateCabStatus(c.Request().Context(), cabID, req.Status)
	if err != nil {
		return tripErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "cab status updated", cab)
}
