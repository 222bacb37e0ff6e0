package handlers

import (
	"net/http"

	"autogestor/internal/apperrors"
	"autogestor/internal/common"
	"autogestor/internal/services"
	"autogestor/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// VehicleHandlers handles vehicle-related HTTP requests.
type VehicleHandlers struct {
	vehicleService services.VehicleService
}

func NewVehicleHandlers(vehicleService services.VehicleService) *VehicleHandlers {
	return &VehicleHandlers{vehicleService: vehicleService}
}

func (h *VehicleHandlers) ListVehicles(c echo.Context) error {
	auth, ok := common.AuthFromContext(c.Request().Context())
	if !ok {
		return common.RespondError(c, apperrors.Unauthorized())
	}

	vehicles, err := h.vehicleService.List(c.Request().Context(), auth)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"vehicles": vehicles,
	})
}

func (h *VehicleHandlers) GetVehicle(c echo.Context) error {
	auth, ok := common.AuthFromContext(c.Request().Context())
	if !ok {
		return common.RespondError(c, apperrors.Unauthorized())
	}

	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.RespondError(c, apperrors.NotFound("Vehículo no encontrado"))
	}

	vehicle, err := h.vehicleService.GetByID(c.Request().Context(), auth, vehicleID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, vehicle)
}

func (h *VehicleHandlers) CreateVehicle(c echo.Context) error {
	auth, ok := common.AuthFromContext(c.Request().Context())
	if !ok {
		return common.RespondError(c, apperrors.Unauthorized())
	}

	var input validation.VehicleInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	vehicle, err := h.vehicleService.Create(c.Request().Context(), auth, &input)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, vehicle)
}

func (h *VehicleHandlers) UpdateConsignment(c echo.Context) error {
	auth, ok := common.AuthFromContext(c.Request().Context())
	if !ok {
		return common.RespondError(c, apperrors.Unauthorized())
	}

	var input validation.ConsignmentUpdateInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if input.VehicleID == "" {
		input.VehicleID = c.Param("id")
	}

	vehicle, err := h.vehicleService.UpdateConsignment(c.Request().Context(), auth, &input)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, vehicle)
}
