package handlers

import (
	"net/http"

	"autogestor/internal/apperrors"
	"autogestor/internal/common"
	"autogestor/internal/services"
	"autogestor/internal/validation"

	"github.com/labstack/echo/v4"
)

type InsuranceHandlers struct {
	insuranceService services.InsuranceService
}

func NewInsuranceHandlers(insuranceService services.InsuranceService) *InsuranceHandlers {
	return &InsuranceHandlers{insuranceService: insuranceService}
}

func (h *InsuranceHandlers) ListInsurance(c echo.Context) error {
	auth, ok := common.AuthFromContext(c.Request().Context())
	if !ok {
		return common.RespondError(c, apperrors.Unauthorized())
	}

	policies, err := h.insuranceService.List(c.Request().Context(), auth)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"insurance": policies,
	})
}

func (h *InsuranceHandlers) CreateInsurance(c echo.Context) error {
	auth, ok := common.AuthFromContext(c.Request().Context())
	if !ok {
		return common.RespondError(c, apperrors.Unauthorized())
	}

	var input validation.InsuranceInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	insurance, err := h.insuranceService.Create(c.Request().Context(), auth, &input)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, insurance)
}
