package handlers

import (
	"net/http"

	"autogestor/internal/apperrors"
	"autogestor/internal/common"
	"autogestor/internal/services"
	"autogestor/internal/validation"

	"github.com/labstack/echo/v4"
)

type ContractHandlers struct {
	contractService services.ContractService
}

func NewContractHandlers(contractService services.ContractService) *ContractHandlers {
	return &ContractHandlers{contractService: contractService}
}

func (h *ContractHandlers) ListContracts(c echo.Context) error {
	auth, ok := common.AuthFromContext(c.Request().Context())
	if !ok {
		return common.RespondError(c, apperrors.Unauthorized())
	}

	contracts, err := h.contractService.List(c.Request().Context(), auth)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"contracts": contracts,
	})
}

func (h *ContractHandlers) CreateContract(c echo.Context) error {
	auth, ok := common.AuthFromContext(c.Request().Context())
	if !ok {
		return common.RespondError(c, apperrors.Unauthorized())
	}

	var input validation.ContractInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	contract, err := h.contractService.Create(c.Request().Context(), auth, &input)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, contract)
}
