package handlers

import (
	"net/http"

	"autogestor/internal/apperrors"
	"autogestor/internal/common"
	"autogestor/internal/services"
	"autogestor/internal/validation"

	"github.com/labstack/echo/v4"
)

type ClientHandlers struct {
	clientService services.ClientService
}

func NewClientHandlers(clientService services.ClientService) *ClientHandlers {
	return &ClientHandlers{clientService: clientService}
}

func (h *ClientHandlers) ListClients(c echo.Context) error {
	auth, ok := common.AuthFromContext(c.Request().Context())
	if !ok {
		return common.RespondError(c, apperrors.Unauthorized())
	}

	clients, err := h.clientService.List(c.Request().Context(), auth)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"clients": clients,
	})
}

func (h *ClientHandlers) CreateClient(c echo.Context) error {
	auth, ok := common.AuthFromContext(c.Request().Context())
	if !ok {
		return common.RespondError(c, apperrors.Unauthorized())
	}

	var input validation.ClientInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	client, err := h.clientService.Create(c.Request().Context(), auth, &input)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, client)
}
