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

type ConcesionarioHandlers struct {
	concesionarioService services.ConcesionarioService
}

func NewConcesionarioHandlers(concesionarioService services.ConcesionarioService) *ConcesionarioHandlers {
	return &ConcesionarioHandlers{concesionarioService: concesionarioService}
}

func (h *ConcesionarioHandlers) ListConcesionarios(c echo.Context) error {
	auth, ok := common.AuthFromContext(c.Request().Context())
	if !ok {
		return common.RespondError(c, apperrors.Unauthorized())
	}

	concesionarios, err := h.concesionarioService.List(c.Request().Context(), auth)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"concesionarios": concesionarios,
	})
}

func (h *ConcesionarioHandlers) GetConcesionario(c echo.Context) error {
	auth, ok := common.AuthFromContext(c.Request().Context())
	if !ok {
		return common.RespondError(c, apperrors.Unauthorized())
	}

	concesionarioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.RespondError(c, apperrors.NotFound("Concesionario no encontrado"))
	}

	concesionario, err := h.concesionarioService.GetByID(c.Request().Context(), auth, concesionarioID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, concesionario)
}

func (h *ConcesionarioHandlers) CreateConcesionario(c echo.Context) error {
	auth, ok := common.AuthFromContext(c.Request().Context())
	if !ok {
		return common.RespondError(c, apperrors.Unauthorized())
	}

	var input validation.ConcesionarioInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	concesionario, err := h.concesionarioService.Create(c.Request().Context(), auth, &input)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, concesionario)
}
