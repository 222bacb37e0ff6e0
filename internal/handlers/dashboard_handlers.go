package handlers

import (
	"net/http"

	"autogestor/internal/apperrors"
	"autogestor/internal/common"
	"autogestor/internal/services"

	"github.com/labstack/echo/v4"
)

type DashboardHandlers struct {
	dashboardService services.DashboardService
}

func NewDashboardHandlers(dashboardService services.DashboardService) *DashboardHandlers {
	return &DashboardHandlers{dashboardService: dashboardService}
}

func (h *DashboardHandlers) GetStats(c echo.Context) error {
	auth, ok := common.AuthFromContext(c.Request().Context())
	if !ok {
		return common.RespondError(c, apperrors.Unauthorized())
	}

	stats, err := h.dashboardService.Stats(c.Request().Context(), auth)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}
