package handlers

import (
	"net/http"

	"autogestor/internal/apperrors"
	"autogestor/internal/common"
	"autogestor/internal/services"

	"github.com/labstack/echo/v4"
)

type DealerHandlers struct {
	dealerService services.DealerService
}

func NewDealerHandlers(dealerService services.DealerService) *DealerHandlers {
	return &DealerHandlers{dealerService: dealerService}
}

// GetDealer returns the authenticated user's own dealer.
func (h *DealerHandlers) GetDealer(c echo.Context) error {
	auth, ok := common.AuthFromContext(c.Request().Context())
	if !ok {
		return common.RespondError(c, apperrors.Unauthorized())
	}

	dealer, err := h.dealerService.GetOwn(c.Request().Context(), auth)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, dealer)
}

// Me returns the profile with its dealer summary.
func (h *DealerHandlers) Me(c echo.Context) error {
	auth, ok := common.AuthFromContext(c.Request().Context())
	if !ok {
		return common.RespondError(c, apperrors.Unauthorized())
	}

	profile, err := h.dealerService.GetProfile(c.Request().Context(), auth)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}
