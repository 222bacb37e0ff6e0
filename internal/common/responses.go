package common

import (
	"net/http"

	"autogestor/internal/apperrors"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the error envelope every endpoint returns.
type ErrorResponse struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details,omitempty"`
	} `json:"error"`
}

func NewErrorResponse(code, message string, details map[string]string) *ErrorResponse {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	resp.Error.Details = details
	return &resp
}

// RespondError maps the error taxonomy onto HTTP statuses. The message
// is shown verbatim by the presentation layer, so storage internals
// never pass through here unclassified.
func RespondError(c echo.Context, err error) error {
	ae := apperrors.FromStorage(err)
	switch ae.Kind {
	case apperrors.KindUnauthorized:
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("UNAUTHORIZED", ae.Message, nil))
	case apperrors.KindNoDealer:
		return c.JSON(http.StatusForbidden, NewErrorResponse("NO_DEALER", ae.Message, nil))
	case apperrors.KindForbidden:
		return c.JSON(http.StatusForbidden, NewErrorResponse("FORBIDDEN", ae.Message, nil))
	case apperrors.KindValidation:
		return c.JSON(http.StatusBadRequest, NewErrorResponse("VALIDATION_ERROR", ae.Message, ae.Fields))
	case apperrors.KindNotFound:
		return c.JSON(http.StatusNotFound, NewErrorResponse("NOT_FOUND", ae.Message, nil))
	case apperrors.KindConflict:
		return c.JSON(http.StatusConflict, NewErrorResponse("CONFLICT", ae.Message, nil))
	case apperrors.KindReference:
		return c.JSON(http.StatusBadRequest, NewErrorResponse("INVALID_REFERENCE", ae.Message, nil))
	default:
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("SERVER_ERROR", ae.Message, nil))
	}
}
