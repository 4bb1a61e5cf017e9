package rest

import (
	"net/http"

	"uavops-service/pkg/apperrors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse is the envelope for successful API responses.
type SuccessResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse is the envelope for failed API responses.
type ErrorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeSuccess(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, SuccessResponse{Status: "success", Data: data})
}

func writeMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, SuccessResponse{Status: "success", Message: message})
}

func writeNotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, ErrorResponse{
		Status:  "error",
		Code:    apperrors.KindNotFound.String(),
		Message: "not found",
	})
}

func writeBadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Status:  "error",
		Code:    "bad_request",
		Message: message,
	})
}

// writeError maps the error taxonomy onto HTTP statuses.
func writeError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch apperrors.KindOf(err) {
	case apperrors.KindPermissionDenied:
		status = http.StatusForbidden
	case apperrors.KindNotFound:
		status = http.StatusNotFound
	case apperrors.KindInvalidState:
		status = http.StatusConflict
	case apperrors.KindRemoteFailure:
		status = http.StatusBadGateway
	}

	return c.JSON(status, ErrorResponse{
		Status:  "error",
		Code:    apperrors.KindOf(err).String(),
		Message: err.Error(),
	})
}
