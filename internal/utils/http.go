package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fiuber/gateway/internal/pkg/models"
)

// DetailResponse sends an error body in the detail envelope the backends use,
// so backend and gateway errors look the same to callers.
func DetailResponse(c echo.Context, statusCode int, detail interface{}) error {
	return c.JSON(statusCode, echo.Map{"detail": detail})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, detail interface{}) error {
	return DetailResponse(c, http.StatusBadRequest, detail)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, detail interface{}) error {
	if detail == nil {
		detail = "Unauthorized"
	}
	return DetailResponse(c, http.StatusUnauthorized, detail)
}

// ErrorResponse translates gateway errors into HTTP responses. Backend errors
// keep their original status code and detail.
func ErrorResponse(c echo.Context, err error) error {
	var permErr *models.PermissionDeniedError
	if errors.As(err, &permErr) {
		return DetailResponse(c, http.StatusBadRequest, permErr.Detail())
	}

	if errors.Is(err, models.ErrInsufficientFunds) {
		return DetailResponse(c, http.StatusBadRequest, models.ErrInsufficientFunds.Error())
	}

	var settleErr *models.SettlementError
	if errors.As(err, &settleErr) {
		statusCode := http.StatusInternalServerError
		detail := interface{}(settleErr.Error())
		var backendErr *models.BackendError
		if errors.As(settleErr.Cause, &backendErr) {
			statusCode = backendErr.StatusCode
			detail = map[string]interface{}{
				"message": "Settlement Failed",
				"detail":  backendErr.Detail,
			}
		}
		return DetailResponse(c, statusCode, detail)
	}

	var backendErr *models.BackendError
	if errors.As(err, &backendErr) {
		return DetailResponse(c, backendErr.StatusCode, backendErr.Detail)
	}

	// Transport failures and everything else stay opaque to the caller
	return DetailResponse(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
