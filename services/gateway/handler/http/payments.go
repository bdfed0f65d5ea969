package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fiuber/gateway/internal/pkg/logger"
	"github.com/fiuber/gateway/internal/pkg/models"
	"github.com/fiuber/gateway/internal/utils"
	"github.com/fiuber/gateway/services/gateway"
)

// PaymentsHandler handles the wallet endpoints
type PaymentsHandler struct {
	paymentsUC gateway.PaymentsUC
}

// NewPaymentsHandler creates a new payments handler
func NewPaymentsHandler(paymentsUC gateway.PaymentsUC) *PaymentsHandler {
	return &PaymentsHandler{paymentsUC: paymentsUC}
}

// GetBalance reads the caller's wallet balance
func (h *PaymentsHandler) GetBalance(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	balance, err := h.paymentsUC.GetBalance(c.Request().Context(), token)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, balance)
}

// CreateWallet provisions a wallet for the caller
func (h *PaymentsHandler) CreateWallet(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	result, err := h.paymentsUC.CreateWallet(c.Request().Context(), token)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, result)
}

// Withdraw forwards the driver's withdrawal instruction
func (h *PaymentsHandler) Withdraw(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	var req models.WithdrawRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid withdraw payload", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	result, err := h.paymentsUC.Withdraw(c.Request().Context(), token, &req)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// GetDriverPayments lists the driver's received payments
func (h *PaymentsHandler) GetDriverPayments(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	result, err := h.paymentsUC.GetDriverPayments(c.Request().Context(), token)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
