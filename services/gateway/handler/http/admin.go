package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fiuber/gateway/internal/pkg/logger"
	"github.com/fiuber/gateway/internal/pkg/models"
	"github.com/fiuber/gateway/internal/utils"
	"github.com/fiuber/gateway/services/gateway"
)

// AdminHandler handles the admin-gated endpoints. Role enforcement lives in
// the usecase; the handler only moves bytes.
type AdminHandler struct {
	adminUC gateway.AdminUC
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUC gateway.AdminUC) *AdminHandler {
	return &AdminHandler{adminUC: adminUC}
}

// RegisterAdmin grants the Admin role to the user in the path
func (h *AdminHandler) RegisterAdmin(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	result, err := h.adminUC.RegisterAdmin(c.Request().Context(), token, c.Param("id"))
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// BlockUser blocks the user in the path platform-wide
func (h *AdminHandler) BlockUser(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	result, err := h.adminUC.BlockUser(c.Request().Context(), token, c.Param("id"))
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// UnblockUser lifts a platform-wide block
func (h *AdminHandler) UnblockUser(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	result, err := h.adminUC.UnblockUser(c.Request().Context(), token, c.Param("id"))
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// GetAllUsers lists every stored user
func (h *AdminHandler) GetAllUsers(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	users, err := h.adminUC.GetAllUsers(c.Request().Context(), token)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// GetFareConstants reads the fare tuning constants
func (h *AdminHandler) GetFareConstants(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	constants, err := h.adminUC.GetFareConstants(c.Request().Context(), token)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, constants)
}

// UpdateFareConstants replaces the fare tuning constants
func (h *AdminHandler) UpdateFareConstants(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	var constants models.FareConstants
	if err := c.Bind(&constants); err != nil {
		logger.Warn("Invalid fare constants payload", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&constants); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	result, err := h.adminUC.UpdateFareConstants(c.Request().Context(), token, &constants)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// GetComplaints lists every recorded complaint
func (h *AdminHandler) GetComplaints(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	complaints, err := h.adminUC.GetComplaints(c.Request().Context(), token)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, complaints)
}

// GetVoyageMetrics reads the aggregated voyage metrics
func (h *AdminHandler) GetVoyageMetrics(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	metrics, err := h.adminUC.GetVoyageMetrics(c.Request().Context(), token)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, metrics)
}

// GetPaymentMetrics reads the aggregated payment metrics
func (h *AdminHandler) GetPaymentMetrics(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	metrics, err := h.adminUC.GetPaymentMetrics(c.Request().Context(), token)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, metrics)
}

// GetUserMetrics reads the aggregated user metrics
func (h *AdminHandler) GetUserMetrics(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	metrics, err := h.adminUC.GetUserMetrics(c.Request().Context(), token)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, metrics)
}
