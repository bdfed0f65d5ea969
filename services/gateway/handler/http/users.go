package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fiuber/gateway/internal/pkg/logger"
	"github.com/fiuber/gateway/internal/pkg/models"
	"github.com/fiuber/gateway/internal/utils"
	"github.com/fiuber/gateway/services/gateway"
)

// UserHandler handles HTTP requests for profile operations
type UserHandler struct {
	userUC gateway.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC gateway.UserUC) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// bindUserPayload binds and validates the tagged user payload
func bindUserPayload(c echo.Context) (*models.UserPayload, error) {
	var payload models.UserPayload
	if err := c.Bind(&payload); err != nil {
		logger.Warn("Invalid user payload", logger.Err(err))
		return nil, utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&payload); err != nil {
		return nil, utils.BadRequestResponse(c, err.Error())
	}
	if err := payload.CheckVariant(); err != nil {
		return nil, utils.BadRequestResponse(c, err.Error())
	}
	return &payload, nil
}

// CreateUser handles profile creation for the authenticated caller
func (h *UserHandler) CreateUser(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}
	payload, err := bindUserPayload(c)
	if err != nil {
		return err
	}

	created, err := h.userUC.CreateUser(c.Request().Context(), token, payload)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// GetUser handles profile retrieval requests
func (h *UserHandler) GetUser(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	profile, err := h.userUC.GetUser(c.Request().Context(), token, c.Param("id"))
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateUser handles profile replacement requests
func (h *UserHandler) UpdateUser(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}
	payload, err := bindUserPayload(c)
	if err != nil {
		return err
	}

	updated, err := h.userUC.UpdateUser(c.Request().Context(), token, c.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteUser handles profile removal requests
func (h *UserHandler) DeleteUser(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	deleted, err := h.userUC.DeleteUser(c.Request().Context(), token, c.Param("id"))
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, deleted)
}
