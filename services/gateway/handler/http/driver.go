package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fiuber/gateway/internal/pkg/logger"
	"github.com/fiuber/gateway/internal/pkg/models"
	"github.com/fiuber/gateway/internal/utils"
)

// SetDriverSearching adds the driver to the searching pool
func (h *VoyageHandler) SetDriverSearching(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	result, err := h.voyageUC.SetDriverSearching(c.Request().Context(), token)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// SetDriverOffline removes the driver from the searching pool
func (h *VoyageHandler) SetDriverOffline(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	result, err := h.voyageUC.SetDriverOffline(c.Request().Context(), token)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// SubscribeDriverVIP subscribes the driver to vip matching
func (h *VoyageHandler) SubscribeDriverVIP(c echo.Context) error {
	return h.setDriverVIP(c, true)
}

// UnsubscribeDriverVIP ends the driver's vip subscription
func (h *VoyageHandler) UnsubscribeDriverVIP(c echo.Context) error {
	return h.setDriverVIP(c, false)
}

func (h *VoyageHandler) setDriverVIP(c echo.Context, subscribed bool) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	result, err := h.voyageUC.SetDriverVIP(c.Request().Context(), token, subscribed)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// UpdateDriverLocation pushes the driver's live position
func (h *VoyageHandler) UpdateDriverLocation(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	var location models.Point
	if err := c.Bind(&location); err != nil {
		logger.Warn("Invalid location payload", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.voyageUC.UpdateDriverLocation(c.Request().Context(), token, &location)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// AnswerSolicitation relays the driver's accept or decline decision
func (h *VoyageHandler) AnswerSolicitation(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	accept, err := strconv.ParseBool(c.Param("accept"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid accept value")
	}

	result, err := h.voyageUC.AnswerSolicitation(c.Request().Context(), token, c.Param("voyageId"), accept)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// StartVoyage marks the driver arrived at the initial point
func (h *VoyageHandler) StartVoyage(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	result, err := h.voyageUC.StartVoyage(c.Request().Context(), token, c.Param("voyageId"))
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// FinishVoyage marks the trip ended and settles the fare
func (h *VoyageHandler) FinishVoyage(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	result, err := h.voyageUC.FinishVoyage(c.Request().Context(), token, c.Param("voyageId"))
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// LastDriverVoyage reads the driver's most recent voyage
func (h *VoyageHandler) LastDriverVoyage(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	result, err := h.voyageUC.LastDriverVoyage(c.Request().Context(), token)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
