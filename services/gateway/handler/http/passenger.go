package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fiuber/gateway/internal/pkg/logger"
	"github.com/fiuber/gateway/internal/pkg/models"
	"github.com/fiuber/gateway/internal/utils"
	"github.com/fiuber/gateway/services/gateway"
)

// VoyageHandler handles the passenger and driver voyage endpoints
type VoyageHandler struct {
	voyageUC gateway.VoyageUC
}

// NewVoyageHandler creates a new voyage handler
func NewVoyageHandler(voyageUC gateway.VoyageUC) *VoyageHandler {
	return &VoyageHandler{voyageUC: voyageUC}
}

// bindSearchRequest binds and validates the passenger search criteria
func bindSearchRequest(c echo.Context) (*models.SearchVoyageRequest, error) {
	var req models.SearchVoyageRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid search payload", logger.Err(err))
		return nil, utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, utils.BadRequestResponse(c, err.Error())
	}
	return &req, nil
}

// Search handles the driver search and returns the enriched candidates
func (h *VoyageHandler) Search(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}
	req, err := bindSearchRequest(c)
	if err != nil {
		return err
	}

	candidates, err := h.voyageUC.Search(c.Request().Context(), token, req)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, candidates)
}

// ConfirmDriver locks in the passenger's driver choice
func (h *VoyageHandler) ConfirmDriver(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}
	req, err := bindSearchRequest(c)
	if err != nil {
		return err
	}

	offer, err := h.voyageUC.ConfirmDriver(c.Request().Context(), token, c.Param("driverId"), req)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, offer)
}

// CancelSearch stops the passenger's active driver search
func (h *VoyageHandler) CancelSearch(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	result, err := h.voyageUC.CancelSearch(c.Request().Context(), token)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// CancelVoyage cancels a previously confirmed voyage
func (h *VoyageHandler) CancelVoyage(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	result, err := h.voyageUC.CancelVoyage(c.Request().Context(), token, c.Param("voyageId"))
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// SubscribePassengerVIP subscribes the passenger to vip pricing
func (h *VoyageHandler) SubscribePassengerVIP(c echo.Context) error {
	return h.setPassengerVIP(c, true)
}

// UnsubscribePassengerVIP ends the passenger's vip subscription
func (h *VoyageHandler) UnsubscribePassengerVIP(c echo.Context) error {
	return h.setPassengerVIP(c, false)
}

func (h *VoyageHandler) setPassengerVIP(c echo.Context, subscribed bool) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	result, err := h.voyageUC.SetPassengerVIP(c.Request().Context(), token, subscribed)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// SubmitReview records the passenger's score for a finished voyage
func (h *VoyageHandler) SubmitReview(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	var review models.Review
	if err := c.Bind(&review); err != nil {
		logger.Warn("Invalid review payload", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&review); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	result, err := h.voyageUC.SubmitReview(c.Request().Context(), token, c.Param("voyageId"), &review)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, result)
}

// SubmitComplaint records a passenger complaint about a finished voyage
func (h *VoyageHandler) SubmitComplaint(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	var complaint models.Complaint
	if err := c.Bind(&complaint); err != nil {
		logger.Warn("Invalid complaint payload", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&complaint); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	result, err := h.voyageUC.SubmitComplaint(c.Request().Context(), token, c.Param("voyageId"), &complaint)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, result)
}

// LastPassengerVoyage reads the passenger's most recent voyage
func (h *VoyageHandler) LastPassengerVoyage(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	result, err := h.voyageUC.LastPassengerVoyage(c.Request().Context(), token)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// GetVoyageInfo reads a voyage record on behalf of either party
func (h *VoyageHandler) GetVoyageInfo(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	info, err := h.voyageUC.GetVoyageInfo(c.Request().Context(), token, c.Param("voyageId"))
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, info)
}
