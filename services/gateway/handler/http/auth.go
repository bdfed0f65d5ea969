package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fiuber/gateway/internal/pkg/logger"
	"github.com/fiuber/gateway/internal/pkg/models"
	"github.com/fiuber/gateway/internal/utils"
	"github.com/fiuber/gateway/services/gateway"
)

// AuthHandler handles the public login and signup endpoints
type AuthHandler struct {
	authUC gateway.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC gateway.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Login handles email/password login requests
func (h *AuthHandler) Login(c echo.Context) error {
	var creds models.AuthCredentials
	if err := c.Bind(&creds); err != nil {
		logger.Warn("Invalid request payload for login", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&creds); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	session, err := h.authUC.Login(c.Request().Context(), &creds)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, session)
}

// LoginGoogle handles federated login requests. The federated token arrives
// in the Authorization header like any other credential.
func (h *AuthHandler) LoginGoogle(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, nil)
	}

	session, err := h.authUC.LoginGoogle(c.Request().Context(), token)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, session)
}

// SignUp handles registration requests
func (h *AuthHandler) SignUp(c echo.Context) error {
	var creds models.AuthCredentials
	if err := c.Bind(&creds); err != nil {
		logger.Warn("Invalid request payload for signup", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&creds); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	session, err := h.authUC.SignUp(c.Request().Context(), &creds)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, session)
}
