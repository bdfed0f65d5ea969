package http

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// bearerToken extracts the credential from the Authorization header. This is
// the only place the gateway reads identity from a request; handlers hand the
// raw token to the usecases, which validate it against the users service.
func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", false
	}
	return token, true
}
