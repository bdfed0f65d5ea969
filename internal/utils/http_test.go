package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiuber/gateway/internal/pkg/models"
)

func respond(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ErrorResponse(c, err))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestErrorResponseMapping(t *testing.T) {
	t.Run("backend errors keep status and detail", func(t *testing.T) {
		rec, body := respond(t, models.NewBackendError("users", http.StatusNotFound, "User not found"))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User not found", body["detail"])
	})

	t.Run("backend errors without detail fall back to the reason text", func(t *testing.T) {
		rec, body := respond(t, models.NewBackendError("voyage", http.StatusBadGateway, nil))
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, "Bad Gateway", body["detail"])
	})

	t.Run("permission denied echoes the introspection", func(t *testing.T) {
		rec, body := respond(t, &models.PermissionDeniedError{
			IsBlocked: true,
			Roles:     []models.Role{models.RoleDriver},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		detail, ok := body["detail"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Error Permission Denied", detail["message"])
		assert.Equal(t, true, detail["is_blocked"])
		assert.Equal(t, []interface{}{"Driver"}, detail["roles"])
	})

	t.Run("permission denied with no roles sends an empty list", func(t *testing.T) {
		_, body := respond(t, &models.PermissionDeniedError{})
		detail := body["detail"].(map[string]interface{})
		assert.Equal(t, []interface{}{}, detail["roles"])
	})

	t.Run("insufficient funds is a 400", func(t *testing.T) {
		rec, body := respond(t, models.ErrInsufficientFunds)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Insufficient Funds", body["detail"])
	})

	t.Run("settlement failure surfaces the deposit status", func(t *testing.T) {
		cause := models.NewBackendError("payments", http.StatusInternalServerError, "Wallet locked")
		rec, body := respond(t, &models.SettlementError{Cause: cause})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		detail, ok := body["detail"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Settlement Failed", detail["message"])
		assert.Equal(t, "Wallet locked", detail["detail"])
	})

	t.Run("settlement failure with a transport cause is opaque", func(t *testing.T) {
		rec, _ := respond(t, &models.SettlementError{Cause: errors.New("dial tcp: refused")})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("unknown errors are opaque 500s", func(t *testing.T) {
		rec, body := respond(t, errors.New("some internal detail"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal Server Error", body["detail"])
	})
}

func TestDetailResponseEnvelope(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, UnauthorizedResponse(c, nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Unauthorized", body["detail"])
}
