package gateway_http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiuber/gateway/internal/pkg/models"
)

func TestUsersClientValidate(t *testing.T) {
	t.Run("sends the token in the body and decodes the introspection", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/validate", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "tok-1", body["token"])

			_, _ = w.Write([]byte(`{"uid":"u1","roles":["Passenger"],"is_blocked":false}`))
		}))
		defer srv.Close()

		client := NewUsersClient(srv.URL, time.Second)
		introspection, err := client.Validate(context.Background(), "tok-1")
		require.NoError(t, err)

		assert.Equal(t, "u1", introspection.UID)
		assert.Equal(t, []models.Role{models.RolePassenger}, introspection.Roles)
		assert.False(t, introspection.IsBlocked)
	})

	t.Run("an invalid token surfaces the backend status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Invalid token"}`))
		}))
		defer srv.Close()

		client := NewUsersClient(srv.URL, time.Second)
		_, err := client.Validate(context.Background(), "bad")

		var backendErr *models.BackendError
		require.True(t, errors.As(err, &backendErr))
		assert.Equal(t, http.StatusUnauthorized, backendErr.StatusCode)
		assert.Equal(t, "Invalid token", backendErr.Detail)
	})
}

func TestUsersClientProfilePicture(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/u1/profile/picture", r.URL.Path)
		switch r.Method {
		case http.MethodPost:
			var body models.ProfilePicture
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "base64-img", body.Img)
			w.WriteHeader(http.StatusCreated)
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"img":"base64-img"}`))
		}
	}))
	defer srv.Close()

	client := NewUsersClient(srv.URL, time.Second)
	ctx := context.Background()

	require.NoError(t, client.UploadProfilePicture(ctx, "u1", "base64-img"))

	img, err := client.GetProfilePicture(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "base64-img", img)
}

func TestUsersClientScopedPaths(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewUsersClient(srv.URL, time.Second)
	ctx := context.Background()

	_, err := client.GetUser(ctx, "target", "caller")
	require.NoError(t, err)
	assert.Equal(t, "/users/target/caller", gotPath)

	_, err = client.BlockUser(ctx, "target", "admin")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/users/block/target/admin", gotPath)

	_, err = client.GetAllUsers(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "/users/all/admin", gotPath)
}
