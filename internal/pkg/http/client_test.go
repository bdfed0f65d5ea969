package http

import (
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiuber/gateway/internal/pkg/models"
)

func TestClientSuccessResponses(t *testing.T) {
	t.Run("decodes a JSON body into the result", func(t *testing.T) {
		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			assert.Equal(t, nethttp.MethodGet, r.Method)
			assert.Equal(t, "/balance/u1", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"uid":"u1","balance":42.5}`))
		}))
		defer srv.Close()

		client := NewClient("payments", srv.URL, time.Second)
		var balance models.Balance
		err := client.Get(context.Background(), "/balance/u1", &balance)

		require.NoError(t, err)
		assert.Equal(t, "u1", balance.UID)
		assert.Equal(t, 42.5, balance.Balance)
	})

	t.Run("tolerates an empty body", func(t *testing.T) {
		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusNoContent)
		}))
		defer srv.Close()

		client := NewClient("voyage", srv.URL, time.Second)
		var result map[string]interface{}
		err := client.Post(context.Background(), "/voyage/passenger/confirm/v1/u1/true", nil, &result)

		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("sends the JSON request body", func(t *testing.T) {
		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "a@b.com", body["email"])
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		client := NewClient("users", srv.URL, time.Second)
		err := client.Post(context.Background(), "/login", map[string]string{"email": "a@b.com"}, nil)
		require.NoError(t, err)
	})
}

func TestClientBackendErrors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantDetail interface{}
	}{
		{
			name:       "string detail is preserved",
			statusCode: nethttp.StatusNotFound,
			body:       `{"detail":"User not found"}`,
			wantDetail: "User not found",
		},
		{
			name:       "structured detail is preserved",
			statusCode: nethttp.StatusConflict,
			body:       `{"detail":{"message":"already exists"}}`,
			wantDetail: map[string]interface{}{"message": "already exists"},
		},
		{
			name:       "missing detail falls back to the reason text",
			statusCode: nethttp.StatusBadGateway,
			body:       `{"error":"boom"}`,
			wantDetail: "Bad Gateway",
		},
		{
			name:       "non-JSON body falls back to the reason text",
			statusCode: nethttp.StatusInternalServerError,
			body:       "not json",
			wantDetail: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient("users", srv.URL, time.Second)
			err := client.Get(context.Background(), "/users/u1/u2", nil)
			require.Error(t, err)

			var backendErr *models.BackendError
			require.True(t, errors.As(err, &backendErr))
			assert.Equal(t, "users", backendErr.Service)
			assert.Equal(t, tt.statusCode, backendErr.StatusCode)
			assert.Equal(t, tt.wantDetail, backendErr.Detail)
		})
	}
}

func TestClientRequestIDPropagation(t *testing.T) {
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "req-123", r.Header.Get("X-Request-ID"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient("voyage", srv.URL, time.Second)
	ctx := context.WithValue(context.Background(), "request_id", "req-123")
	err := client.Get(ctx, "/voyage/complaints", nil)
	require.NoError(t, err)
}

func TestClientTransportFailure(t *testing.T) {
	client := NewClient("payments", "http://127.0.0.1:1", 100*time.Millisecond)
	err := client.Get(context.Background(), "/balance/u1", nil)
	require.Error(t, err)

	var backendErr *models.BackendError
	assert.False(t, errors.As(err, &backendErr), "transport failures must not look like backend responses")
}
