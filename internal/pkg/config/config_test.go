package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("defaults apply when the environment is empty", func(t *testing.T) {
		configs := loadConfigFromEnv()

		assert.Equal(t, "fiuber-gateway", configs.App.Name)
		assert.Equal(t, 8080, configs.Server.Port)
		assert.Equal(t, 30, configs.Server.ShutdownTimeout)
		assert.Equal(t, "http://localhost:9994", configs.Services.UsersURL)
		assert.Equal(t, "localhost:4150", configs.NSQ.Address)
		assert.Equal(t, "gateway_metrics", configs.NSQ.MetricsTopic)
		assert.Equal(t, 10, configs.Client.TimeoutSeconds)
		assert.Equal(t, "info", configs.Logger.Level)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("USERS_SERVICE_URL", "http://users.internal:8000")
		t.Setenv("NSQ_METRICS_TOPIC", "events")
		t.Setenv("LOG_LEVEL", "debug")

		configs := loadConfigFromEnv()

		assert.Equal(t, 9000, configs.Server.Port)
		assert.Equal(t, "http://users.internal:8000", configs.Services.UsersURL)
		assert.Equal(t, "events", configs.NSQ.MetricsTopic)
		assert.Equal(t, "debug", configs.Logger.Level)
	})
}

func TestEnvHelpers(t *testing.T) {
	t.Run("invalid integer falls back to the default", func(t *testing.T) {
		t.Setenv("HTTP_CLIENT_TIMEOUT", "soon")
		assert.Equal(t, 10, GetEnvAsInt("HTTP_CLIENT_TIMEOUT", 10))
	})

	t.Run("invalid boolean falls back to the default", func(t *testing.T) {
		t.Setenv("APP_DEBUG", "maybe")
		assert.Equal(t, true, GetEnvAsBool("APP_DEBUG", true))
	})

	t.Run("floats parse", func(t *testing.T) {
		t.Setenv("SOME_RATIO", "0.25")
		assert.Equal(t, 0.25, GetEnvAsFloat("SOME_RATIO", 1))
	})
}
