package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "MENU_SERVER__PORT", want: "server.port"},
		{in: "MENU_SERVER__READ_TIMEOUT", want: "server.read_timeout"},
		{in: "MENU_OBSERVABILITY__LOGGING__LEVEL", want: "observability.logging.level"},
		{in: "MENU_OBSERVABILITY__NEW_RELIC__LICENSE_KEY", want: "observability.new_relic.license_key"},
		{in: "MENU_PRIMARY__ENV", want: "primary.env"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.in))
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 30, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.False(t, cfg.Observability.NewRelicEnabled())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("MENU_PRIMARY__ENV", "production")
	t.Setenv("MENU_SERVER__PORT", "8080")
	t.Setenv("MENU_SERVER__IDLE_TIMEOUT", "90")
	t.Setenv("MENU_OBSERVABILITY__LOGGING__LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 90, cfg.Server.IdleTimeout)
	assert.Equal(t, 30, cfg.Server.WriteTimeout)
	assert.Equal(t, "debug", cfg.Observability.Logging.Level)
	assert.True(t, cfg.Observability.IsProduction())
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non-numeric port", key: "MENU_SERVER__PORT", value: "http"},
		{name: "unknown log level", key: "MENU_OBSERVABILITY__LOGGING__LEVEL", value: "verbose"},
		{name: "unknown log format", key: "MENU_OBSERVABILITY__LOGGING__FORMAT", value: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Logging.Level = "warn"
	assert.Equal(t, "warn", cfg.GetLogLevel())
}
