package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "SERVER_PORT", "PORTAL_URL", "EMAIL",
		"PROXY_SERVER", "PROXY_USERNAME", "PROXY_PASSWORD",
		"HEADLESS", "BROWSER_EXECUTABLE_PATH",
		"NAVIGATION_TIMEOUT_MS", "ELEMENT_TIMEOUT_MS",
		"LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("EMAIL", "consultas@example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, ":3000", cfg.ListenAddr())
	assert.Equal(t, DefaultPortalURL, cfg.PortalURL)
	assert.Equal(t, "consultas@example.com", cfg.Email)
	assert.True(t, cfg.Headless)
	assert.Equal(t, 45*time.Second, cfg.NavigationTimeout)
	assert.Equal(t, 15*time.Second, cfg.ElementTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "desactivado", cfg.ProxyLabel())
}

func TestLoadConfigOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("EMAIL", "consultas@example.com")
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("PROXY_SERVER", "http://proxy.local:3128")
	t.Setenv("PROXY_USERNAME", "user")
	t.Setenv("PROXY_PASSWORD", "secret")
	t.Setenv("HEADLESS", "false")
	t.Setenv("NAVIGATION_TIMEOUT_MS", "60000")
	t.Setenv("ELEMENT_TIMEOUT_MS", "5000")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.ServerPort)
	assert.False(t, cfg.Headless)
	assert.Equal(t, time.Minute, cfg.NavigationTimeout)
	assert.Equal(t, 5*time.Second, cfg.ElementTimeout)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "http://proxy.local:3128", cfg.ProxyLabel())
	assert.Equal(t, "user", cfg.ProxyUsername)
}

func TestLoadConfigPortTakesPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("EMAIL", "consultas@example.com")
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.ServerPort)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		msg  string
	}{
		{"missing email", map[string]string{}, "EMAIL is required"},
		{"bad port", map[string]string{"EMAIL": "a@b.c", "PORT": "abc"}, "invalid PORT"},
		{"bad headless", map[string]string{"EMAIL": "a@b.c", "HEADLESS": "maybe"}, "invalid HEADLESS"},
		{"bad timeout", map[string]string{"EMAIL": "a@b.c", "NAVIGATION_TIMEOUT_MS": "-1"}, "invalid NAVIGATION_TIMEOUT_MS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
