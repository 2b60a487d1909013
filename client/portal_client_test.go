package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edocta/consulta-vehicular/config"
)

func testConfig() *config.Config {
	return &config.Config{
		PortalURL:         config.DefaultPortalURL,
		Email:             "consultas@example.com",
		Headless:          true,
		NavigationTimeout: 45 * time.Second,
		ElementTimeout:    15 * time.Second,
	}
}

func TestLaunchOptionsWithoutProxy(t *testing.T) {
	c := NewPortalClient(testConfig())

	opts := c.launchOptions()
	require.NotNil(t, opts.Headless)
	assert.True(t, *opts.Headless)
	assert.Nil(t, opts.Proxy)
	assert.Nil(t, opts.ExecutablePath)
	assert.Equal(t, []string{
		"--disable-gpu",
		"--disable-dev-shm-usage",
		"--disable-setuid-sandbox",
		"--no-sandbox",
		"--disable-accelerated-2d-canvas",
		"--disable-web-security",
		"--disable-features=site-per-process",
	}, opts.Args)
	for _, arg := range opts.Args {
		assert.NotContains(t, arg, "AutomationControlled")
	}
}

func TestLaunchOptionsWithProxy(t *testing.T) {
	cfg := testConfig()
	cfg.ProxyServer = "http://proxy.local:3128"
	cfg.ProxyUsername = "user"
	cfg.ProxyPassword = "secret"
	cfg.BrowserPath = "/usr/bin/chromium"
	c := NewPortalClient(cfg)

	opts := c.launchOptions()
	require.NotNil(t, opts.Proxy)
	assert.Equal(t, "http://proxy.local:3128", opts.Proxy.Server)
	require.NotNil(t, opts.Proxy.Username)
	assert.Equal(t, "user", *opts.Proxy.Username)
	assert.Equal(t, "secret", *opts.Proxy.Password)
	require.NotNil(t, opts.ExecutablePath)
	assert.Equal(t, "/usr/bin/chromium", *opts.ExecutablePath)
}

func TestProxyWithoutCredentials(t *testing.T) {
	cfg := testConfig()
	cfg.ProxyServer = "http://proxy.local:3128"

	p := NewPortalClient(cfg).proxy()
	require.NotNil(t, p)
	assert.Nil(t, p.Username)
	assert.Nil(t, p.Password)
}

func TestContextOptions(t *testing.T) {
	opts := NewPortalClient(testConfig()).contextOptions()

	require.NotNil(t, opts.Viewport)
	assert.Equal(t, 1920, opts.Viewport.Width)
	assert.Equal(t, 1080, opts.Viewport.Height)
	require.NotNil(t, opts.UserAgent)
	assert.Contains(t, *opts.UserAgent, "Chrome/120")
}

func TestHasResultMarkers(t *testing.T) {
	assert.True(t, hasResultMarkers("Marca:\nTOYOTA"))
	assert.True(t, hasResultMarkers("TOTAL A PAGAR: $1.00"))
	assert.False(t, hasResultMarkers("Acepto bajo protesta de decir verdad"))
	assert.False(t, hasResultMarkers(""))
}

func TestPauseHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := pause(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestPauseCompletes(t *testing.T) {
	assert.NoError(t, pause(context.Background(), time.Millisecond))
}

func TestMillis(t *testing.T) {
	assert.Equal(t, float64(45000), millis(45*time.Second))
	assert.Equal(t, float64(300), millis(waitShort))
}
