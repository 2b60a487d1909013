package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPortalURL = "https://icvnl.gob.mx:1080/estadoctav3/edoctaconsulta#no-back-button"
	Version          = "3.0"
)

type Config struct {
	ServerPort string

	PortalURL         string
	Email             string
	ProxyServer       string
	ProxyUsername     string
	ProxyPassword     string
	Headless          bool
	BrowserPath       string
	NavigationTimeout time.Duration
	ElementTimeout    time.Duration

	LogLevel  string
	LogFormat string
}

// LoadConfig reads settings from the environment, optionally seeded from .env
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // ignore missing file

	cfg := &Config{
		ServerPort:    getenv("PORT", getenv("SERVER_PORT", "3000")),
		PortalURL:     getenv("PORTAL_URL", DefaultPortalURL),
		Email:         os.Getenv("EMAIL"),
		ProxyServer:   os.Getenv("PROXY_SERVER"),
		ProxyUsername: os.Getenv("PROXY_USERNAME"),
		ProxyPassword: os.Getenv("PROXY_PASSWORD"),
		BrowserPath:   os.Getenv("BROWSER_EXECUTABLE_PATH"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogFormat:     getenv("LOG_FORMAT", "text"),
	}

	if cfg.Email == "" {
		return cfg, errors.New("EMAIL is required")
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 {
		return cfg, fmt.Errorf("invalid PORT: %s", cfg.ServerPort)
	}

	var err error
	if cfg.Headless, err = getenvBool("HEADLESS", true); err != nil {
		return cfg, err
	}
	if cfg.NavigationTimeout, err = getenvMillis("NAVIGATION_TIMEOUT_MS", 45*time.Second); err != nil {
		return cfg, err
	}
	if cfg.ElementTimeout, err = getenvMillis("ELEMENT_TIMEOUT_MS", 15*time.Second); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ListenAddr returns the host:port string for the HTTP server.
func (c *Config) ListenAddr() string {
	return ":" + c.ServerPort
}

// ProxyLabel describes the proxy for status endpoints without leaking credentials.
func (c *Config) ProxyLabel() string {
	if c.ProxyServer == "" {
		return "desactivado"
	}
	return c.ProxyServer
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s: %s", key, v)
	}
	return b, nil
}

func getenvMillis(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms <= 0 {
		return fallback, fmt.Errorf("invalid %s: %s", key, v)
	}
	return time.Duration(ms) * time.Millisecond, nil
}
