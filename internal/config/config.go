package config

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"time"
)

// Config holds the server's runtime settings.
type Config struct {
	Bind         string
	Port         int
	LogLevel     string
	LogFormat    string
	RomsDir      string
	ImagesDir    string
	PublicURL    string
	ReapInterval time.Duration
	HostGrace    time.Duration
}

// Default returns a Config with development defaults.
func Default() *Config {
	return &Config{
		Bind:         "0.0.0.0",
		Port:         8080,
		LogLevel:     "info",
		LogFormat:    "text",
		RomsDir:      "public/roms",
		ImagesDir:    "public/image",
		ReapInterval: 30 * time.Second,
		HostGrace:    10 * time.Second,
	}
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.Port)
	}
	if c.ReapInterval <= 0 {
		return fmt.Errorf("reap interval must be positive: %s", c.ReapInterval)
	}
	if c.HostGrace <= 0 {
		return fmt.Errorf("host grace must be positive: %s", c.HostGrace)
	}
	return nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Bind, strconv.Itoa(c.Port))
}

// SetupLogger installs the default slog logger per the config.
func (c *Config) SetupLogger() {
	var h slog.Handler
	opts := &slog.HandlerOptions{}

	switch c.LogLevel {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	switch c.LogFormat {
	case "json":
		h = slog.NewJSONHandler(os.Stdout, opts)
	default:
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(h))
}
