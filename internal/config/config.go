package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Prefix is the environment variable prefix, e.g. BABYWEAR_BACKEND_API_URL.
// Every variable also falls back to its unprefixed name (BACKEND_API_URL, PORT).
const Prefix = "BABYWEAR"

// Config holds the configuration for the gateway service.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"PORT" default:"3000"`

	// Upstream recommendation backend
	BackendAPIURL string `envconfig:"BACKEND_API_URL" default:"http://0.0.0.0:8080"`
	// Zero leaves the upstream call bounded only by the request context.
	UpstreamTimeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"0s"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// ResolveDefaults normalizes the backend URL (trimmed, no trailing slash) and validates values.
func (c *Config) ResolveDefaults() error {
	c.BackendAPIURL = strings.TrimRight(strings.TrimSpace(c.BackendAPIURL), "/")
	u, err := url.Parse(c.BackendAPIURL)
	if err != nil {
		return fmt.Errorf("invalid BACKEND_API_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported BACKEND_API_URL scheme: %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("BACKEND_API_URL has no host: %s", c.BackendAPIURL)
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid PORT: %d", c.HTTPPort)
	}
	if c.UpstreamTimeout < 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must not be negative: %s", c.UpstreamTimeout)
	}
	return nil
}

// New creates a new Config by parsing environment variables.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("backend_api_url", cfg.BackendAPIURL).
		Dur("upstream_timeout", cfg.UpstreamTimeout).
		Str("log_level", cfg.LogLevel).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing
func NewForTesting() *Config {
	return &Config{
		Environment:   EnvTesting,
		HTTPPort:      3000,
		BackendAPIURL: "http://localhost:8080",
		LogLevel:      "debug",
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
