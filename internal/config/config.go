package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Resolver ResolverConfig `yaml:"resolver"`
	Fetch    FetchConfig    `yaml:"fetch"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string        `yaml:"host" envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port         int           `yaml:"port" envconfig:"PORT" default:"3000"`
	Env          string        `yaml:"env" envconfig:"APP_ENV" default:"development"`
	ReadTimeout  time.Duration `yaml:"read_timeout" envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `yaml:"write_timeout" envconfig:"SERVER_WRITE_TIMEOUT" default:"2m"`
}

// ResolverConfig holds upstream metadata API configuration.
type ResolverConfig struct {
	BaseURL     string        `yaml:"base_url" envconfig:"RESOLVER_BASE_URL"`
	Timeout     time.Duration `yaml:"timeout" envconfig:"RESOLVER_TIMEOUT" default:"15s"`
	MaxAttempts int           `yaml:"max_attempts" envconfig:"RESOLVER_MAX_ATTEMPTS" default:"3"`
	RetryDelay  time.Duration `yaml:"retry_delay" envconfig:"RESOLVER_RETRY_DELAY" default:"1s"`
	UserAgent   string        `yaml:"user_agent" envconfig:"RESOLVER_USER_AGENT" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"`
}

// FetchConfig holds video download configuration.
type FetchConfig struct {
	Timeout   time.Duration `yaml:"timeout" envconfig:"FETCH_TIMEOUT" default:"30s"`
	MaxBytes  int64         `yaml:"max_bytes" envconfig:"FETCH_MAX_BYTES" default:"104857600"` // 100 MiB
	UserAgent string        `yaml:"user_agent" envconfig:"FETCH_USER_AGENT" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values.
func Load(configPath string) (*Config, error) {
	cfg := &Config{}

	// Load from YAML file if provided
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	// Override with environment variables
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set.
func (c *Config) Validate() error {
	if c.Resolver.BaseURL == "" {
		return fmt.Errorf("RESOLVER_BASE_URL is required")
	}
	if c.Resolver.MaxAttempts < 1 {
		return fmt.Errorf("RESOLVER_MAX_ATTEMPTS must be at least 1")
	}
	if c.Fetch.MaxBytes <= 0 {
		return fmt.Errorf("FETCH_MAX_BYTES must be positive")
	}
	return nil
}

// Address returns the server address in host:port format.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsDevelopment reports whether the server runs in development mode.
// Development mode exposes error details in 500 responses.
func (c *ServerConfig) IsDevelopment() bool {
	return c.Env == "development"
}
