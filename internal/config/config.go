package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the SDK configuration. Values come from defaults, then an
// optional YAML file, then environment variables, each layer
// overriding the previous one.
type Config struct {
	// APIBaseURL is the root of the remote storefront API.
	APIBaseURL string `yaml:"api_base_url"`

	// RequestTimeout bounds every API call.
	RequestTimeout time.Duration `yaml:"-"`

	// PageSize is how many products one catalog page holds.
	PageSize int `yaml:"page_size"`

	// FreeShippingOver is the subtotal above which shipping is free.
	FreeShippingOver int64 `yaml:"free_shipping_over"`

	// FlatShippingFee is charged below the free-shipping threshold.
	FlatShippingFee int64 `yaml:"flat_shipping_fee"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		APIBaseURL:       "http://localhost:4000/api",
		RequestTimeout:   10 * time.Second,
		PageSize:         6,
		FreeShippingOver: 1000,
		FlatShippingFee:  200,
		LogLevel:         "info",
	}
}

// Load builds the configuration from defaults, the YAML file at path
// (skipped when path is empty), and environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		// Durations arrive as strings ("10s"); yaml.v3 has no native
		// time.Duration support, so they are parsed separately.
		var file struct {
			RequestTimeout string `yaml:"request_timeout"`
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
		if file.RequestTimeout != "" {
			d, err := time.ParseDuration(file.RequestTimeout)
			if err != nil {
				return Config{}, fmt.Errorf("parse request_timeout: %w", err)
			}
			cfg.RequestTimeout = d
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("STOREFRONT_API_BASE_URL"); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv("STOREFRONT_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.RequestTimeout = d
		}
	}
	if v := os.Getenv("STOREFRONT_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.PageSize = n
		}
	}
	if v := os.Getenv("STOREFRONT_FREE_SHIPPING_OVER"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.FreeShippingOver = n
		}
	}
	if v := os.Getenv("STOREFRONT_FLAT_SHIPPING_FEE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.FlatShippingFee = n
		}
	}
	if v := os.Getenv("STOREFRONT_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

func (c *Config) validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api_base_url cannot be empty")
	}
	if c.PageSize < 1 {
		return fmt.Errorf("page_size must be positive, got %d", c.PageSize)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.FlatShippingFee < 0 || c.FreeShippingOver < 0 {
		return fmt.Errorf("shipping amounts cannot be negative")
	}
	return nil
}
