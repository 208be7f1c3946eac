// Package config provides environment-driven configuration for the server and CLI.
package config

import (
	"fmt"
	"os"
)

// QuoteConfig holds configuration for the upstream stock-quote API.
type QuoteConfig struct {
	BaseURL string
	APIKey  string
}

// NewQuoteConfig creates quote-API configuration from environment variables.
// It reads QUOTE_API_URL (required) and QUOTE_API_KEY (optional; some
// upstreams allow unauthenticated access at reduced rate limits).
func NewQuoteConfig() (*QuoteConfig, error) {
	baseURL := os.Getenv("QUOTE_API_URL")
	if baseURL == "" {
		return nil, fmt.Errorf("QUOTE_API_URL is required but not set")
	}

	config := &QuoteConfig{
		BaseURL: baseURL,
		APIKey:  os.Getenv("QUOTE_API_KEY"),
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *QuoteConfig) normalize() error {
	if c.BaseURL == "" {
		return fmt.Errorf("QUOTE_API_URL cannot be empty")
	}
	return nil
}
