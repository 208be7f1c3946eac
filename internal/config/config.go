// Package config provides environment-driven configuration for the server and CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// ServerConfig holds configuration for the HTTP server and its database.
type ServerConfig struct {
	Port          int
	MongoURI      string
	MongoDatabase string
}

// NewServerConfig creates server configuration from environment variables.
// It reads PORT (default: 8080), MONGODB_URI (required) and
// MONGODB_DATABASE (default: marketpulse).
func NewServerConfig() (*ServerConfig, error) {
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %v", err)
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		return nil, fmt.Errorf("MONGODB_URI is required but not set")
	}

	database := os.Getenv("MONGODB_DATABASE")
	if database == "" {
		database = "marketpulse"
	}

	config := &ServerConfig{
		Port:          port,
		MongoURI:      uri,
		MongoDatabase: database,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *ServerConfig) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.MongoURI == "" {
		return fmt.Errorf("MONGODB_URI cannot be empty")
	}
	return nil
}
