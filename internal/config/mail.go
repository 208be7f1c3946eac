// Package config provides environment-driven configuration for the server and CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// defaultMailCredential is the placeholder used when SMTP_USER or
// SMTP_PASSWORD is unset. Leaving either at this value activates demo mode,
// where OTP codes are logged instead of emailed.
const defaultMailCredential = "changeme"

// MailConfig holds configuration for outbound OTP email delivery.
type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// NewMailConfig creates mail configuration from environment variables.
// It reads SMTP_HOST (default: smtp.gmail.com), SMTP_PORT (default: 587),
// SMTP_USER, SMTP_PASSWORD and MAIL_FROM (default: SMTP_USER).
func NewMailConfig() (*MailConfig, error) {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}

	portStr := os.Getenv("SMTP_PORT")
	if portStr == "" {
		portStr = "587"
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %v", err)
	}

	user := os.Getenv("SMTP_USER")
	if user == "" {
		user = defaultMailCredential
	}

	password := os.Getenv("SMTP_PASSWORD")
	if password == "" {
		password = defaultMailCredential
	}

	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = user
	}

	config := &MailConfig{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *MailConfig) normalize() error {
	if c.Host == "" {
		return fmt.Errorf("SMTP_HOST cannot be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("SMTP_PORT out of range: %d", c.Port)
	}
	return nil
}

// DemoMode reports whether mail credentials were left at the documented
// defaults. In demo mode OTP codes are logged rather than sent.
func (c *MailConfig) DemoMode() bool {
	return c.User == defaultMailCredential || c.Password == defaultMailCredential
}
