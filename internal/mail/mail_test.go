package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/marketpulse/internal/config"
)

func TestNewSender_DemoModeUsesLogSender(t *testing.T) {
	cfg := &config.MailConfig{Host: "smtp.test", Port: 587, User: "changeme", Password: "changeme", From: "noreply@test"}

	sender := NewSender(cfg)
	_, ok := sender.(*logSender)
	assert.True(t, ok)

	// The logging sender never fails.
	require.NoError(t, sender.SendOTP("user@test", "123456"))
}

func TestNewSender_RealCredentialsUseSMTP(t *testing.T) {
	cfg := &config.MailConfig{Host: "smtp.test", Port: 587, User: "real", Password: "secret", From: "noreply@test"}

	_, ok := NewSender(cfg).(*smtpSender)
	assert.True(t, ok)
}

func TestBuildOTPMessage(t *testing.T) {
	msg := string(buildOTPMessage("noreply@test", "user@test", "654321"))

	assert.Contains(t, msg, "To: user@test\r\n")
	assert.Contains(t, msg, "From: noreply@test\r\n")
	assert.Contains(t, msg, "654321")
	assert.Contains(t, msg, "Subject: ")
}
