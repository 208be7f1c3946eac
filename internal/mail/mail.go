// Package mail sends account verification email. In demo mode (credentials
// left at the documented defaults) messages are logged instead of sent, so
// the auth flow works on a fresh checkout with no SMTP account.
package mail

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/jonathan/marketpulse/internal/config"
)

// Sender delivers outbound mail.
type Sender interface {
	// SendOTP delivers a one-time verification code to the address.
	SendOTP(to, otp string) error
}

// NewSender returns an SMTP-backed sender, or a logging sender when the
// configuration is in demo mode.
func NewSender(cfg *config.MailConfig) Sender {
	if cfg.DemoMode() {
		log.Printf("[mail] SMTP credentials not configured, OTP codes will be logged")
		return &logSender{}
	}
	return &smtpSender{cfg: cfg}
}

type smtpSender struct {
	cfg *config.MailConfig
}

func (s *smtpSender) SendOTP(to, otp string) error {
	msg := buildOTPMessage(s.cfg.From, to, otp)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send OTP email to %s: %w", to, err)
	}
	return nil
}

type logSender struct{}

func (l *logSender) SendOTP(to, otp string) error {
	log.Printf("[mail] demo mode: OTP for %s is %s", to, otp)
	return nil
}

// buildOTPMessage assembles the RFC 5322 message body for an OTP email.
func buildOTPMessage(from, to, otp string) []byte {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", to))
	sb.WriteString("Subject: Your MarketPulse verification code\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.\r\n", otp))
	return []byte(sb.String())
}
