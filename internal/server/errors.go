// Package server provides the HTTP REST API for the dashboard backend.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
	Email  string
}

func (e *ErrUserNotFound) Error() string {
	if e.Email != "" {
		return fmt.Sprintf("user not found: %s", e.Email)
	}
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrPasswordMismatch indicates current password is incorrect
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrEmailNotVerified indicates the account has not completed OTP verification
type ErrEmailNotVerified struct{}

func (e *ErrEmailNotVerified) Error() string {
	return "email not verified"
}

// ErrInvalidOTP indicates the submitted OTP does not match
type ErrInvalidOTP struct{}

func (e *ErrInvalidOTP) Error() string {
	return "invalid verification code"
}

// ErrOTPExpired indicates the OTP is past its expiry
type ErrOTPExpired struct{}

func (e *ErrOTPExpired) Error() string {
	return "verification code expired"
}

// ErrAlreadyVerified indicates verification was requested for a verified account
type ErrAlreadyVerified struct{}

func (e *ErrAlreadyVerified) Error() string {
	return "email already verified"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists, *ErrAlreadyVerified:
		return http.StatusConflict
	case *ErrInvalidCredentials, *ErrPasswordMismatch, *ErrInvalidOTP, *ErrOTPExpired:
		return http.StatusUnauthorized
	case *ErrEmailNotVerified:
		return http.StatusForbidden
	case *ErrUserNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
