package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"email exists", &ErrEmailAlreadyExists{Email: "a@b.c"}, http.StatusConflict},
		{"already verified", &ErrAlreadyVerified{}, http.StatusConflict},
		{"invalid credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized},
		{"password mismatch", &ErrPasswordMismatch{}, http.StatusUnauthorized},
		{"invalid otp", &ErrInvalidOTP{}, http.StatusUnauthorized},
		{"expired otp", &ErrOTPExpired{}, http.StatusUnauthorized},
		{"not verified", &ErrEmailNotVerified{}, http.StatusForbidden},
		{"user not found", &ErrUserNotFound{UserID: uuid.New()}, http.StatusNotFound},
		{"validation", &ErrValidation{Field: "email", Message: "required"}, http.StatusBadRequest},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrUserNotFound_Message(t *testing.T) {
	byEmail := &ErrUserNotFound{Email: "ada@acme.test"}
	assert.Equal(t, "user not found: ada@acme.test", byEmail.Error())

	id := uuid.New()
	byID := &ErrUserNotFound{UserID: id}
	assert.Contains(t, byID.Error(), id.String())
}
