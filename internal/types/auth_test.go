package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateUserRequest_Validate(t *testing.T) {
	valid := CreateUserRequest{Name: "Ada", Email: "ada@acme.test", Password: "longenough"}
	assert.NoError(t, valid.Validate())

	shortPassword := CreateUserRequest{Name: "Ada", Email: "ada@acme.test", Password: "short"}
	assert.Error(t, shortPassword.Validate())

	badEmail := CreateUserRequest{Name: "Ada", Email: "not-an-email", Password: "longenough"}
	assert.Error(t, badEmail.Validate())
}

func TestLoginRequest_Validate(t *testing.T) {
	valid := LoginRequest{Email: "ada@acme.test", Password: "x"}
	assert.NoError(t, valid.Validate())

	missing := LoginRequest{Email: "ada@acme.test"}
	assert.Error(t, missing.Validate())
}

func TestVerifyOTPRequest_Validate(t *testing.T) {
	valid := VerifyOTPRequest{Email: "ada@acme.test", OTP: "123456"}
	assert.NoError(t, valid.Validate())

	tooShort := VerifyOTPRequest{Email: "ada@acme.test", OTP: "123"}
	assert.Error(t, tooShort.Validate())

	notNumeric := VerifyOTPRequest{Email: "ada@acme.test", OTP: "12a456"}
	assert.Error(t, notNumeric.Validate())
}

func TestUpdatePasswordRequest_Validate(t *testing.T) {
	valid := UpdatePasswordRequest{CurrentPassword: "old", NewPassword: "longenough"}
	assert.NoError(t, valid.Validate())

	short := UpdatePasswordRequest{CurrentPassword: "old", NewPassword: "short"}
	assert.Error(t, short.Validate())
}
