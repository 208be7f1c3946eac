package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/marketpulse/internal/types"
)

func registerViaAPI(t *testing.T, s *Server) {
	t.Helper()

	rec := doRequest(t, s, "POST", "/auth/register",
		`{"name":"Ada","email":"ada@acme.test","password":"correct horse"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func verifyViaAPI(t *testing.T, s *Server, sender *captureSender) string {
	t.Helper()

	require.NotEmpty(t, sender.otps)
	rec := doRequest(t, s, "POST", "/auth/verify-otp",
		`{"email":"ada@acme.test","otp":"`+sender.otps[len(sender.otps)-1]+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegisterEndpoint(t *testing.T) {
	s, _, _, sender := newTestServer(t)

	rec := doRequest(t, s, "POST", "/auth/register",
		`{"name":"Ada","email":"ada@acme.test","password":"correct horse"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp types.RegisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.User.Verified)
	assert.NotEmpty(t, resp.Message)
	assert.Len(t, sender.otps, 1)
}

func TestRegisterEndpoint_Validation(t *testing.T) {
	s, _, _, _ := newTestServer(t)

	rec := doRequest(t, s, "POST", "/auth/register", `{"name":"Ada","email":"bad","password":"correct horse"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, s, "POST", "/auth/register", `{"name":"Ada","email":"ada@acme.test","password":"short"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, s, "POST", "/auth/register", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterEndpoint_DuplicateEmail(t *testing.T) {
	s, _, _, _ := newTestServer(t)
	registerViaAPI(t, s)

	rec := doRequest(t, s, "POST", "/auth/register",
		`{"name":"Ada","email":"ada@acme.test","password":"correct horse"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestVerifyOTPEndpoint(t *testing.T) {
	s, _, _, sender := newTestServer(t)
	registerViaAPI(t, s)

	token := verifyViaAPI(t, s, sender)
	claims, err := s.jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.NotEqual(t, "", claims.UserID.String())
}

func TestVerifyOTPEndpoint_WrongCode(t *testing.T) {
	s, _, _, sender := newTestServer(t)
	registerViaAPI(t, s)

	wrong := "000000"
	if sender.otps[0] == wrong {
		wrong = "000001"
	}
	rec := doRequest(t, s, "POST", "/auth/verify-otp",
		`{"email":"ada@acme.test","otp":"`+wrong+`"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestResendOTPEndpoint(t *testing.T) {
	s, _, _, sender := newTestServer(t)
	registerViaAPI(t, s)

	rec := doRequest(t, s, "POST", "/auth/resend-otp", `{"email":"ada@acme.test"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, sender.otps, 2)
}

func TestLoginEndpoint(t *testing.T) {
	s, _, _, sender := newTestServer(t)
	registerViaAPI(t, s)
	verifyViaAPI(t, s, sender)

	rec := doRequest(t, s, "POST", "/auth/login",
		`{"email":"ada@acme.test","password":"correct horse"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.User.Verified)
}

func TestLoginEndpoint_UnverifiedIsForbidden(t *testing.T) {
	s, _, _, _ := newTestServer(t)
	registerViaAPI(t, s)

	rec := doRequest(t, s, "POST", "/auth/login",
		`{"email":"ada@acme.test","password":"correct horse"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdatePasswordEndpoint_RequiresAuth(t *testing.T) {
	s, _, _, _ := newTestServer(t)

	rec := doRequest(t, s, "PUT", "/auth/password",
		`{"current_password":"a","new_password":"battery staple"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdatePasswordEndpoint(t *testing.T) {
	s, _, _, sender := newTestServer(t)
	registerViaAPI(t, s)
	token := verifyViaAPI(t, s, sender)

	req := httptest.NewRequest("PUT", "/auth/password",
		strings.NewReader(`{"current_password":"correct horse","new_password":"battery staple"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	loginRec := doRequest(t, s, "POST", "/auth/login",
		`{"email":"ada@acme.test","password":"battery staple"}`)
	assert.Equal(t, http.StatusOK, loginRec.Code)
}
