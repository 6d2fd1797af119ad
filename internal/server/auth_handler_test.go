package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

func newTestAuthHandler() (*AuthHandler, *AuthService) {
	authService, _ := newTestAuthService()
	return NewAuthHandler(authService, newTestJWTService()), authService
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	handler, _ := newTestAuthHandler()

	w := postJSON(t, handler.Register, "/api/auth/register", types.RegisterRequest{
		Name:     "Ada Obi",
		Email:    "ada@example.com",
		Password: "correct-horse-battery",
		Company:  "Paystack",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var response types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Token)
	require.NotNil(t, response.Recruiter)
	assert.Equal(t, "ada@example.com", response.Recruiter.Email)

	// Password hash never appears in the response body
	assert.NotContains(t, w.Body.String(), "password_hash")
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	handler, _ := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	handler.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	handler, _ := newTestAuthHandler()

	tests := []struct {
		name string
		req  types.RegisterRequest
	}{
		{name: "short password", req: types.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "short"}},
		{name: "bad email", req: types.RegisterRequest{Name: "Ada", Email: "not-an-email", Password: "correct-horse-battery"}},
		{name: "missing name", req: types.RegisterRequest{Email: "ada@example.com", Password: "correct-horse-battery"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, handler.Register, "/api/auth/register", tt.req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "validation error")
		})
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	handler, _ := newTestAuthHandler()

	first := postJSON(t, handler.Register, "/api/auth/register", types.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "correct-horse-battery",
	})
	require.Equal(t, http.StatusCreated, first.Code)

	second := postJSON(t, handler.Register, "/api/auth/register", types.RegisterRequest{
		Name: "Other", Email: "ada@example.com", Password: "another-password",
	})
	assert.Equal(t, http.StatusConflict, second.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	handler, _ := newTestAuthHandler()

	registered := postJSON(t, handler.Register, "/api/auth/register", types.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "correct-horse-battery",
	})
	require.Equal(t, http.StatusCreated, registered.Code)

	w := postJSON(t, handler.Login, "/api/auth/login", types.LoginRequest{
		Email: "ada@example.com", Password: "correct-horse-battery",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Token)

	// Issued token is valid for the protected endpoints
	claims, err := newTestJWTService().ValidateToken(response.Token)
	require.NoError(t, err)
	assert.Equal(t, response.Recruiter.ID, claims.GetRecruiterID())
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	handler, _ := newTestAuthHandler()

	registered := postJSON(t, handler.Register, "/api/auth/register", types.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "correct-horse-battery",
	})
	require.Equal(t, http.StatusCreated, registered.Code)

	tests := []struct {
		name string
		req  types.LoginRequest
	}{
		{name: "wrong password", req: types.LoginRequest{Email: "ada@example.com", Password: "wrong-password"}},
		{name: "unknown email", req: types.LoginRequest{Email: "nobody@example.com", Password: "correct-horse-battery"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, handler.Login, "/api/auth/login", tt.req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "invalid email or password")
		})
	}
}

func TestAuthHandler_UpdatePassword(t *testing.T) {
	handler, service := newTestAuthHandler()
	created := registerTestRecruiter(t, service)

	payload, err := json.Marshal(types.UpdatePasswordRequest{
		CurrentPassword: "correct-horse-battery",
		NewPassword:     "new-password-123",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/password", bytes.NewReader(payload))
	w := httptest.NewRecorder()
	handler.UpdatePassword(w, req, created.ID)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Password updated successfully")
}

func TestAuthHandler_UpdatePassword_WrongCurrent(t *testing.T) {
	handler, service := newTestAuthHandler()
	created := registerTestRecruiter(t, service)

	payload, err := json.Marshal(types.UpdatePasswordRequest{
		CurrentPassword: "not-the-password",
		NewPassword:     "new-password-123",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/password", bytes.NewReader(payload))
	w := httptest.NewRecorder()
	handler.UpdatePassword(w, req, created.ID)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_UpdatePassword_ShortNewPassword(t *testing.T) {
	handler, service := newTestAuthHandler()
	created := registerTestRecruiter(t, service)

	payload, err := json.Marshal(types.UpdatePasswordRequest{
		CurrentPassword: "correct-horse-battery",
		NewPassword:     "short",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/password", bytes.NewReader(payload))
	w := httptest.NewRecorder()
	handler.UpdatePassword(w, req, created.ID)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation error")
}
