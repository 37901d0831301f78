package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authResponseJSON struct {
	Data struct {
		User struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
		Tokens struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
		} `json:"tokens"`
	} `json:"data"`
}

func TestRegisterEndpoint(t *testing.T) {
	env := newTestEnv(t)

	var body authResponseJSON
	resp := env.do(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"name":     "Ada Lovelace",
		"email":    "ada@example.com",
		"password": "correct-horse",
	}, &body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "ada@example.com", body.Data.User.Email)
	assert.Equal(t, "customer", body.Data.User.Role)
	assert.NotEmpty(t, body.Data.Tokens.AccessToken)
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"name":     "A",
		"email":    "not-an-email",
		"password": "short",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegisterDuplicate(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"name":     "Demo Again",
		"email":    "user@example.com",
		"password": "irrelevant-pass",
	}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestLoginEndpoint(t *testing.T) {
	env := newTestEnv(t)

	var body authResponseJSON
	resp := env.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "user@example.com",
		"password": "password123",
	}, &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body.Data.Tokens.RefreshToken)

	resp = env.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "user@example.com",
		"password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRefreshEndpoint(t *testing.T) {
	env := newTestEnv(t)

	var body authResponseJSON
	resp := env.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "user@example.com",
		"password": "password123",
	}, &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var refreshed struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	resp = env.do(t, http.MethodPost, "/api/v1/auth/refresh", map[string]string{
		"refresh_token": body.Data.Tokens.RefreshToken,
	}, &refreshed)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, refreshed.Data.AccessToken)

	// The old refresh token is rotated out.
	resp = env.do(t, http.MethodPost, "/api/v1/auth/refresh", map[string]string{
		"refresh_token": body.Data.Tokens.RefreshToken,
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMeEndpoint(t *testing.T) {
	env := newTestEnv(t)
	bearer := env.login(t, "admin@example.com")

	var body struct {
		Data struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"data"`
	}
	resp := env.do(t, http.MethodGet, "/api/v1/auth/me", nil, &body, "Authorization", bearer)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "admin@example.com", body.Data.Email)
	assert.Equal(t, "admin", body.Data.Role)

	resp = env.do(t, http.MethodGet, "/api/v1/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogoutEndpoint(t *testing.T) {
	env := newTestEnv(t)

	var body authResponseJSON
	resp := env.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "user@example.com",
		"password": "password123",
	}, &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	bearer := "Bearer " + body.Data.Tokens.AccessToken

	resp = env.do(t, http.MethodPost, "/api/v1/auth/logout", nil, nil, "Authorization", bearer)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Refreshing with the revoked token fails.
	resp = env.do(t, http.MethodPost, "/api/v1/auth/refresh", map[string]string{
		"refresh_token": body.Data.Tokens.RefreshToken,
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUserResponseNeverLeaksPasswordHash(t *testing.T) {
	env := newTestEnv(t)

	var raw map[string]any
	resp := env.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "user@example.com",
		"password": "password123",
	}, &raw)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := raw["data"].(map[string]any)
	user := data["user"].(map[string]any)
	_, leaked := user["password_hash"]
	assert.False(t, leaked)
}
