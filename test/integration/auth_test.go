package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whvsdan/theboardroom/internal/services/dto"
	"github.com/whvsdan/theboardroom/test/helpers"
)

func TestAuth_LoginFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)
	helpers.CreateAdmin(t, ts.DB, "admin@theboardroom.events", "correct-password")

	// Wrong password must not leak whether the account exists.
	res, body := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]string{
		"email":    "admin@theboardroom.events",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "Invalid email or password")

	// Unknown email gets the same answer.
	res, body = ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]string{
		"email":    "ghost@theboardroom.events",
		"password": "correct-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "Invalid email or password")

	// Correct credentials return both tokens and the user info.
	res, body = ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]string{
		"email":    "admin@theboardroom.events",
		"password": "correct-password",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var loginRes dto.LoginResponse
	require.NoError(t, json.Unmarshal([]byte(body), &loginRes))
	assert.NotEmpty(t, loginRes.AccessToken)
	assert.NotEmpty(t, loginRes.RefreshToken)
	assert.Equal(t, "admin@theboardroom.events", loginRes.User.Email)
	assert.Equal(t, "admin", loginRes.User.Role)
}

func TestAuth_Me(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := helpers.SeedAndLoginAdmin(t, ts)

	res, body := ts.SendRequest(t, "GET", "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "admin@theboardroom.events")

	// No token, no identity.
	res, _ = ts.SendRequest(t, "GET", "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestAuth_RefreshRotation(t *testing.T) {
	ts := helpers.NewTestServer(t)
	helpers.CreateAdmin(t, ts.DB, "admin@theboardroom.events", "correct-password")

	_, body := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]string{
		"email":    "admin@theboardroom.events",
		"password": "correct-password",
	})
	var first dto.LoginResponse
	require.NoError(t, json.Unmarshal([]byte(body), &first))

	// Exchange the refresh token; the old one must stop working.
	res, body := ts.SendRequest(t, "POST", "/api/v1/auth/refresh", "", map[string]string{
		"refresh_token": first.RefreshToken,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var second dto.LoginResponse
	require.NoError(t, json.Unmarshal([]byte(body), &second))
	assert.NotEmpty(t, second.AccessToken)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	res, _ = ts.SendRequest(t, "POST", "/api/v1/auth/refresh", "", map[string]string{
		"refresh_token": first.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestAuth_Logout(t *testing.T) {
	ts := helpers.NewTestServer(t)
	helpers.CreateAdmin(t, ts.DB, "admin@theboardroom.events", "correct-password")

	_, body := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]string{
		"email":    "admin@theboardroom.events",
		"password": "correct-password",
	})
	var login dto.LoginResponse
	require.NoError(t, json.Unmarshal([]byte(body), &login))

	res, _ := ts.SendRequest(t, "POST", "/api/v1/auth/logout", "", map[string]string{
		"refresh_token": login.RefreshToken,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// A revoked refresh token cannot mint new sessions.
	res, _ = ts.SendRequest(t, "POST", "/api/v1/auth/refresh", "", map[string]string{
		"refresh_token": login.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
