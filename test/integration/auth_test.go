package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillnet_backend/internal/models"
	"skillnet_backend/test/helpers"
)

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	registerBody := map[string]interface{}{
		"name":     "Alice Doe",
		"email":    "Alice@Example.com",
		"password": "SuperSecret1",
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", registerBody)

	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var resp struct {
		AccessToken  string    `json:"access_token"`
		RefreshToken string    `json:"refresh_token"`
		Expiration   time.Time `json:"expiration"`
		User         struct {
			ID     string   `json:"id"`
			Email  string   `json:"email"`
			Rating *float64 `json:"rating"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	// Email is stored and returned lower-cased.
	assert.Equal(t, "alice@example.com", resp.User.Email)

	// The response carries the access token expiry and the user's rating.
	expectedExpiry := time.Now().Add(time.Duration(ts.Config.JWT.ExpirationMinutes) * time.Minute)
	assert.WithinDuration(t, expectedExpiry, resp.Expiration, 5*time.Second)
	require.NotNil(t, resp.User.Rating)
	assert.Equal(t, float64(0), *resp.User.Rating)
}

func TestRegister_DuplicateEmail_LeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	helpers.CreateUser(t, ts.DB, &models.User{
		Name:         "User One",
		Email:        "duplicate@test.com",
		PasswordHash: "Password123",
	})

	duplicateBody := map[string]interface{}{
		"name":     "User Two",
		"email":    "duplicate@test.com",
		"password": "AnotherPass1",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", duplicateBody)

	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "already exists")

	var count int64
	ts.DB.Model(&models.User{}).Where("email = ?", "duplicate@test.com").Count(&count)
	assert.Equal(t, int64(1), count)

	var name string
	ts.DB.Model(&models.User{}).Where("email = ?", "duplicate@test.com").Pluck("name", &name)
	assert.Equal(t, "User One", name)
}

func TestRegister_WeakPassword_ListsEveryReason(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Weak",
		"email":    "weak@test.com",
		"password": "short",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "at least 8 characters")
	assert.Contains(t, bodyStr, "uppercase")
	assert.Contains(t, bodyStr, "digit")
}

func TestLogin_WrongPasswordAndUnknownEmail_AreIndistinguishable(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	helpers.CreateUser(t, ts.DB, &models.User{
		Name:         "Known User",
		Email:        "known@test.com",
		PasswordHash: "CorrectPass1",
	})

	wrongPassRes, wrongPassBody := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "known@test.com",
		"password": "WrongPass999",
	})
	unknownRes, unknownBody := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "nobody@test.com",
		"password": "WhateverPass1",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassRes.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, unknownRes.StatusCode)
	// Same status AND same body: the response must not leak whether the
	// account exists.
	assert.Equal(t, wrongPassBody, unknownBody)
	assert.Contains(t, wrongPassBody, "Invalid email or password")
}

func TestRefresh_RotatesToken(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Rotator",
		"email":    "rotate@test.com",
		"password": "SuperSecret1",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var session struct {
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &session))

	refreshRes, refreshBody := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": session.RefreshToken,
	})
	require.Equal(t, http.StatusOK, refreshRes.StatusCode, refreshBody)

	var rotated struct {
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(refreshBody), &rotated))
	assert.NotEqual(t, session.RefreshToken, rotated.RefreshToken)

	// The old token was rotated out and cannot be replayed.
	replayRes, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": session.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, replayRes.StatusCode)

	// The new one works.
	newRes, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": rotated.RefreshToken,
	})
	assert.Equal(t, http.StatusOK, newRes.StatusCode)
}

func TestRevoke_KillsSession(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Revoker",
		"email":    "revoke@test.com",
		"password": "SuperSecret1",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var session struct {
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &session))

	revokeRes, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/revoke", "", map[string]interface{}{
		"refresh_token": session.RefreshToken,
	})
	assert.Equal(t, http.StatusOK, revokeRes.StatusCode)

	refreshRes, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": session.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, refreshRes.StatusCode)
}

func TestRevoke_UnknownToken_ReturnsNotFound(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/revoke", "", map[string]interface{}{
		"refresh_token": "never-issued-token",
	})

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "Refresh token not found")
}
