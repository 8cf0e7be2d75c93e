package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillnet_backend/internal/config"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret:            "unit-test-secret",
		Issuer:            "skillnet",
		Audience:          "skillnet-clients",
		ExpirationMinutes: 60,
		RefreshTTLDays:    7,
	}
}

func TestGenerateAndParseToken_RoundTripsClaims(t *testing.T) {
	cfg := testJWTConfig()

	token, expiresAt, err := GenerateToken(cfg, "user-123", "Alice", "alice@test.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(60*time.Minute), expiresAt, 5*time.Second)

	claims, err := ParseToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, "alice@test.com", claims.Email)
	assert.Equal(t, "skillnet", claims.Issuer)
	assert.NotEmpty(t, claims.ID, "every token carries a fresh jti")

	// The expiry handed back to callers and the one baked into the
	// claims are the same instant.
	assert.WithinDuration(t, expiresAt, claims.ExpiresAt.Time, time.Second)
}

func TestParseToken_RejectsWrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	token, _, err := GenerateToken(cfg, "user-123", "Alice", "alice@test.com")
	require.NoError(t, err)

	other := testJWTConfig()
	other.Secret = "different-secret"

	_, err = ParseToken(other, token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_RejectsWrongIssuerOrAudience(t *testing.T) {
	cfg := testJWTConfig()

	token, _, err := GenerateToken(cfg, "user-123", "Alice", "alice@test.com")
	require.NoError(t, err)

	badIssuer := testJWTConfig()
	badIssuer.Issuer = "someone-else"
	_, err = ParseToken(badIssuer, token)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	badAudience := testJWTConfig()
	badAudience.Audience = "other-clients"
	_, err = ParseToken(badAudience, token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_ReportsExpiryDistinctly(t *testing.T) {
	cfg := testJWTConfig()
	cfg.ExpirationMinutes = -1

	token, _, err := GenerateToken(cfg, "user-123", "Alice", "alice@test.com")
	require.NoError(t, err)

	_, err = ParseToken(cfg, token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestGenerateRefreshToken_IsOpaqueAndUnique(t *testing.T) {
	first, err := GenerateRefreshToken()
	require.NoError(t, err)
	second, err := GenerateRefreshToken()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	// 32 random bytes in standard base64.
	assert.Len(t, first, 44)
}
