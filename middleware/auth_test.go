package middleware

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestParseRawTokenAcceptsValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	raw := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	claims, err := parseRawToken(raw)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims["user_id"])
}

func TestParseRawTokenRejectsBadInput(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := parseRawToken("")
	assert.Error(t, err)

	_, err = parseRawToken("not-a-jwt")
	assert.Error(t, err)

	forged := signToken(t, "wrong-secret", jwt.MapClaims{"user_id": "u1"})
	_, err = parseRawToken(forged)
	assert.Error(t, err)

	expired := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	_, err = parseRawToken(expired)
	assert.Error(t, err)
}
