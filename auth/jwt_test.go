package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	signed := IssueJWT("u1", "riya@example.com", true)
	require.NotEmpty(t, signed)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "u1", claims["user_id"])
	assert.Equal(t, "riya@example.com", claims["email"])
	assert.Equal(t, true, claims["is_admin"])
}

func TestIssueJWTTokensDifferPerUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	assert.NotEqual(t, IssueJWT("u1", "a@example.com", false), IssueJWT("u2", "b@example.com", false))
}
