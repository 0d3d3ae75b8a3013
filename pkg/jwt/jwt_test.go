package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, secret string, exp time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Role:     "owner",
		Username: "arena_admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})

	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return s
}

func TestJWT_Parse(t *testing.T) {
	future := time.Now().Add(time.Hour)

	t.Run("success: verified", func(t *testing.T) {
		claims, err := New("shh").Parse(sign(t, "shh", future))

		require.NoError(t, err)
		assert.Equal(t, "42", claims.UserID())
		assert.Equal(t, "owner", claims.Role)
		assert.Equal(t, "arena_admin", claims.Username)
	})

	t.Run("success: unverified without secret", func(t *testing.T) {
		claims, err := New("").Parse(sign(t, "whatever", future))

		require.NoError(t, err)
		assert.Equal(t, "42", claims.UserID())
	})

	t.Run("error: wrong secret", func(t *testing.T) {
		_, err := New("shh").Parse(sign(t, "other", future))

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("error: expired", func(t *testing.T) {
		past := time.Now().Add(-time.Minute)

		_, err := New("shh").Parse(sign(t, "shh", past))
		assert.ErrorIs(t, err, ErrTokenExpired)

		_, err = New("").Parse(sign(t, "shh", past))
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("error: garbage", func(t *testing.T) {
		_, err := New("").Parse("not-a-token")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
