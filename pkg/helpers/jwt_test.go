package helpers

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-32-bytes-long-xxxxx"

func signClaims(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func TestJWTManager_RoundTrip(t *testing.T) {
	t.Parallel()

	issued := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m := NewJWTManager(testSecret, 0).WithClock(func() time.Time { return issued })

	tok, exp, err := m.GenerateAccessToken("7c4d8b1e-0000-4000-8000-000000000001")
	require.NoError(t, err)
	assert.Equal(t, issued.Add(24*time.Hour), exp)

	claims, err := m.ParseAccessToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "7c4d8b1e-0000-4000-8000-000000000001", claims.UserID)
	assert.Equal(t, issued.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, exp.Unix(), claims.ExpiresAt.Unix())
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	t.Parallel()

	now := time.Now()
	m := NewJWTManager(testSecret, time.Hour).WithClock(func() time.Time { return now })
	tok, _, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)

	m.WithClock(func() time.Time { return now.Add(25 * time.Hour) })
	claims, err := m.ParseAccessToken(tok)

	require.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.NotErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTManager_InvalidTokens(t *testing.T) {
	t.Parallel()

	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	future := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name  string
		token string
	}{
		{"wrong secret", signClaims(t, jwt.SigningMethodHS256, []byte("other-secret"), jwt.MapClaims{"id": "u1", "exp": future})},
		{"rs256 rejected", signClaims(t, jwt.SigningMethodRS256, rsaKey, jwt.MapClaims{"id": "u1", "exp": future})},
		{"hs512 rejected", signClaims(t, jwt.SigningMethodHS512, []byte(testSecret), jwt.MapClaims{"id": "u1", "exp": future})},
		{"missing id claim", signClaims(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"exp": future})},
		{"missing exp claim", signClaims(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"id": "u1"})},
		{"malformed", "not.a.valid.jwt.token"},
		{"empty", ""},
	}

	m := NewJWTManager(testSecret, 0)
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			claims, err := m.ParseAccessToken(tt.token)
			require.Error(t, err)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, ErrTokenInvalid)
			assert.NotErrorIs(t, err, ErrTokenExpired)
		})
	}
}
