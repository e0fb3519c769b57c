package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestStaticTokenProvider_Opaque(t *testing.T) {
	provider := NewStaticTokenProvider("  opaque-token ")

	token, err := provider.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", token)

	info, err := provider.Info()
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestStaticTokenProvider_Missing(t *testing.T) {
	_, err := NewStaticTokenProvider("").Token(context.Background())
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestStaticTokenProvider_JWT(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	expiresAt := now.Add(time.Hour)
	raw := signedToken(t, jwt.RegisteredClaims{
		Subject:   "user_123",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	provider := NewStaticTokenProvider(raw)
	provider.now = func() time.Time { return now }

	token, err := provider.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, raw, token)

	info, err := provider.Info()
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "user_123", info.Subject)
	require.NotNil(t, info.ExpiresAt)
	assert.True(t, expiresAt.Equal(*info.ExpiresAt))

	provider.now = func() time.Time { return expiresAt.Add(time.Second) }
	_, err = provider.Token(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token expired at 2024-05-01T13:00:00Z")
}

func TestStaticTokenProvider_MalformedJWT(t *testing.T) {
	_, err := NewStaticTokenProvider("a.b.c").Token(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestStaticTokenProvider_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewStaticTokenProvider("token").Token(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
