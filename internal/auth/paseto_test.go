package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	return []byte("0123456789abcdef0123456789abcdef")
}

func TestNewPasetoServiceRejectsBadKeyLength(t *testing.T) {
	_, err := NewPasetoService([]byte("too-short"))
	assert.Error(t, err)

	_, err = NewPasetoService(testKey(t))
	assert.NoError(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	svc, err := NewPasetoService(testKey(t))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.CreateToken(userID, "me@example.com", time.Hour)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "v4.local."))

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "me@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestVerifyExpiredToken(t *testing.T) {
	svc, err := NewPasetoService(testKey(t))
	require.NoError(t, err)

	token, err := svc.CreateToken(uuid.New(), "me@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyGarbageToken(t *testing.T) {
	svc, err := NewPasetoService(testKey(t))
	require.NoError(t, err)

	_, err = svc.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenFromDifferentKey(t *testing.T) {
	svc, err := NewPasetoService(testKey(t))
	require.NoError(t, err)

	other, err := NewPasetoService([]byte("ffffffffffffffffffffffffffffffff"))
	require.NoError(t, err)

	token, err := other.CreateToken(uuid.New(), "me@example.com", time.Hour)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
