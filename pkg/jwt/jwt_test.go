package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager("test-secret", 15*time.Minute, 72*time.Hour)
}

func TestAccessToken_RoundTrip(t *testing.T) {
	m := newTestManager()
	userID := uuid.New().String()

	token, err := m.GenerateAccessToken(userID, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "access", claims.Type)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	m := newTestManager()
	userID := uuid.New().String()

	token, err := m.GenerateRefreshToken(userID)
	require.NoError(t, err)

	claims, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "refresh", claims.Type)
}

func TestValidate_RejectsWrongTokenType(t *testing.T) {
	m := newTestManager()
	userID := uuid.New().String()

	access, err := m.GenerateAccessToken(userID, "user@example.com")
	require.NoError(t, err)
	refresh, err := m.GenerateRefreshToken(userID)
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(refresh)
	assert.Error(t, err)

	_, err = m.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestValidate_RejectsWrongSecret(t *testing.T) {
	m := newTestManager()
	other := NewManager("different-secret", 15*time.Minute, 72*time.Hour)

	token, err := m.GenerateAccessToken(uuid.New().String(), "user@example.com")
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidate_RejectsExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute, 72*time.Hour)

	token, err := m.GenerateAccessToken(uuid.New().String(), "user@example.com")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidate_RejectsGarbage(t *testing.T) {
	m := newTestManager()

	_, err := m.ValidateToken("not.a.token")
	assert.Error(t, err)
}
