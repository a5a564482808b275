package auth

import (
	"testing"

	"kin-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(secret string) *JWTManager {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.ExpiryHours = 1
	return NewJWTManager(cfg)
}

func TestGenerateVerifyRoundTrip(t *testing.T) {
	m := newTestManager("test-secret")

	token, err := m.Generate("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := newTestManager("secret-a").Generate("user-42")
	require.NoError(t, err)

	_, err = newTestManager("secret-b").Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := newTestManager("test-secret")

	_, err := m.Verify("not.a.token")
	assert.Error(t, err)

	_, err = m.Verify("")
	assert.Error(t, err)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	m := newTestManager("test-secret")

	token, err := m.Generate("user-42")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = m.Verify(tampered)
	assert.Error(t, err)
}
