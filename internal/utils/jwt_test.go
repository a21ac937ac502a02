package utils

import (
	"testing"
	"time"

	"copygen/internal/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", "HS256", 30*time.Minute)

	token, err := m.GenerateToken(42, "alice")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "42", claims.Subject)
}

func TestJWTExpired(t *testing.T) {
	m := NewJWTManager("secret", "HS256", 30*time.Minute)
	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issued }

	token, err := m.GenerateToken(1, "alice")
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(31 * time.Minute) }
	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", "HS256", time.Hour).GenerateToken(1, "alice")
	require.NoError(t, err)

	_, err = NewJWTManager("secret-b", "HS256", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTWrongAlgorithm(t *testing.T) {
	token, err := NewJWTManager("secret", "HS512", time.Hour).GenerateToken(1, "alice")
	require.NoError(t, err)

	_, err = NewJWTManager("secret", "HS256", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTMalformed(t *testing.T) {
	m := NewJWTManager("secret", "HS256", time.Hour)
	for _, token := range []string{"", "abc", "a.b.c"} {
		_, err := m.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken, token)
	}
}
