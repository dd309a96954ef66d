package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateToken("user-1", "Lucía", "+5492230000001", "ADMIN")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "Lucía", claims.Name)
	assert.Equal(t, "+5492230000001", claims.Phone)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, 24*time.Hour)
	other := NewJWTManager("other", time.Hour, 24*time.Hour)

	token, err := m.GenerateToken("user-1", "Lucía", "+549", "CASHIER")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute, 24*time.Hour)

	token, err := m.GenerateToken("user-1", "Lucía", "+549", "CASHIER")
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.Error(t, err)
}

func TestRefreshTokenCarriesOnlyUserID(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Empty(t, claims.Role)
}
