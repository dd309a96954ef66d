package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secreto1")
	require.NoError(t, err)
	assert.NotEqual(t, "secreto1", hash)

	assert.True(t, CheckPasswordHash("secreto1", hash))
	assert.False(t, CheckPasswordHash("otro", hash))
}
