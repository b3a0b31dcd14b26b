package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	InitJWT("test-secret", 1)

	userID := uuid.New()
	token, err := GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	InitJWT("test-secret", 1)

	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	InitJWT("secret-a", 1)
	token, err := GenerateToken(uuid.New())
	require.NoError(t, err)

	InitJWT("secret-b", 1)
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	InitJWT("test-secret", 1)
	jwtExpiry = -time.Hour // 直接產生一個已過期的 token
	defer func() { jwtExpiry = time.Hour }()

	token, err := GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}
