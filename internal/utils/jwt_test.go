package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret        = "test-secret-key-for-jwt-testing"
	testWrongSecret   = "wrong-secret-key-for-jwt-testing"
	testTokenDuration = 1 * time.Hour
)

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateAccessToken(userID, testSecret, testTokenDuration)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := ValidateAccessToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, subject)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(uuid.New(), testSecret, testTokenDuration)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, testWrongSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	token, err := GenerateAccessToken(uuid.New(), testSecret, -1*time.Hour)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, testSecret)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	for _, input := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := ValidateAccessToken(input, testSecret)
		assert.Error(t, err, "input %q should not validate", input)
	}
}
