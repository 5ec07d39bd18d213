package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// RefreshTokenBytes is the entropy of an opaque refresh token. Hex encoding
// doubles it, so the stored string is 96 characters.
const RefreshTokenBytes = 48

// NewRefreshToken generates a cryptographically random opaque token.
func NewRefreshToken() (string, error) {
	buf := make([]byte, RefreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
