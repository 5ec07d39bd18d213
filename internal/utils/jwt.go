package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// AccessClaims carries only the user id as subject. Role and activity are
// looked up per request so that deactivating a user takes effect before the
// token expires.
type AccessClaims struct {
	jwt.RegisteredClaims
}

// GenerateAccessToken issues a short-lived HS256 token for the given user.
// Validity is determined purely by signature and expiry, never by a store
// lookup.
func GenerateAccessToken(userID uuid.UUID, secretKey string, expiresIn time.Duration) (string, error) {
	now := time.Now()

	claims := &AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secretKey))
}

// ValidateAccessToken verifies signature and expiry and returns the subject
// user id. All failure modes collapse into ErrInvalidToken / ErrExpiredToken
// so callers cannot leak which check failed.
func ValidateAccessToken(tokenString, secretKey string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&AccessClaims{},
		func(token *jwt.Token) (interface{}, error) {
			// Verify signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return []byte(secretKey), nil
		},
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, ErrExpiredToken
		}
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return userID, nil
}
