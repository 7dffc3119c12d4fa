package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is what the platform's auth layer asserts about a caller. Tokens
// are issued elsewhere; this service only verifies them.
type Identity struct {
	UserID  int64
	IsAdmin bool
}

type Claims struct {
	jwt.RegisteredClaims
	UserID  int64 `json:"user_id"`
	IsAdmin bool  `json:"is_admin"`
}

func CreateJWTToken(
	secret string,
	ttl time.Duration,
	identity Identity,
) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		UserID:  identity.UserID,
		IsAdmin: identity.IsAdmin,
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func IdentityFromJWTToken(secret, tokenString string) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		},
	)
	if err != nil {
		return Identity{}, errors.New("failed to parse token")
	}

	if !token.Valid {
		return Identity{}, errors.New("invalid token")
	}

	return Identity{
		UserID:  claims.UserID,
		IsAdmin: claims.IsAdmin,
	}, nil
}
