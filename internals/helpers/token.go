// helpers/token.go
package helper

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Umur token akses yang diterbitkan /api/auth/token.
const AccessTokenTTL = 12 * time.Hour

// IssueCallerToken menerbitkan JWT HS256 dengan sub = nama caller.
func IssueCallerToken(secret, callerName string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret kosong")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": callerName,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseCallerToken memverifikasi signature+exp dan mengembalikan sub.
func ParseCallerToken(secret, tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", errors.New("missing sub claim")
	}
	return sub, nil
}
