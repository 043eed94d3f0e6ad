package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/yichun-tseng/snackshop/config"
	"github.com/yichun-tseng/snackshop/middlewares"
)

const sessionLifetime = 12 * time.Hour

// GenerateSessionToken issues the staff session token handed out after a
// successful passcode check. One shift's worth of validity.
func GenerateSessionToken() (string, error) {
	now := time.Now()

	claims := &middlewares.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "staff",
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.SecretKey))
}
