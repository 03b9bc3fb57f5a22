package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/accountd-dev/accountd/internal/domain"
	internal_errors "github.com/accountd-dev/accountd/internal/errors"
	"github.com/accountd-dev/accountd/internal/logger"
)

// TokenService issues tokens at login and extracts the identity claim when
// verifying. Signing and expiry policy live entirely here; callers only see
// the email that the token proves.
type TokenService interface {
	NewToken(email domain.Email) (string, error)
	ExtractEmail(tokenStr string) (domain.Email, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) *Jwt {
	return &Jwt{secretKey, ttl}
}

func (j *Jwt) NewToken(email domain.Email) (string, error) {
	claims := jwt.MapClaims{}
	claims["email"] = email
	claims["exp"] = time.Now().Add(j.ttl).Unix()
	claims["jti"] = uuid.NewString()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", fmt.Errorf("can't create token: %w", err)
	}

	return tokenString, nil
}

// ExtractEmail verifies tokenStr and returns its email claim.
// Every verification failure maps to Unauthorized.
func (j *Jwt) ExtractEmail(tokenStr string) (domain.Email, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return "", internal_errors.Unauthorized("Invalid access token")
	}
	if !token.Valid {
		return "", internal_errors.Unauthorized("Invalid access token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", internal_errors.Unauthorized("Invalid access token")
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", internal_errors.Unauthorized("Token carries no identity")
	}

	return email, nil
}
