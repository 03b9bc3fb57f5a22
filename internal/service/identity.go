package service

import (
	"github.com/accountd-dev/accountd/internal/domain"
	"github.com/accountd-dev/accountd/internal/errors"
)

const bearerPrefix = "Bearer "

// resolveCallerEmail extracts the caller's identity from the raw
// Authorization header value. It strips the scheme prefix and hands the rest
// to the token verifier; it never inspects token bytes itself.
func (s *Accounts) resolveCallerEmail(authHeader string) (domain.Email, error) {
	if len(authHeader) < len(bearerPrefix) {
		return "", errors.Unauthorized("Missing bearer token")
	}
	return s.tokens.ExtractEmail(authHeader[len(bearerPrefix):])
}
