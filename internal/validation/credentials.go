// Package validation holds the account credential policy checks.
// Both checks are pure; they never touch storage.
package validation

import (
	"strings"

	"github.com/accountd-dev/accountd/internal/domain"
	"github.com/accountd-dev/accountd/internal/errors"
)

const minPasswordLen = 6

// Email rejects blank values and values without an "@". This is the whole
// policy: a deliberate minimal syntactic check, not RFC address validation.
func Email(email domain.Email) error {
	if strings.TrimSpace(email) == "" {
		return errors.BusinessRule("Email must not be empty")
	}
	if !strings.Contains(email, "@") {
		return errors.BusinessRule("Email is invalid")
	}
	return nil
}

// EmailPresent rejects blank values only. Lookups use this weaker check: a
// non-blank email that fails the syntax policy simply matches no account.
func EmailPresent(email domain.Email) error {
	if strings.TrimSpace(email) == "" {
		return errors.BusinessRule("Email must not be empty")
	}
	return nil
}

// Password rejects blank values and values shorter than 6 characters.
func Password(password domain.Password) error {
	if strings.TrimSpace(password) == "" {
		return errors.BusinessRule("Password must not be empty")
	}
	if len(password) < minPasswordLen {
		return errors.BusinessRule("Password must be at least 6 characters")
	}
	return nil
}
