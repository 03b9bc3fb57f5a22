package validation

import (
	"testing"

	"github.com/accountd-dev/accountd/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"plain address", "ana@x.com", true},
		{"at sign is enough", "@", true},
		{"surrounding content optional", "weird@", true},
		{"empty", "", false},
		{"whitespace only", "   \t", false},
		{"missing at sign", "ana.x.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Email(tt.email)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.IsBusinessRule(err), "expected business rule error, got %v", err)
			}
		})
	}
}

func TestEmailPresent(t *testing.T) {
	// The blank check is the whole policy: malformed but non-blank values pass.
	assert.NoError(t, EmailPresent("ana@x.com"))
	assert.NoError(t, EmailPresent("ana.x.com"))
	assert.True(t, errors.IsBusinessRule(EmailPresent("")))
	assert.True(t, errors.IsBusinessRule(EmailPresent("  \t")))
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"six chars", "secret", true},
		{"longer", "secret1", true},
		{"empty", "", false},
		{"whitespace only", "      ", false},
		{"five chars", "short", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Password(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.IsBusinessRule(err), "expected business rule error, got %v", err)
			}
		})
	}
}
