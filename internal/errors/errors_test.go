package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsCarryStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid input", InvalidInput("nil body"), http.StatusBadRequest},
		{"business rule", BusinessRule("email invalid"), http.StatusUnprocessableEntity},
		{"conflict", Conflict("email taken"), http.StatusConflict},
		{"not found", NotFound("no such account"), http.StatusNotFound},
		{"unauthorized", Unauthorized("bad token"), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := tt.err.(*ErrorWithStatusCode)
			assert.True(t, ok)
			assert.Equal(t, tt.code, e.StatusCode)
			assert.Equal(t, e.Message, tt.err.Error())
		})
	}
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("x")))
	assert.False(t, IsNotFound(Conflict("x")))
	assert.True(t, IsConflict(Conflict("x")))
	assert.True(t, IsUnauthorized(Unauthorized("x")))
	assert.True(t, IsBusinessRule(BusinessRule("x")))
	assert.True(t, IsInvalidInput(InvalidInput("x")))

	// Plain and wrapped errors carry no kind.
	plain := errors.New("db down")
	assert.False(t, IsNotFound(plain))
	assert.False(t, IsNotFound(fmt.Errorf("query failed: %w", NotFound("x"))))
}
