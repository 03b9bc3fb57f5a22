package errors

import (
	"net/http"
)

// Default error at the handler level is an internal error (500).
// Failures with a meaningful kind carry their status code explicitly so the
// transport layer can map them without inspecting messages.
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Constructors, one per error kind.

// InvalidInput marks a nil or undecodable request body.
func InvalidInput(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}

// BusinessRule marks a validation rule failure (bad email/password syntax,
// blank required field).
func BusinessRule(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusUnprocessableEntity}
}

// Conflict marks a uniqueness violation.
func Conflict(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusConflict}
}

// NotFound marks an absent referenced entity.
func NotFound(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

// Unauthorized marks a missing or rejected token.
func Unauthorized(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusUnauthorized}
}

func hasStatusCode(err error, code int) bool {
	e, ok := err.(*ErrorWithStatusCode)
	return ok && e.StatusCode == code
}

func IsInvalidInput(err error) bool {
	return hasStatusCode(err, http.StatusBadRequest)
}

func IsBusinessRule(err error) bool {
	return hasStatusCode(err, http.StatusUnprocessableEntity)
}

func IsConflict(err error) bool {
	return hasStatusCode(err, http.StatusConflict)
}

func IsNotFound(err error) bool {
	return hasStatusCode(err, http.StatusNotFound)
}

func IsUnauthorized(err error) bool {
	return hasStatusCode(err, http.StatusUnauthorized)
}
