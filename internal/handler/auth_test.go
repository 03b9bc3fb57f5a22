package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/accountd-dev/accountd/internal/domain"
	internal_errors "github.com/accountd-dev/accountd/internal/errors"
)

func TestLoginHandler(t *testing.T) {
	h := &Handler{}

	route := "/v1/auth/login"
	router := chi.NewRouter()
	router.Post(route, h.Login)
	requestBody := []byte(`{"email": "jo@mail.com", "password": "secret1"}`)

	t.Run("successful request", func(t *testing.T) {
		var gotCreds domain.Credentials
		h.accounts = &MockAccountService{
			LoginFunc: func(creds domain.Credentials) (string, error) {
				gotCreds = creds
				return "token123", nil
			},
		}

		req := createRequest(t, http.MethodPost, route, requestBody)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "jo@mail.com", gotCreds.Email)
		assert.Equal(t, "secret1", gotCreds.Password)
		assert.JSONEq(t, `{"access_token":"token123"}`, rr.Body.String())
	})

	t.Run("rejected credentials", func(t *testing.T) {
		h.accounts = &MockAccountService{
			LoginFunc: func(creds domain.Credentials) (string, error) {
				return "", internal_errors.Unauthorized("Invalid credentials")
			},
		}

		req := createRequest(t, http.MethodPost, route, requestBody)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("invalid request body", func(t *testing.T) {
		req := createRequest(t, http.MethodPost, route, []byte(`{invalid`))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing password", func(t *testing.T) {
		req := createRequest(t, http.MethodPost, route, []byte(`{"email": "jo@mail.com"}`))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
