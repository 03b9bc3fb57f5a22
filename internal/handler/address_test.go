package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accountd-dev/accountd/internal/domain"
	internal_errors "github.com/accountd-dev/accountd/internal/errors"
)

func TestRegisterAddressHandler(t *testing.T) {
	h := &Handler{}

	route := "/v1/addresses"
	router := chi.NewRouter()
	router.Post(route, h.RegisterAddress)
	requestBody := []byte(`{"street": "Main st", "number": "10", "city": "Springfield", "state": "SP", "zip": "12345678"}`)

	t.Run("successful request", func(t *testing.T) {
		var gotHeader string
		var gotData domain.NewAddress
		h.accounts = &MockAccountService{
			RegisterAddressFunc: func(authHeader string, data domain.NewAddress) (domain.Address, error) {
				gotHeader = authHeader
				gotData = data
				return domain.Address{Id: 5, Street: data.Street, AccountId: 3}, nil
			},
		}

		req := createRequest(t, http.MethodPost, route, requestBody,
			"Authorization", "Bearer token123")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "Bearer token123", gotHeader)
		assert.Equal(t, "Main st", gotData.Street)
		assert.Contains(t, rr.Body.String(), `"id":5`)
		assert.Contains(t, rr.Body.String(), `"account_id":3`)
	})

	t.Run("missing token", func(t *testing.T) {
		h.accounts = &MockAccountService{
			RegisterAddressFunc: func(authHeader string, data domain.NewAddress) (domain.Address, error) {
				return domain.Address{}, internal_errors.Unauthorized("Missing bearer token")
			},
		}

		req := createRequest(t, http.MethodPost, route, requestBody)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("token resolves to unknown account", func(t *testing.T) {
		h.accounts = &MockAccountService{
			RegisterAddressFunc: func(authHeader string, data domain.NewAddress) (domain.Address, error) {
				return domain.Address{}, internal_errors.NotFound("Account not found")
			},
		}

		req := createRequest(t, http.MethodPost, route, requestBody,
			"Authorization", "Bearer token123")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("invalid request body", func(t *testing.T) {
		req := createRequest(t, http.MethodPost, route, []byte(`not json`))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUpdateAddressHandler(t *testing.T) {
	h := &Handler{}

	router := chi.NewRouter()
	router.Put("/v1/addresses/{id}", h.UpdateAddress)

	t.Run("successful request", func(t *testing.T) {
		var gotId domain.AddressId
		var gotPatch *domain.AddressPatch
		h.accounts = &MockAccountService{
			UpdateAddressFunc: func(id domain.AddressId, patch *domain.AddressPatch) (domain.Address, error) {
				gotId = id
				gotPatch = patch
				return domain.Address{Id: id, Street: *patch.Street, City: "Springfield", AccountId: 3}, nil
			},
		}

		req := createRequest(t, http.MethodPut, "/v1/addresses/5", []byte(`{"street": "Oak st"}`))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, int64(5), gotId)
		require.NotNil(t, gotPatch)
		require.NotNil(t, gotPatch.Street)
		assert.Equal(t, "Oak st", *gotPatch.Street)
		assert.Nil(t, gotPatch.City)
		assert.Contains(t, rr.Body.String(), `"street":"Oak st"`)
	})

	t.Run("non-integer id", func(t *testing.T) {
		req := createRequest(t, http.MethodPut, "/v1/addresses/abc", []byte(`{"street": "Oak st"}`))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		h.accounts = &MockAccountService{
			UpdateAddressFunc: func(id domain.AddressId, patch *domain.AddressPatch) (domain.Address, error) {
				return domain.Address{}, internal_errors.NotFound("Address not found")
			},
		}

		req := createRequest(t, http.MethodPut, "/v1/addresses/999", []byte(`{"street": "Oak st"}`))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
