package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/accountd-dev/accountd/internal/api"
	"github.com/accountd-dev/accountd/internal/domain"
)

// RegisterAddress attaches a new address to the account the caller's token
// resolves to.
func (h *Handler) RegisterAddress(w http.ResponseWriter, r *http.Request) {
	var body api.CreateAddressRequest
	if err := decodeValidate(r.Body, &body); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	addr, err := h.accounts.RegisterAddress(r.Header.Get("Authorization"), domain.NewAddress{
		Street:     body.Street,
		Number:     body.Number,
		Complement: body.Complement,
		City:       body.City,
		State:      body.State,
		Zip:        body.Zip,
	})
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, toAddressResponse(addr))
}

func (h *Handler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(chi.URLParam(r, "id"), "address id")
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	var body api.UpdateAddressRequest
	if err := decodeValidate(r.Body, &body); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	patch := domain.AddressPatch{
		Street:     body.Street,
		Number:     body.Number,
		Complement: body.Complement,
		City:       body.City,
		State:      body.State,
		Zip:        body.Zip,
	}
	addr, err := h.accounts.UpdateAddress(id, &patch)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, toAddressResponse(addr))
}
