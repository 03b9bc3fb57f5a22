package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/accountd-dev/accountd/internal/api"
	"github.com/accountd-dev/accountd/internal/domain"
)

func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var body api.CreateAccountRequest
	if err := decodeValidate(r.Body, &body); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	data := domain.NewAccount{Name: body.Name, Email: body.Email, Password: body.Password}
	for _, a := range body.Addresses {
		data.Addresses = append(data.Addresses, domain.NewAddress{
			Street:     a.Street,
			Number:     a.Number,
			Complement: a.Complement,
			City:       a.City,
			State:      a.State,
			Zip:        a.Zip,
		})
	}
	for _, p := range body.Phones {
		data.Phones = append(data.Phones, domain.NewPhone{AreaCode: p.AreaCode, Number: p.Number})
	}

	acc, err := h.accounts.Create(&data)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, toAccountResponse(acc))
}

func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	acc, err := h.accounts.ByEmail(email)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, toAccountResponse(acc))
}

func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	if err := h.accounts.DeleteByEmail(email); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	var body api.UpdateAccountRequest
	if err := decodeValidate(r.Body, &body); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	patch := domain.AccountPatch{Name: body.Name, Email: body.Email, Password: body.Password}
	acc, err := h.accounts.Update(r.Header.Get("Authorization"), &patch)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, toAccountResponse(acc))
}
