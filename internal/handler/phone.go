package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/accountd-dev/accountd/internal/api"
	"github.com/accountd-dev/accountd/internal/domain"
)

// RegisterPhone attaches a new phone to the account the caller's token
// resolves to.
func (h *Handler) RegisterPhone(w http.ResponseWriter, r *http.Request) {
	var body api.CreatePhoneRequest
	if err := decodeValidate(r.Body, &body); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	phone, err := h.accounts.RegisterPhone(r.Header.Get("Authorization"), domain.NewPhone{
		AreaCode: body.AreaCode,
		Number:   body.Number,
	})
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, toPhoneResponse(phone))
}

func (h *Handler) UpdatePhone(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(chi.URLParam(r, "id"), "phone id")
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	var body api.UpdatePhoneRequest
	if err := decodeValidate(r.Body, &body); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	patch := domain.PhonePatch{AreaCode: body.AreaCode, Number: body.Number}
	phone, err := h.accounts.UpdatePhone(id, &patch)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, toPhoneResponse(phone))
}
