package handler

import (
	"net/http"

	"github.com/accountd-dev/accountd/internal/api"
	"github.com/accountd-dev/accountd/internal/domain"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := decodeValidate(r.Body, &body); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	accessToken, err := h.accounts.Login(domain.Credentials{Email: body.Email, Password: body.Password})
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.LoginResponse{AccessToken: accessToken})
}
