package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/accountd-dev/accountd/internal/api"
	"github.com/accountd-dev/accountd/internal/domain"
	"github.com/accountd-dev/accountd/internal/logger"
	"github.com/accountd-dev/accountd/internal/service"
)

// Pinger reports whether the storage backend is reachable, for readiness probes.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	accounts service.AccountService
	health   Pinger
}

func New(accounts service.AccountService, health Pinger) *Handler {
	return &Handler{accounts: accounts, health: health}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v interface{}) {
	buf, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf)
}

func toAccountResponse(acc domain.Account) api.AccountResponse {
	resp := api.AccountResponse{Id: acc.Id, Name: acc.Name, Email: acc.Email}
	for _, a := range acc.Addresses {
		resp.Addresses = append(resp.Addresses, toAddressResponse(a))
	}
	for _, p := range acc.Phones {
		resp.Phones = append(resp.Phones, toPhoneResponse(p))
	}
	return resp
}

func toAddressResponse(addr domain.Address) api.AddressResponse {
	return api.AddressResponse{
		Id:         addr.Id,
		Street:     addr.Street,
		Number:     addr.Number,
		Complement: addr.Complement,
		City:       addr.City,
		State:      addr.State,
		Zip:        addr.Zip,
		AccountId:  addr.AccountId,
	}
}

func toPhoneResponse(phone domain.Phone) api.PhoneResponse {
	return api.PhoneResponse{
		Id:        phone.Id,
		AreaCode:  phone.AreaCode,
		Number:    phone.Number,
		AccountId: phone.AccountId,
	}
}
