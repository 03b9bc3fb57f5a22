package setup

import (
	"github.com/accountd-dev/accountd/internal/config"
	"github.com/accountd-dev/accountd/internal/crypto"
	"github.com/accountd-dev/accountd/internal/handler"
	"github.com/accountd-dev/accountd/internal/jwt"
	"github.com/accountd-dev/accountd/internal/service"
	"github.com/accountd-dev/accountd/internal/storage/pg"
)

// Dependencies holds all initialized collaborators.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
	Tokens  jwt.TokenService
}

// SetupDependencies wires storage, hashing, tokens, the account service and
// the HTTP handlers.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	tokens := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	hasher := crypto.NewBcryptHasher()

	accounts := service.NewAccounts(storage, hasher, tokens)
	h := handler.New(accounts, storage)

	return &Dependencies{
		Storage: storage,
		Handler: h,
		Tokens:  tokens,
	}, nil
}
