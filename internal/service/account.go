package service

import (
	"github.com/accountd-dev/accountd/internal/domain"
	"github.com/accountd-dev/accountd/internal/errors"
	"github.com/accountd-dev/accountd/internal/logger"
	"github.com/accountd-dev/accountd/internal/validation"
)

type AccountService interface {
	Create(data *domain.NewAccount) (domain.Account, error)
	ByEmail(email domain.Email) (domain.Account, error)
	DeleteByEmail(email domain.Email) error
	Update(authHeader string, patch *domain.AccountPatch) (domain.Account, error)
	UpdateAddress(id domain.AddressId, patch *domain.AddressPatch) (domain.Address, error)
	UpdatePhone(id domain.PhoneId, patch *domain.PhonePatch) (domain.Phone, error)
	RegisterAddress(authHeader string, data domain.NewAddress) (domain.Address, error)
	RegisterPhone(authHeader string, data domain.NewPhone) (domain.Phone, error)
	Login(creds domain.Credentials) (string, error)
}

// AccountStorage is the persistence gateway. Save* assign identifiers on
// first save; in production the backing store must also enforce email
// uniqueness itself, because the service's pre-check alone cannot close the
// race between two concurrent creates.
type AccountStorage interface {
	SaveAccount(acc domain.Account) (domain.Account, error)
	AccountByEmail(email domain.Email) (domain.Account, error)
	AccountEmailTaken(email domain.Email) (bool, error)
	UpdateAccount(acc domain.Account) (domain.Account, error)
	DeleteAccountByEmail(email domain.Email) error

	SaveAddress(addr domain.Address) (domain.Address, error)
	AddressById(id domain.AddressId) (domain.Address, error)
	UpdateAddress(addr domain.Address) (domain.Address, error)

	SavePhone(phone domain.Phone) (domain.Phone, error)
	PhoneById(id domain.PhoneId) (domain.Phone, error)
	UpdatePhone(phone domain.Phone) (domain.Phone, error)
}

type Hasher interface {
	Hash(plaintext string) (string, error)
	Compare(digest, plaintext string) error
}

type Tokens interface {
	NewToken(email domain.Email) (string, error)
	ExtractEmail(tokenStr string) (domain.Email, error)
}

type Accounts struct {
	storage AccountStorage
	hasher  Hasher
	tokens  Tokens
}

func NewAccounts(storage AccountStorage, hasher Hasher, tokens Tokens) *Accounts {
	return &Accounts{storage: storage, hasher: hasher, tokens: tokens}
}

// Create validates the request, hashes the password and persists the new
// account together with any embedded addresses and phones.
func (s *Accounts) Create(data *domain.NewAccount) (domain.Account, error) {
	if data == nil {
		return domain.Account{}, errors.InvalidInput("Account data must not be nil")
	}
	if err := validation.Email(data.Email); err != nil {
		return domain.Account{}, err
	}
	if err := validation.Password(data.Password); err != nil {
		return domain.Account{}, err
	}

	taken, err := s.storage.AccountEmailTaken(data.Email)
	if err != nil {
		return domain.Account{}, err
	}
	if taken {
		return domain.Account{}, errors.Conflict("Email already registered")
	}

	passHash, err := s.hasher.Hash(data.Password)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.Account{}, err
	}

	acc := domain.Account{
		Name:      data.Name,
		Email:     data.Email,
		PassHash:  passHash,
		Addresses: make([]domain.Address, 0, len(data.Addresses)),
		Phones:    make([]domain.Phone, 0, len(data.Phones)),
	}
	for _, a := range data.Addresses {
		acc.Addresses = append(acc.Addresses, domain.Address{
			Street:     a.Street,
			Number:     a.Number,
			Complement: a.Complement,
			City:       a.City,
			State:      a.State,
			Zip:        a.Zip,
		})
	}
	for _, p := range data.Phones {
		acc.Phones = append(acc.Phones, domain.Phone{AreaCode: p.AreaCode, Number: p.Number})
	}

	return s.storage.SaveAccount(acc)
}

// ByEmail only requires a non-blank email; syntax is not checked here, so a
// malformed address falls through to the lookup and comes back NotFound.
func (s *Accounts) ByEmail(email domain.Email) (domain.Account, error) {
	if err := validation.EmailPresent(email); err != nil {
		return domain.Account{}, err
	}
	return s.storage.AccountByEmail(email)
}

func (s *Accounts) DeleteByEmail(email domain.Email) error {
	return s.storage.DeleteAccountByEmail(email)
}

// Update applies a sparse patch onto the account the token resolves to.
// A patch password is hashed here, before the merge, so plaintext never
// reaches the merge or the storage layer.
func (s *Accounts) Update(authHeader string, patch *domain.AccountPatch) (domain.Account, error) {
	if patch == nil {
		return domain.Account{}, errors.InvalidInput("Account data must not be nil")
	}

	email, err := s.resolveCallerEmail(authHeader)
	if err != nil {
		return domain.Account{}, err
	}

	if patch.Password != nil {
		passHash, err := s.hasher.Hash(*patch.Password)
		if err != nil {
			logger.Log.Error("failed to hash password", "error", err)
			return domain.Account{}, err
		}
		// Copy so the caller's patch keeps its plaintext untouched.
		patch = &domain.AccountPatch{Name: patch.Name, Email: patch.Email, Password: &passHash}
	}

	existing, err := s.storage.AccountByEmail(email)
	if err != nil {
		if errors.IsNotFound(err) {
			// A verified token should always name a stored account. Keep this
			// reportable rather than panicking: it means data loss, not caller error.
			logger.Log.Error("token resolved to unknown account", "email", email)
		}
		return domain.Account{}, err
	}

	return s.storage.UpdateAccount(mergeAccount(existing, *patch))
}

func (s *Accounts) UpdateAddress(id domain.AddressId, patch *domain.AddressPatch) (domain.Address, error) {
	if patch == nil {
		return domain.Address{}, errors.InvalidInput("Address data must not be nil")
	}

	existing, err := s.storage.AddressById(id)
	if err != nil {
		return domain.Address{}, err
	}

	return s.storage.UpdateAddress(mergeAddress(existing, *patch))
}

func (s *Accounts) UpdatePhone(id domain.PhoneId, patch *domain.PhonePatch) (domain.Phone, error) {
	if patch == nil {
		return domain.Phone{}, errors.InvalidInput("Phone data must not be nil")
	}

	existing, err := s.storage.PhoneById(id)
	if err != nil {
		return domain.Phone{}, err
	}

	return s.storage.UpdatePhone(mergePhone(existing, *patch))
}

// RegisterAddress attaches a new address to the authenticated caller's account.
func (s *Accounts) RegisterAddress(authHeader string, data domain.NewAddress) (domain.Address, error) {
	acc, err := s.accountForCaller(authHeader)
	if err != nil {
		return domain.Address{}, err
	}

	return s.storage.SaveAddress(domain.Address{
		Street:     data.Street,
		Number:     data.Number,
		Complement: data.Complement,
		City:       data.City,
		State:      data.State,
		Zip:        data.Zip,
		AccountId:  acc.Id,
	})
}

// RegisterPhone attaches a new phone to the authenticated caller's account.
func (s *Accounts) RegisterPhone(authHeader string, data domain.NewPhone) (domain.Phone, error) {
	acc, err := s.accountForCaller(authHeader)
	if err != nil {
		return domain.Phone{}, err
	}

	return s.storage.SavePhone(domain.Phone{
		AreaCode:  data.AreaCode,
		Number:    data.Number,
		AccountId: acc.Id,
	})
}

func (s *Accounts) accountForCaller(authHeader string) (domain.Account, error) {
	email, err := s.resolveCallerEmail(authHeader)
	if err != nil {
		return domain.Account{}, err
	}
	return s.storage.AccountByEmail(email)
}

// Login checks the credentials and returns a signed access token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Accounts) Login(creds domain.Credentials) (string, error) {
	acc, err := s.storage.AccountByEmail(creds.Email)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", errors.Unauthorized("Invalid credentials")
		}
		return "", err
	}

	if err := s.hasher.Compare(acc.PassHash, creds.Password); err != nil {
		return "", errors.Unauthorized("Invalid credentials")
	}

	token, err := s.tokens.NewToken(acc.Email)
	if err != nil {
		logger.Log.Error("failed to create access token", "email", acc.Email, "error", err)
		return "", err
	}

	return token, nil
}
