package service

import (
	"github.com/accountd-dev/accountd/internal/domain"
)

// The merge functions apply a sparse patch onto a stored record and return a
// new value. A nil patch field keeps the stored value. Identifiers and owner
// references always come from the stored record, so a patch can never move a
// record to another identity or owner. Account sub-resource collections are
// also always carried over; addresses and phones change only through their
// own operations.

func mergeAccount(existing domain.Account, patch domain.AccountPatch) domain.Account {
	merged := domain.Account{
		Id:        existing.Id,
		Name:      existing.Name,
		Email:     existing.Email,
		PassHash:  existing.PassHash,
		Addresses: existing.Addresses,
		Phones:    existing.Phones,
	}
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Email != nil {
		merged.Email = *patch.Email
	}
	if patch.Password != nil {
		// Already hashed by the caller; the merge never sees plaintext.
		merged.PassHash = *patch.Password
	}
	return merged
}

func mergeAddress(existing domain.Address, patch domain.AddressPatch) domain.Address {
	merged := domain.Address{
		Id:         existing.Id,
		Street:     existing.Street,
		Number:     existing.Number,
		Complement: existing.Complement,
		City:       existing.City,
		State:      existing.State,
		Zip:        existing.Zip,
		AccountId:  existing.AccountId,
	}
	if patch.Street != nil {
		merged.Street = *patch.Street
	}
	if patch.Number != nil {
		merged.Number = *patch.Number
	}
	if patch.Complement != nil {
		merged.Complement = *patch.Complement
	}
	if patch.City != nil {
		merged.City = *patch.City
	}
	if patch.State != nil {
		merged.State = *patch.State
	}
	if patch.Zip != nil {
		merged.Zip = *patch.Zip
	}
	return merged
}

func mergePhone(existing domain.Phone, patch domain.PhonePatch) domain.Phone {
	merged := domain.Phone{
		Id:        existing.Id,
		AreaCode:  existing.AreaCode,
		Number:    existing.Number,
		AccountId: existing.AccountId,
	}
	if patch.AreaCode != nil {
		merged.AreaCode = *patch.AreaCode
	}
	if patch.Number != nil {
		merged.Number = *patch.Number
	}
	return merged
}
