package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/accountd-dev/accountd/internal/domain"
	internal_errors "github.com/accountd-dev/accountd/internal/errors"
)

// =========================================================================
// Public methods (satisfy the service.AccountStorage interface)
// =========================================================================

// SaveAccount inserts a new account together with its embedded addresses and
// phones in one transaction, and returns the stored record with all
// identifiers assigned.
func (s *Storage) SaveAccount(acc domain.Account) (domain.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var stored domain.Account
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		stored, err = s.saveAccount(tx, acc)
		return err
	})
	return stored, err
}

// AccountByEmail fetches an account with its addresses and phones attached.
func (s *Storage) AccountByEmail(email domain.Email) (domain.Account, error) {
	return s.accountByEmail(s.db, email)
}

func (s *Storage) AccountEmailTaken(email domain.Email) (bool, error) {
	var taken bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM accounts WHERE email = $1)", email).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return taken, nil
}

// UpdateAccount writes back the scalar fields of a merged account record.
// Sub-resources are not touched here; they change through their own methods.
func (s *Storage) UpdateAccount(acc domain.Account) (domain.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		return s.updateAccount(tx, acc)
	})
	return acc, err
}

func (s *Storage) DeleteAccountByEmail(email domain.Email) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.deleteAccountByEmail(tx, email)
	})
}

// =========================================================================
// Internal methods (core database logic, transaction-agnostic)
// =========================================================================

func (s *Storage) saveAccount(q Querier, acc domain.Account) (domain.Account, error) {
	err := q.QueryRow("INSERT INTO accounts(name, email, password_hash) VALUES($1, $2, $3) RETURNING id",
		acc.Name, acc.Email, acc.PassHash).Scan(&acc.Id)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Account{}, internal_errors.Conflict("Email already registered")
		}
		return domain.Account{}, fmt.Errorf("failed to insert account: %w", err)
	}

	for i := range acc.Addresses {
		acc.Addresses[i].AccountId = acc.Id
		stored, err := s.saveAddress(q, acc.Addresses[i])
		if err != nil {
			return domain.Account{}, err
		}
		acc.Addresses[i] = stored
	}
	for i := range acc.Phones {
		acc.Phones[i].AccountId = acc.Id
		stored, err := s.savePhone(q, acc.Phones[i])
		if err != nil {
			return domain.Account{}, err
		}
		acc.Phones[i] = stored
	}

	return acc, nil
}

func (s *Storage) accountByEmail(q Querier, email domain.Email) (domain.Account, error) {
	var acc domain.Account
	err := q.QueryRow("SELECT id, name, email, password_hash FROM accounts WHERE email = $1", email).
		Scan(&acc.Id, &acc.Name, &acc.Email, &acc.PassHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, internal_errors.NotFound("Account not found")
		}
		return domain.Account{}, fmt.Errorf("failed to query account: %w", err)
	}

	if acc.Addresses, err = s.addressesByAccount(q, acc.Id); err != nil {
		return domain.Account{}, err
	}
	if acc.Phones, err = s.phonesByAccount(q, acc.Id); err != nil {
		return domain.Account{}, err
	}

	return acc, nil
}

func (s *Storage) updateAccount(q Querier, acc domain.Account) error {
	result, err := q.Exec("UPDATE accounts SET name = $1, email = $2, password_hash = $3 WHERE id = $4",
		acc.Name, acc.Email, acc.PassHash, acc.Id)
	if err != nil {
		if isUniqueViolation(err) {
			return internal_errors.Conflict("Email already registered")
		}
		return fmt.Errorf("failed to update account: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for account update: %w", err)
	}
	if rowsAffected == 0 {
		return internal_errors.NotFound("Account not found for update")
	}
	return nil
}

func (s *Storage) deleteAccountByEmail(q Querier, email domain.Email) error {
	// Owned addresses and phones go with the account via ON DELETE CASCADE.
	result, err := q.Exec("DELETE FROM accounts WHERE email = $1", email)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	rowsDeleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for account deletion: %w", err)
	}
	if rowsDeleted == 0 {
		return internal_errors.NotFound("Account not found for deletion")
	}
	return nil
}
