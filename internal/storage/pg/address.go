package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/accountd-dev/accountd/internal/domain"
	internal_errors "github.com/accountd-dev/accountd/internal/errors"
)

func (s *Storage) SaveAddress(addr domain.Address) (domain.Address, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var stored domain.Address
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		stored, err = s.saveAddress(tx, addr)
		return err
	})
	return stored, err
}

func (s *Storage) AddressById(id domain.AddressId) (domain.Address, error) {
	return s.addressById(s.db, id)
}

func (s *Storage) UpdateAddress(addr domain.Address) (domain.Address, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		return s.updateAddress(tx, addr)
	})
	return addr, err
}

func (s *Storage) saveAddress(q Querier, addr domain.Address) (domain.Address, error) {
	err := q.QueryRow(`
        INSERT INTO addresses(street, number, complement, city, state, zip, account_id)
        VALUES($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		addr.Street, addr.Number, addr.Complement, addr.City, addr.State, addr.Zip, addr.AccountId,
	).Scan(&addr.Id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Address{}, internal_errors.NotFound("Owning account not found")
		}
		return domain.Address{}, fmt.Errorf("failed to insert address: %w", err)
	}
	return addr, nil
}

func (s *Storage) addressById(q Querier, id domain.AddressId) (domain.Address, error) {
	var addr domain.Address
	err := q.QueryRow(`
        SELECT id, street, number, complement, city, state, zip, account_id
        FROM addresses WHERE id = $1`, id,
	).Scan(&addr.Id, &addr.Street, &addr.Number, &addr.Complement, &addr.City, &addr.State, &addr.Zip, &addr.AccountId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Address{}, internal_errors.NotFound("Address not found")
		}
		return domain.Address{}, fmt.Errorf("failed to query address: %w", err)
	}
	return addr, nil
}

func (s *Storage) updateAddress(q Querier, addr domain.Address) error {
	result, err := q.Exec(`
        UPDATE addresses SET street = $1, number = $2, complement = $3, city = $4, state = $5, zip = $6
        WHERE id = $7`,
		addr.Street, addr.Number, addr.Complement, addr.City, addr.State, addr.Zip, addr.Id)
	if err != nil {
		return fmt.Errorf("failed to update address: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for address update: %w", err)
	}
	if rowsAffected == 0 {
		return internal_errors.NotFound("Address not found for update")
	}
	return nil
}

func (s *Storage) addressesByAccount(q Querier, accountId domain.AccountId) ([]domain.Address, error) {
	rows, err := q.Query(`
        SELECT id, street, number, complement, city, state, zip, account_id
        FROM addresses WHERE account_id = $1 ORDER BY id`, accountId)
	if err != nil {
		return nil, fmt.Errorf("failed to query addresses: %w", err)
	}
	defer rows.Close()

	var addresses []domain.Address
	for rows.Next() {
		var addr domain.Address
		if err := rows.Scan(&addr.Id, &addr.Street, &addr.Number, &addr.Complement, &addr.City, &addr.State, &addr.Zip, &addr.AccountId); err != nil {
			return nil, fmt.Errorf("failed to scan address: %w", err)
		}
		addresses = append(addresses, addr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate addresses: %w", err)
	}
	return addresses, nil
}
