package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/accountd-dev/accountd/internal/domain"
	internal_errors "github.com/accountd-dev/accountd/internal/errors"
)

func (s *Storage) SavePhone(phone domain.Phone) (domain.Phone, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var stored domain.Phone
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		stored, err = s.savePhone(tx, phone)
		return err
	})
	return stored, err
}

func (s *Storage) PhoneById(id domain.PhoneId) (domain.Phone, error) {
	return s.phoneById(s.db, id)
}

func (s *Storage) UpdatePhone(phone domain.Phone) (domain.Phone, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		return s.updatePhone(tx, phone)
	})
	return phone, err
}

func (s *Storage) savePhone(q Querier, phone domain.Phone) (domain.Phone, error) {
	err := q.QueryRow("INSERT INTO phones(area_code, number, account_id) VALUES($1, $2, $3) RETURNING id",
		phone.AreaCode, phone.Number, phone.AccountId).Scan(&phone.Id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Phone{}, internal_errors.NotFound("Owning account not found")
		}
		return domain.Phone{}, fmt.Errorf("failed to insert phone: %w", err)
	}
	return phone, nil
}

func (s *Storage) phoneById(q Querier, id domain.PhoneId) (domain.Phone, error) {
	var phone domain.Phone
	err := q.QueryRow("SELECT id, area_code, number, account_id FROM phones WHERE id = $1", id).
		Scan(&phone.Id, &phone.AreaCode, &phone.Number, &phone.AccountId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Phone{}, internal_errors.NotFound("Phone not found")
		}
		return domain.Phone{}, fmt.Errorf("failed to query phone: %w", err)
	}
	return phone, nil
}

func (s *Storage) updatePhone(q Querier, phone domain.Phone) error {
	result, err := q.Exec("UPDATE phones SET area_code = $1, number = $2 WHERE id = $3",
		phone.AreaCode, phone.Number, phone.Id)
	if err != nil {
		return fmt.Errorf("failed to update phone: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for phone update: %w", err)
	}
	if rowsAffected == 0 {
		return internal_errors.NotFound("Phone not found for update")
	}
	return nil
}

func (s *Storage) phonesByAccount(q Querier, accountId domain.AccountId) ([]domain.Phone, error) {
	rows, err := q.Query("SELECT id, area_code, number, account_id FROM phones WHERE account_id = $1 ORDER BY id", accountId)
	if err != nil {
		return nil, fmt.Errorf("failed to query phones: %w", err)
	}
	defer rows.Close()

	var phones []domain.Phone
	for rows.Next() {
		var phone domain.Phone
		if err := rows.Scan(&phone.Id, &phone.AreaCode, &phone.Number, &phone.AccountId); err != nil {
			return nil, fmt.Errorf("failed to scan phone: %w", err)
		}
		phones = append(phones, phone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate phones: %w", err)
	}
	return phones, nil
}
