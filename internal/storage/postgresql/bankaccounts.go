package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"hangpay/internal/model"
)

var _ model.BankAccountsRepository = (*BankAccountsRepo)(nil)

type BankAccountsRepo struct {
	baseRepo
}

const bankAccountColumns = `
	id, user_id, bank_code, bank_name, account_number, account_name,
	is_default, created_at
`

func (r *BankAccountsRepo) ForUser(
	ctx context.Context,
	id, userID int64,
) (*model.BankAccount, error) {
	q := `
		SELECT ` + bankAccountColumns + `
		FROM bank_accounts
		WHERE id = $1 AND user_id = $2
	`

	return r.scanOne(r.db.QueryRow(ctx, q, id, userID))
}

func (r *BankAccountsRepo) DefaultForUser(
	ctx context.Context,
	userID int64,
) (*model.BankAccount, error) {
	q := `
		SELECT ` + bankAccountColumns + `
		FROM bank_accounts
		WHERE user_id = $1 AND is_default
		ORDER BY id DESC
		LIMIT 1
	`

	return r.scanOne(r.db.QueryRow(ctx, q, userID))
}

func (r *BankAccountsRepo) scanOne(row pgx.Row) (*model.BankAccount, error) {
	var a model.BankAccount
	if err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.BankCode,
		&a.BankName,
		&a.AccountNumber,
		&a.AccountName,
		&a.IsDefault,
		&a.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBankAccountNotFound
		}
		return nil, fmt.Errorf("failed to get bank account: %w", err)
	}

	return &a, nil
}
