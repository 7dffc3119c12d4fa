package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"hangpay/internal/model"
)

var _ model.WalletRepository = (*WalletsRepo)(nil)

type WalletsRepo struct {
	baseRepo
}

func (r *WalletsRepo) Wallet(
	ctx context.Context,
	owner model.WalletOwner,
) (*model.Wallet, error) {
	q := `
		SELECT id, owner_type, owner_id, balance, currency, created_at, updated_at
		FROM wallets
		WHERE owner_type = $1 AND owner_id = $2
	`

	var w model.Wallet
	row := r.db.QueryRow(ctx, q, owner.Type, owner.ID)
	if err := row.Scan(
		&w.ID,
		&w.OwnerType,
		&w.OwnerID,
		&w.Balance,
		&w.Currency,
		&w.CreatedAt,
		&w.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	return &w, nil
}

// Credit adds to the balance, creating the wallet on first use, and appends
// the matching ledger entry. Both writes share one transaction so the
// balance and its ledger can never drift apart.
func (r *WalletsRepo) Credit(
	ctx context.Context,
	p model.CreditWalletParams,
) (*model.LedgerEntry, error) {
	if p.Currency == "" {
		p.Currency = "NGN"
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	q := `
		INSERT INTO wallets (owner_type, owner_id, balance, currency)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (owner_type, owner_id)
		DO UPDATE SET
			balance = wallets.balance + EXCLUDED.balance,
			updated_at = NOW()
		RETURNING id, balance
	`

	var walletID int64
	var balanceAfter model.Amount
	row := tx.QueryRow(ctx, q, p.Owner.Type, p.Owner.ID, p.Amount, p.Currency)
	if err := row.Scan(&walletID, &balanceAfter); err != nil {
		return nil, fmt.Errorf("failed to credit wallet: %w", err)
	}

	entry, err := appendEntry(ctx, tx, &model.LedgerEntry{
		WalletID:     walletID,
		Type:         p.EntryType,
		Direction:    model.DirectionCredit,
		Amount:       p.Amount,
		BalanceAfter: balanceAfter,
		OwnerType:    p.Owner.Type,
		OwnerID:      p.Owner.ID,
		Metadata:     p.Metadata,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit tx: %w", err)
	}

	return entry, nil
}

// Debit subtracts from the balance through a single conditional update. The
// balance >= amount guard in the WHERE clause is what serializes concurrent
// debits on one wallet: the row lock orders them and the guard rejects the
// one that would overdraw.
func (r *WalletsRepo) Debit(
	ctx context.Context,
	p model.DebitWalletParams,
) (*model.LedgerEntry, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	q := `
		UPDATE wallets
		SET balance = balance - $3,
			updated_at = NOW()
		WHERE owner_type = $1 AND owner_id = $2 AND balance >= $3
		RETURNING id, balance
	`

	var walletID int64
	var balanceAfter model.Amount
	row := tx.QueryRow(ctx, q, p.Owner.Type, p.Owner.ID, p.Amount)
	if err := row.Scan(&walletID, &balanceAfter); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.debitMissReason(ctx, p.Owner)
		}
		return nil, fmt.Errorf("failed to debit wallet: %w", err)
	}

	entry, err := appendEntry(ctx, tx, &model.LedgerEntry{
		WalletID:     walletID,
		Type:         p.EntryType,
		Direction:    model.DirectionDebit,
		Amount:       p.Amount,
		BalanceAfter: balanceAfter,
		OwnerType:    p.Owner.Type,
		OwnerID:      p.Owner.ID,
		Metadata:     p.Metadata,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit tx: %w", err)
	}

	return entry, nil
}

// debitMissReason tells a missing wallet apart from an insufficient balance
// after the guarded update matched no row.
func (r *WalletsRepo) debitMissReason(
	ctx context.Context,
	owner model.WalletOwner,
) error {
	var exists bool
	row := r.db.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM wallets WHERE owner_type = $1 AND owner_id = $2)`,
		owner.Type,
		owner.ID,
	)
	if err := row.Scan(&exists); err != nil {
		return fmt.Errorf("failed to check wallet: %w", err)
	}

	if !exists {
		return model.ErrWalletNotFound
	}
	return model.ErrInsufficientBalance
}

func appendEntry(
	ctx context.Context,
	tx pgx.Tx,
	e *model.LedgerEntry,
) (*model.LedgerEntry, error) {
	metadata, err := json.Marshal(e.Metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entry metadata: %w", err)
	}

	q := `
		INSERT INTO wallet_ledger
			(wallet_id, entry_type, direction, amount, balance_after,
			 owner_type, owner_id, metadata)
		VALUES (@walletID, @entryType, @direction, @amount, @balanceAfter,
			 @ownerType, @ownerID, @metadata)
		RETURNING id, created_at
	`

	args := pgx.NamedArgs{
		"walletID":     e.WalletID,
		"entryType":    e.Type.String(),
		"direction":    e.Direction.String(),
		"amount":       e.Amount,
		"balanceAfter": e.BalanceAfter,
		"ownerType":    e.OwnerType,
		"ownerID":      e.OwnerID,
		"metadata":     metadata,
	}

	row := tx.QueryRow(ctx, q, args)
	if err := row.Scan(&e.ID, &e.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to append ledger entry: %w", err)
	}

	return e, nil
}

func (r *WalletsRepo) Entries(
	ctx context.Context,
	owner model.WalletOwner,
	limit int,
) ([]model.LedgerEntry, error) {
	q := `
		SELECT id, wallet_id, entry_type, direction, amount, balance_after,
			owner_type, owner_id, metadata, created_at
		FROM wallet_ledger
		WHERE owner_type = $1 AND owner_id = $2
		ORDER BY id DESC
		LIMIT $3
	`

	rows, err := r.db.Query(ctx, q, owner.Type, owner.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("ledger query error: %w", err)
	}
	defer rows.Close()

	var entries []model.LedgerEntry
	for rows.Next() {
		var e model.LedgerEntry
		var metadata []byte
		if err := rows.Scan(
			&e.ID,
			&e.WalletID,
			&e.Type,
			&e.Direction,
			&e.Amount,
			&e.BalanceAfter,
			&e.OwnerType,
			&e.OwnerID,
			&metadata,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error reading values: %w", err)
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &e.Metadata); err != nil {
				return nil, fmt.Errorf("failed to unmarshal entry metadata: %w", err)
			}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading values: %w", err)
	}

	return entries, nil
}
