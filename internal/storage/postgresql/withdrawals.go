package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"hangpay/internal/model"
	reconciler "hangpay/internal/service/transfer-reconciler"
)

var (
	_ model.WithdrawalsRepository     = (*WithdrawalsRepo)(nil)
	_ reconciler.ReconcilerRepository = (*WithdrawalsRepo)(nil)
)

type WithdrawalsRepo struct {
	baseRepo
}

const withdrawalColumns = `
	id, wallet_id, owner_type, owner_id, user_id, amount, fee_amount,
	payout_amount, status, payout_reference, bank_account_id, transfer_id,
	transfer_status, transfer_confirmed, failure_reason, last_checked_at,
	created_at, updated_at
`

func (r *WithdrawalsRepo) Create(
	ctx context.Context,
	w *model.Withdrawal,
) (*model.Withdrawal, error) {
	q := `
		INSERT INTO withdrawals
			(wallet_id, owner_type, owner_id, user_id, amount, fee_amount,
			 payout_amount, status, payout_reference, bank_account_id,
			 transfer_id, transfer_status, transfer_confirmed)
		VALUES (@walletID, @ownerType, @ownerID, @userID, @amount, @feeAmount,
			 @payoutAmount, @status, @payoutReference, @bankAccountID,
			 @transferID, @transferStatus, @transferConfirmed)
		RETURNING id, created_at, updated_at
	`

	var transferID *int64
	if w.TransferID != 0 {
		transferID = &w.TransferID
	}

	args := pgx.NamedArgs{
		"walletID":          w.WalletID,
		"ownerType":         w.OwnerType,
		"ownerID":           w.OwnerID,
		"userID":            w.UserID,
		"amount":            w.Amount,
		"feeAmount":         w.FeeAmount,
		"payoutAmount":      w.PayoutAmount,
		"status":            w.Status.String(),
		"payoutReference":   w.PayoutReference,
		"bankAccountID":     w.BankAccountID,
		"transferID":        transferID,
		"transferStatus":    w.TransferStatus,
		"transferConfirmed": w.TransferConfirmed,
	}

	row := r.db.QueryRow(ctx, q, args)
	if err := row.Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to create withdrawal: %w", err)
	}

	return w, nil
}

func (r *WithdrawalsRepo) ByReference(
	ctx context.Context,
	reference string,
) (*model.Withdrawal, error) {
	q := `
		SELECT ` + withdrawalColumns + `
		FROM withdrawals
		WHERE payout_reference = $1
	`

	row := r.db.QueryRow(ctx, q, reference)
	w, err := scanWithdrawal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrWithdrawalNotFound
		}
		return nil, fmt.Errorf("failed to get withdrawal: %w", err)
	}

	return w, nil
}

func (r *WithdrawalsRepo) ListByUser(
	ctx context.Context,
	userID int64,
	limit int,
) ([]model.Withdrawal, error) {
	q := `
		SELECT ` + withdrawalColumns + `
		FROM withdrawals
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, q, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("withdrawals query error: %w", err)
	}
	defer rows.Close()

	return collectWithdrawals(rows)
}

func (r *WithdrawalsRepo) CountForUserSince(
	ctx context.Context,
	userID int64,
	since time.Time,
) (int, error) {
	q := `
		SELECT COUNT(*)
		FROM withdrawals
		WHERE user_id = $1 AND created_at >= $2
	`

	var count int
	row := r.db.QueryRow(ctx, q, userID, since)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count withdrawals: %w", err)
	}

	return count, nil
}

// Finalize is the single pending-to-terminal transition. The status guard in
// the WHERE clause is what makes webhook and reconciler finalization
// mutually exclusive: whichever update runs second matches no row.
func (r *WithdrawalsRepo) Finalize(
	ctx context.Context,
	p model.FinalizeWithdrawalParams,
) (bool, error) {
	q := `
		UPDATE withdrawals
		SET status = $2,
			transfer_id = COALESCE(NULLIF($3, 0), transfer_id),
			transfer_status = CASE WHEN $4 <> '' THEN $4 ELSE transfer_status END,
			transfer_confirmed = TRUE,
			failure_reason = $5,
			updated_at = NOW()
		WHERE payout_reference = $1 AND status = 'pending'
	`

	tag, err := r.db.Exec(
		ctx,
		q,
		p.Reference,
		p.Status.String(),
		p.TransferID,
		p.TransferStatus,
		p.FailureReason,
	)
	if err != nil {
		return false, fmt.Errorf("failed to finalize withdrawal: %w", err)
	}

	if tag.RowsAffected() == 1 {
		return true, nil
	}

	var exists bool
	row := r.db.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM withdrawals WHERE payout_reference = $1)`,
		p.Reference,
	)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check withdrawal: %w", err)
	}
	if !exists {
		return false, model.ErrWithdrawalNotFound
	}

	return false, nil
}

// PendingBatch claims stale pending withdrawals for reconciliation. The
// SKIP LOCKED select plus the last_checked_at touch keeps concurrent runs
// off each other's rows and cycles through the backlog oldest-checked first.
func (r *WithdrawalsRepo) PendingBatch(
	ctx context.Context,
	olderThan time.Duration,
	limit int,
) ([]model.Withdrawal, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	qSelect := `
		SELECT id FROM withdrawals
		WHERE status = 'pending'
			AND created_at < NOW() - $1::interval
		ORDER BY last_checked_at NULLS FIRST, id
		LIMIT $2
		FOR UPDATE SKIP LOCKED
	`

	rows, err := tx.Query(ctx, qSelect, olderThan, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query tx: %w", err)
	}

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan row: %w", err)
	}
	if len(ids) == 0 {
		if err := tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("failed to commit tx: %w", err)
		}
		return nil, nil
	}

	qUpdate := `
		UPDATE withdrawals AS w
		SET last_checked_at = NOW()
		WHERE w.id = ANY($1)
		RETURNING ` + withdrawalColumns

	rows2, err := tx.Query(ctx, qUpdate, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query tx: %w", err)
	}

	withdrawals, err := collectWithdrawals(rows2)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit tx: %w", err)
	}

	return withdrawals, nil
}

func scanWithdrawal(row pgx.Row) (*model.Withdrawal, error) {
	var w model.Withdrawal
	var transferID sql.NullInt64
	var lastCheckedAt sql.NullTime

	if err := row.Scan(
		&w.ID,
		&w.WalletID,
		&w.OwnerType,
		&w.OwnerID,
		&w.UserID,
		&w.Amount,
		&w.FeeAmount,
		&w.PayoutAmount,
		&w.Status,
		&w.PayoutReference,
		&w.BankAccountID,
		&transferID,
		&w.TransferStatus,
		&w.TransferConfirmed,
		&w.FailureReason,
		&lastCheckedAt,
		&w.CreatedAt,
		&w.UpdatedAt,
	); err != nil {
		return nil, err
	}

	w.TransferID = transferID.Int64
	w.LastCheckedAt = lastCheckedAt.Time

	return &w, nil
}

func collectWithdrawals(rows pgx.Rows) ([]model.Withdrawal, error) {
	defer rows.Close()

	var withdrawals []model.Withdrawal
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			return nil, fmt.Errorf("error reading values: %w", err)
		}
		withdrawals = append(withdrawals, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading values: %w", err)
	}

	return withdrawals, nil
}
