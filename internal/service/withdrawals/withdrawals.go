package withdrawals

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"hangpay/internal/model"
	"hangpay/internal/provider/flutterwave"
	"hangpay/internal/service/wallets"
)

const (
	// Withdrawal bounds in whole NGN units.
	MinAmount model.Amount = 10_000
	MaxAmount model.Amount = 500_000

	// At most this many withdrawal requests per requester per UTC day,
	// counted across all owners.
	maxDailyRequests = 2

	payoutCurrency = "NGN"
)

//go:generate mockgen -package mocks -destination ./mocks/funds.go . Funds
type Funds interface {
	RequestWithdrawal(
		ctx context.Context,
		req wallets.WithdrawalRequest,
	) (*wallets.WithdrawalQuote, error)
	ReverseDebit(
		ctx context.Context,
		p wallets.ReversalParams,
	) (*model.LedgerEntry, error)
}

//go:generate mockgen -package mocks -destination ./mocks/payout_provider.go . PayoutProvider
type PayoutProvider interface {
	CreateTransfer(
		ctx context.Context,
		req flutterwave.TransferRequest,
	) (*flutterwave.Transfer, error)
}

// Service sequences a withdrawal: pre-checks, ledger debit, provider
// transfer, persistence, notification. It also owns finalization, the single
// code path that moves a withdrawal to its terminal status whether the
// trigger was a webhook or the reconciler.
type Service struct {
	funds        Funds
	provider     PayoutProvider
	withdrawals  model.WithdrawalsRepository
	bankAccounts model.BankAccountsRepository
	outbox       model.OutboxRepository
}

func NewService(
	funds Funds,
	provider PayoutProvider,
	withdrawals model.WithdrawalsRepository,
	bankAccounts model.BankAccountsRepository,
	outbox model.OutboxRepository,
) *Service {
	return &Service{
		funds:        funds,
		provider:     provider,
		withdrawals:  withdrawals,
		bankAccounts: bankAccounts,
		outbox:       outbox,
	}
}

type Request struct {
	Owner         model.WalletOwner
	RequestedBy   int64
	Amount        model.Amount
	BankAccountID int64 // 0 falls back to the requester's default account
}

// Result is what the caller sees. The account number is already masked;
// Transfer is nil when the provider outcome is still unknown.
type Result struct {
	Withdrawal    *model.Withdrawal
	BalanceAfter  model.Amount
	Transfer      *flutterwave.Transfer
	BankName      string
	AccountName   string
	AccountNumber string
}

func (s *Service) Request(ctx context.Context, req Request) (*Result, error) {
	if req.Amount < MinAmount || req.Amount > MaxAmount {
		return nil, fmt.Errorf(
			"%w: amount must be between %d and %d",
			model.ErrAmountOutOfBounds, MinAmount, MaxAmount,
		)
	}

	if err := s.checkRateLimit(ctx, req.RequestedBy); err != nil {
		return nil, err
	}

	account, err := s.resolveBankAccount(ctx, req.RequestedBy, req.BankAccountID)
	if err != nil {
		return nil, err
	}

	reference := uuid.NewString()

	// Point of no return: after this call the gross amount has left the
	// wallet and any unwinding is a compensating credit.
	quote, err := s.funds.RequestWithdrawal(ctx, wallets.WithdrawalRequest{
		Owner:       req.Owner,
		RequestedBy: req.RequestedBy,
		Amount:      req.Amount,
		FeeMode:     model.FeeModeExclusive,
		Reference:   reference,
	})
	if err != nil {
		return nil, err
	}

	transfer, err := s.provider.CreateTransfer(ctx, flutterwave.TransferRequest{
		Amount:        int64(quote.PayoutAmount),
		BankCode:      account.BankCode,
		AccountNumber: account.AccountNumber,
		AccountName:   account.AccountName,
		Reference:     reference,
		Narration:     fmt.Sprintf("hangpay payout %s", req.Owner),
		Currency:      payoutCurrency,
	})

	switch {
	case err == nil:
		// fall through to persistence

	case errors.Is(err, flutterwave.ErrOutcomeUnknown):
		// The transfer may exist at the provider. Rolling back now could
		// double-pay, so the row is kept unconfirmed and the reconciler
		// settles it by reference.
		w, persistErr := s.persistWithdrawal(ctx, req, quote, account, reference, nil)
		if persistErr != nil {
			s.alertUnrecorded(ctx, req, reference, persistErr)
			return nil, persistErr
		}
		slog.Warn(
			"transfer outcome unknown, deferring to reconciler",
			slog.String("reference", reference),
			slog.String("owner", req.Owner.String()),
			slog.Any("error", err),
		)
		return &Result{
			Withdrawal:    w,
			BalanceAfter:  quote.BalanceAfter,
			BankName:      account.BankName,
			AccountName:   account.AccountName,
			AccountNumber: account.MaskedNumber(),
		}, nil

	default:
		// Definite rejection: the transfer was not created, so the debit
		// is reversed immediately.
		s.rollbackDebit(ctx, req, reference, err)
		return nil, err
	}

	w, err := s.persistWithdrawal(ctx, req, quote, account, reference, transfer)
	if err != nil {
		s.alertUnrecorded(ctx, req, reference, err)
		return nil, err
	}

	s.enqueueNotice(ctx, model.OutboxKindWithdrawalRequested, w, account, "")

	return &Result{
		Withdrawal:    w,
		BalanceAfter:  quote.BalanceAfter,
		Transfer:      transfer,
		BankName:      account.BankName,
		AccountName:   account.AccountName,
		AccountNumber: account.MaskedNumber(),
	}, nil
}

func (s *Service) checkRateLimit(ctx context.Context, userID int64) error {
	dayStart := time.Now().UTC().Truncate(24 * time.Hour)
	count, err := s.withdrawals.CountForUserSince(ctx, userID, dayStart)
	if err != nil {
		return fmt.Errorf("rate limit check: %w", err)
	}
	if count >= maxDailyRequests {
		return fmt.Errorf(
			"%w: at most %d requests per day",
			model.ErrRateLimited, maxDailyRequests,
		)
	}
	return nil
}

func (s *Service) resolveBankAccount(
	ctx context.Context,
	userID, accountID int64,
) (*model.BankAccount, error) {
	if accountID != 0 {
		return s.bankAccounts.ForUser(ctx, accountID, userID)
	}
	return s.bankAccounts.DefaultForUser(ctx, userID)
}

func (s *Service) persistWithdrawal(
	ctx context.Context,
	req Request,
	quote *wallets.WithdrawalQuote,
	account *model.BankAccount,
	reference string,
	transfer *flutterwave.Transfer,
) (*model.Withdrawal, error) {
	w := &model.Withdrawal{
		WalletID:        quote.WalletID,
		OwnerType:       req.Owner.Type,
		OwnerID:         req.Owner.ID,
		UserID:          req.RequestedBy,
		Amount:          req.Amount,
		FeeAmount:       quote.FeeAmount,
		PayoutAmount:    quote.PayoutAmount,
		Status:          model.WithdrawalPending,
		PayoutReference: reference,
		BankAccountID:   account.ID,
	}
	if transfer != nil {
		w.TransferID = transfer.ID
		w.TransferStatus = transfer.Status
		w.TransferConfirmed = true
	}

	created, err := s.withdrawals.Create(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("persist withdrawal: %w", err)
	}
	return created, nil
}

func (s *Service) rollbackDebit(
	ctx context.Context,
	req Request,
	reference string,
	cause error,
) {
	_, err := s.funds.ReverseDebit(ctx, wallets.ReversalParams{
		Owner:     req.Owner,
		Amount:    req.Amount,
		Reference: reference,
		Reason:    "transfer creation failed",
	})
	if err != nil {
		// The ledger now shows a debit with no payout and no reversal.
		// Nothing more can be done in-process; an operator must fix it.
		slog.Error(
			"FATAL: compensating credit failed, manual intervention required",
			slog.String("owner", req.Owner.String()),
			slog.Int64("amount", int64(req.Amount)),
			slog.String("reference", reference),
			slog.Any("provider_error", cause),
			slog.Any("error", err),
		)
		return
	}

	slog.Warn(
		"transfer creation failed, debit reversed",
		slog.String("owner", req.Owner.String()),
		slog.String("reference", reference),
		slog.Any("error", cause),
	)
}

func (s *Service) alertUnrecorded(
	ctx context.Context,
	req Request,
	reference string,
	cause error,
) {
	slog.Error(
		"FATAL: wallet debited but withdrawal row not persisted, manual intervention required",
		slog.String("owner", req.Owner.String()),
		slog.Int64("amount", int64(req.Amount)),
		slog.String("reference", reference),
		slog.Any("error", cause),
	)
}

// ListByUser returns the requester's own withdrawals, newest first.
func (s *Service) ListByUser(
	ctx context.Context,
	userID int64,
	limit int,
) ([]model.Withdrawal, error) {
	return s.withdrawals.ListByUser(ctx, userID, limit)
}

// TransferEvent is the normalized transfer-status payload. The webhook
// ingress and the reconciler both produce this shape, so finalization has
// exactly one implementation.
type TransferEvent struct {
	OK            bool
	Provider      string
	Type          string
	Reference     string
	TransferID    int64
	Status        string
	FailureReason string
	Raw           json.RawMessage
}

// HandleTransferEvent finalizes the referenced withdrawal, idempotently.
// The transition is a status-guarded update, so a webhook and a reconciler
// run racing on the same reference produce exactly one transition and one
// notification; the loser no-ops.
func (s *Service) HandleTransferEvent(ctx context.Context, ev TransferEvent) error {
	status := model.WithdrawalSuccessful
	if !ev.OK {
		status = model.WithdrawalFailed
	}

	transitioned, err := s.withdrawals.Finalize(ctx, model.FinalizeWithdrawalParams{
		Reference:      ev.Reference,
		Status:         status,
		TransferID:     ev.TransferID,
		TransferStatus: ev.Status,
		FailureReason:  ev.FailureReason,
	})
	if err != nil {
		return err
	}
	if !transitioned {
		slog.Info(
			"withdrawal already finalized, skipping",
			slog.String("reference", ev.Reference),
		)
		return nil
	}

	w, err := s.withdrawals.ByReference(ctx, ev.Reference)
	if err != nil {
		slog.Error(
			"finalized withdrawal but failed to load it for notification",
			slog.String("reference", ev.Reference),
			slog.Any("error", err),
		)
		return nil
	}

	account, err := s.bankAccounts.ForUser(ctx, w.BankAccountID, w.UserID)
	if err != nil {
		slog.Error(
			"failed to load bank account for notification",
			slog.String("reference", ev.Reference),
			slog.Any("error", err),
		)
		account = &model.BankAccount{}
	}

	kind := model.OutboxKindWithdrawalSuccessful
	if status == model.WithdrawalFailed {
		kind = model.OutboxKindWithdrawalFailed
	}
	s.enqueueNotice(ctx, kind, w, account, ev.FailureReason)

	slog.Info(
		"withdrawal finalized",
		slog.String("reference", ev.Reference),
		slog.String("status", status.String()),
	)

	return nil
}

// ResolveUnconfirmed settles a withdrawal whose create-transfer call timed
// out and which the reconciler has now proven was never created at the
// provider. The deferred compensating credit happens here, after the guarded
// transition, so it runs at most once.
func (s *Service) ResolveUnconfirmed(ctx context.Context, w *model.Withdrawal) error {
	if w.TransferConfirmed {
		return fmt.Errorf("withdrawal %s has a confirmed transfer", w.PayoutReference)
	}

	transitioned, err := s.withdrawals.Finalize(ctx, model.FinalizeWithdrawalParams{
		Reference:     w.PayoutReference,
		Status:        model.WithdrawalFailed,
		FailureReason: "transfer was never created at provider",
	})
	if err != nil {
		return err
	}
	if !transitioned {
		return nil
	}

	owner := model.WalletOwner{Type: w.OwnerType, ID: w.OwnerID}
	if _, err := s.funds.ReverseDebit(ctx, wallets.ReversalParams{
		Owner:     owner,
		Amount:    w.Amount,
		Reference: w.PayoutReference,
		Reason:    "transfer never created, deferred reversal",
	}); err != nil {
		slog.Error(
			"FATAL: deferred compensating credit failed, manual intervention required",
			slog.String("owner", owner.String()),
			slog.Int64("amount", int64(w.Amount)),
			slog.String("reference", w.PayoutReference),
			slog.Any("error", err),
		)
		return err
	}

	account, err := s.bankAccounts.ForUser(ctx, w.BankAccountID, w.UserID)
	if err != nil {
		account = &model.BankAccount{}
	}
	s.enqueueNotice(
		ctx,
		model.OutboxKindWithdrawalFailed,
		w,
		account,
		"transfer was never created at provider",
	)

	return nil
}

func (s *Service) enqueueNotice(
	ctx context.Context,
	kind string,
	w *model.Withdrawal,
	account *model.BankAccount,
	failureReason string,
) {
	notice := model.WithdrawalNotice{
		Reference:     w.PayoutReference,
		OwnerType:     w.OwnerType,
		OwnerID:       w.OwnerID,
		UserID:        w.UserID,
		Amount:        w.Amount,
		FeeAmount:     w.FeeAmount,
		PayoutAmount:  w.PayoutAmount,
		BankName:      account.BankName,
		AccountNumber: account.MaskedNumber(),
		AccountName:   account.AccountName,
		FailureReason: failureReason,
	}

	payload, err := json.Marshal(notice)
	if err != nil {
		slog.Error("failed to marshal withdrawal notice", slog.Any("error", err))
		return
	}

	if err := s.outbox.Enqueue(ctx, kind, payload); err != nil {
		slog.Error(
			"failed to enqueue withdrawal notice",
			slog.String("kind", kind),
			slog.String("reference", w.PayoutReference),
			slog.Any("error", err),
		)
	}
}
