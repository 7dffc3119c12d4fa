package wallets

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"hangpay/internal/model"
	"hangpay/internal/service/authz"
)

// Flat service fee retained by the platform on event withdrawals. Group
// withdrawals carry no fee.
const eventFeePercent = 5

const defaultCurrency = "NGN"

//go:generate mockgen -package mocks -destination ./mocks/authorizer.go . Authorizer
type Authorizer interface {
	CanView(
		ctx context.Context,
		owner model.WalletOwner,
		userID int64,
		isAdmin bool,
	) (authz.Decision, error)
	CanWithdraw(
		ctx context.Context,
		owner model.WalletOwner,
		userID int64,
	) (authz.Decision, error)
}

//go:generate mockgen -package mocks -destination ./mocks/outbox_repo.go hangpay/internal/model OutboxRepository

// Service owns every ledger mutation. Balances change only here, and only
// through the repository's transactional credit/debit operations, so the
// running-sum invariant of the ledger holds by construction.
type Service struct {
	wallets model.WalletRepository
	authz   Authorizer
	outbox  model.OutboxRepository
}

func NewService(
	wallets model.WalletRepository,
	authorizer Authorizer,
	outbox model.OutboxRepository,
) *Service {
	return &Service{
		wallets: wallets,
		authz:   authorizer,
		outbox:  outbox,
	}
}

type WithdrawalRequest struct {
	Owner       model.WalletOwner
	RequestedBy int64
	Amount      model.Amount
	FeeMode     model.FeeMode
	Reference   string
}

// WithdrawalQuote is the committed result of a ledger debit. Once returned,
// the gross amount has left the wallet; the only way back is a compensating
// adjustment.
type WithdrawalQuote struct {
	WalletID     int64
	FeeAmount    model.Amount
	PayoutAmount model.Amount
	BalanceAfter model.Amount
}

// RequestWithdrawal validates, re-checks authorization and debits the full
// gross amount in one conditional update. The fee stays with the platform
// and is never transferred anywhere, which is why the debit is for the gross
// and not the payout amount.
func (s *Service) RequestWithdrawal(
	ctx context.Context,
	req WithdrawalRequest,
) (*WithdrawalQuote, error) {
	if !model.ValidAmount(req.Amount) {
		return nil, fmt.Errorf("%w: %d", model.ErrInvalidAmount, req.Amount)
	}
	if !req.Owner.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownOwnerType, req.Owner.Type)
	}

	// Defense in depth: the orchestrator checks too, but a debit must never
	// rely on its caller having done so.
	decision, err := s.authz.CanWithdraw(ctx, req.Owner, req.RequestedBy)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, authz.DeniedError(decision)
	}

	fee, err := computeFee(req.Owner.Type, req.Amount, req.FeeMode)
	if err != nil {
		return nil, err
	}
	payout := req.Amount - fee

	entry, err := s.wallets.Debit(ctx, model.DebitWalletParams{
		Owner:     req.Owner,
		Amount:    req.Amount,
		EntryType: model.EntryTypeWithdrawal,
		Metadata: model.EntryMetadata{
			Withdrawal: &model.WithdrawalDetails{
				RequestedBy:  req.RequestedBy,
				GrossAmount:  req.Amount,
				FeeAmount:    fee,
				PayoutAmount: payout,
				Reference:    req.Reference,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return &WithdrawalQuote{
		WalletID:     entry.WalletID,
		FeeAmount:    fee,
		PayoutAmount: payout,
		BalanceAfter: entry.BalanceAfter,
	}, nil
}

func computeFee(
	ownerType model.OwnerType,
	amount model.Amount,
	mode model.FeeMode,
) (model.Amount, error) {
	if mode == "" {
		mode = model.FeeModeExclusive
	}
	if mode != model.FeeModeExclusive {
		return 0, fmt.Errorf("%w: %q", model.ErrFeeModeUnsupported, mode)
	}

	if ownerType == model.OwnerTypeEvent {
		return amount * eventFeePercent / 100, nil
	}
	return 0, nil
}

type ReversalParams struct {
	Owner     model.WalletOwner
	Amount    model.Amount
	Reference string
	Reason    string
}

// ReverseDebit writes the compensating ADJUSTMENT credit for a withdrawal
// debit that must be undone. The original entry is untouched; the ledger
// records both sides.
func (s *Service) ReverseDebit(
	ctx context.Context,
	p ReversalParams,
) (*model.LedgerEntry, error) {
	return s.wallets.Credit(ctx, model.CreditWalletParams{
		Owner:     p.Owner,
		Amount:    p.Amount,
		Currency:  defaultCurrency,
		EntryType: model.EntryTypeAdjustment,
		Metadata: model.EntryMetadata{
			Adjustment: &model.AdjustmentDetails{
				Reason:            p.Reason,
				ReversesReference: p.Reference,
			},
		},
	})
}

type AdjustmentParams struct {
	Owner      model.WalletOwner
	Amount     int64 // signed: positive credits, negative debits
	Reason     string
	AdjustedBy int64
}

type AdjustmentResult struct {
	BalanceBefore model.Amount
	BalanceAfter  model.Amount
}

// Adjust applies a manual correction. Admin gating happens at the API layer;
// here only the amount, reason and balance invariant are enforced.
func (s *Service) Adjust(
	ctx context.Context,
	p AdjustmentParams,
) (*AdjustmentResult, error) {
	if p.Amount == 0 {
		return nil, fmt.Errorf("%w: adjustment amount must be non-zero", model.ErrInvalidAmount)
	}
	if strings.TrimSpace(p.Reason) == "" {
		return nil, fmt.Errorf("%w: adjustment reason is required", model.ErrInvalidAmount)
	}
	if !p.Owner.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownOwnerType, p.Owner.Type)
	}

	metadata := model.EntryMetadata{
		Adjustment: &model.AdjustmentDetails{
			AdjustedBy: p.AdjustedBy,
			Reason:     p.Reason,
		},
	}

	var entry *model.LedgerEntry
	var err error
	if p.Amount > 0 {
		entry, err = s.wallets.Credit(ctx, model.CreditWalletParams{
			Owner:     p.Owner,
			Amount:    model.Amount(p.Amount),
			Currency:  defaultCurrency,
			EntryType: model.EntryTypeAdjustment,
			Metadata:  metadata,
		})
	} else {
		entry, err = s.wallets.Debit(ctx, model.DebitWalletParams{
			Owner:     p.Owner,
			Amount:    model.Amount(-p.Amount),
			EntryType: model.EntryTypeAdjustment,
			Metadata:  metadata,
		})
	}
	if err != nil {
		return nil, err
	}

	result := &AdjustmentResult{
		BalanceBefore: entry.BalanceAfter - model.Amount(p.Amount),
		BalanceAfter:  entry.BalanceAfter,
	}

	s.enqueueAdjustmentNotice(ctx, p, result)

	return result, nil
}

func (s *Service) enqueueAdjustmentNotice(
	ctx context.Context,
	p AdjustmentParams,
	result *AdjustmentResult,
) {
	notice := model.AdjustmentNotice{
		OwnerType:     p.Owner.Type,
		OwnerID:       p.Owner.ID,
		Amount:        p.Amount,
		Reason:        p.Reason,
		AdjustedBy:    p.AdjustedBy,
		BalanceBefore: result.BalanceBefore,
		BalanceAfter:  result.BalanceAfter,
	}

	payload, err := json.Marshal(notice)
	if err != nil {
		slog.Error("failed to marshal adjustment notice", slog.Any("error", err))
		return
	}

	if err := s.outbox.Enqueue(ctx, model.OutboxKindWalletAdjusted, payload); err != nil {
		slog.Error(
			"failed to enqueue adjustment notice",
			slog.String("owner", p.Owner.String()),
			slog.Any("error", err),
		)
	}
}

type TicketSaleParams struct {
	Owner    model.WalletOwner
	Amount   model.Amount
	TicketID int64
	BuyerID  int64
}

// RecordTicketSale credits ticket revenue to the owner's wallet, creating
// the wallet on first sale.
func (s *Service) RecordTicketSale(
	ctx context.Context,
	p TicketSaleParams,
) (*model.LedgerEntry, error) {
	if !model.ValidAmount(p.Amount) {
		return nil, fmt.Errorf("%w: %d", model.ErrInvalidAmount, p.Amount)
	}
	if !p.Owner.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownOwnerType, p.Owner.Type)
	}

	return s.wallets.Credit(ctx, model.CreditWalletParams{
		Owner:     p.Owner,
		Amount:    p.Amount,
		Currency:  defaultCurrency,
		EntryType: model.EntryTypeCredit,
		Metadata: model.EntryMetadata{
			Ticket: &model.TicketDetails{
				TicketID: p.TicketID,
				BuyerID:  p.BuyerID,
			},
		},
	})
}

// RecordTicketRefund claws a refunded sale back out of the wallet. The
// balance invariant still applies: a wallet already drained below the refund
// amount rejects the clawback, which then needs a manual adjustment.
func (s *Service) RecordTicketRefund(
	ctx context.Context,
	p TicketSaleParams,
) (*model.LedgerEntry, error) {
	if !model.ValidAmount(p.Amount) {
		return nil, fmt.Errorf("%w: %d", model.ErrInvalidAmount, p.Amount)
	}
	if !p.Owner.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownOwnerType, p.Owner.Type)
	}

	return s.wallets.Debit(ctx, model.DebitWalletParams{
		Owner:     p.Owner,
		Amount:    p.Amount,
		EntryType: model.EntryTypeRefund,
		Metadata: model.EntryMetadata{
			Ticket: &model.TicketDetails{
				TicketID: p.TicketID,
				BuyerID:  p.BuyerID,
			},
		},
	})
}

// Balance returns the wallet for viewers the authorization matrix allows.
func (s *Service) Balance(
	ctx context.Context,
	owner model.WalletOwner,
	userID int64,
	isAdmin bool,
) (*model.Wallet, error) {
	decision, err := s.authz.CanView(ctx, owner, userID, isAdmin)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, authz.DeniedError(decision)
	}

	return s.wallets.Wallet(ctx, owner)
}

// Entries returns the owner's ledger, newest first.
func (s *Service) Entries(
	ctx context.Context,
	owner model.WalletOwner,
	userID int64,
	isAdmin bool,
	limit int,
) ([]model.LedgerEntry, error) {
	decision, err := s.authz.CanView(ctx, owner, userID, isAdmin)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, authz.DeniedError(decision)
	}

	return s.wallets.Entries(ctx, owner, limit)
}
