package model

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrWithdrawalNotFound = errors.New("withdrawal not found")
	ErrAmountOutOfBounds  = errors.New("amount out of bounds")
	ErrRateLimited        = errors.New("withdrawal rate limit exceeded")
	ErrFeeModeUnsupported = errors.New("fee mode not supported")
	ErrNotAuthorized      = errors.New("not authorized")
)

type WithdrawalStatus int

const (
	WithdrawalPending WithdrawalStatus = iota
	WithdrawalSuccessful
	WithdrawalFailed
)

func (s WithdrawalStatus) String() string {
	switch s {
	case WithdrawalPending:
		return "pending"
	case WithdrawalSuccessful:
		return "successful"
	case WithdrawalFailed:
		return "failed"
	default:
		return "unknown"
	}
}

func (s WithdrawalStatus) Terminal() bool {
	return s == WithdrawalSuccessful || s == WithdrawalFailed
}

func (s WithdrawalStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *WithdrawalStatus) UnmarshalText(text []byte) error {
	return s.fromString(string(text))
}

func (s *WithdrawalStatus) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return s.fromString(v)
	case []byte:
		return s.fromString(string(v))
	default:
		return fmt.Errorf("unsupported type %T", src)
	}
}

func (s *WithdrawalStatus) fromString(v string) error {
	switch v {
	case "pending":
		*s = WithdrawalPending
	case "successful":
		*s = WithdrawalSuccessful
	case "failed":
		*s = WithdrawalFailed
	default:
		return fmt.Errorf("unknown withdrawal status %q", v)
	}
	return nil
}

// FeeMode selects how the service fee relates to the requested amount. Only
// the exclusive mode is implemented: the fee is taken out of the gross
// amount and the remainder is paid out. The other modes exist in the API
// surface but are rejected until their semantics are settled.
type FeeMode string

const (
	FeeModeExclusive FeeMode = "EXCLUSIVE"
	FeeModeInclusive FeeMode = "INCLUSIVE"
	FeeModeNone      FeeMode = "NONE"
)

// Withdrawal is one payout attempt against a wallet. It is created only
// after the ledger debit has committed, starts pending and moves to exactly
// one terminal status via the webhook or the reconciler, never both.
//
// TransferConfirmed is false when the provider call that should have created
// the transfer ended with an unknown outcome (timeout, transport error). Such
// rows carry no transfer id and are resolved by the reconciler before any
// money is returned to the wallet.
type Withdrawal struct {
	ID                int64
	WalletID          int64
	OwnerType         OwnerType
	OwnerID           int64
	UserID            int64
	Amount            Amount
	FeeAmount         Amount
	PayoutAmount      Amount
	Status            WithdrawalStatus
	PayoutReference   string
	BankAccountID     int64
	TransferID        int64
	TransferStatus    string
	TransferConfirmed bool
	FailureReason     string
	LastCheckedAt     time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// FinalizeWithdrawalParams finalizes one pending withdrawal. TransferID may
// be zero when the terminal status was learned by reference only.
type FinalizeWithdrawalParams struct {
	Reference      string
	Status         WithdrawalStatus
	TransferID     int64
	TransferStatus string
	FailureReason  string
}

//go:generate mockgen -package mocks -destination ../service/withdrawals/mocks/withdrawals_repo.go . WithdrawalsRepository
type WithdrawalsRepository interface {
	Create(ctx context.Context, w *Withdrawal) (*Withdrawal, error)

	ByReference(ctx context.Context, reference string) (*Withdrawal, error)

	ListByUser(ctx context.Context, userID int64, limit int) ([]Withdrawal, error)

	// CountForUserSince counts the user's withdrawals created at or after
	// the given instant, regardless of owner. Used for rate limiting.
	CountForUserSince(ctx context.Context, userID int64, since time.Time) (int, error)

	// Finalize moves the referenced withdrawal from pending to the given
	// terminal status. The update is conditional on status still being
	// pending; it reports false with no error when another finalizer got
	// there first, and ErrWithdrawalNotFound when the reference is unknown.
	Finalize(ctx context.Context, p FinalizeWithdrawalParams) (bool, error)
}
