package model

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrUnknownOwnerType    = errors.New("unknown owner type")
)

// Amount is a monetary value in whole platform currency units (NGN).
// The payout rail accepts integer amounts, so no fractional part is carried.
type Amount int64

func ValidAmount(a Amount) bool {
	return a > 0
}

type OwnerType string

const (
	OwnerTypeEvent    OwnerType = "EVENT"
	OwnerTypeGroup    OwnerType = "GROUP"
	OwnerTypePlatform OwnerType = "PLATFORM"
)

func ParseOwnerType(s string) (OwnerType, error) {
	switch OwnerType(strings.ToUpper(strings.TrimSpace(s))) {
	case OwnerTypeEvent:
		return OwnerTypeEvent, nil
	case OwnerTypeGroup:
		return OwnerTypeGroup, nil
	case OwnerTypePlatform:
		return OwnerTypePlatform, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOwnerType, s)
	}
}

func (t OwnerType) Valid() bool {
	switch t {
	case OwnerTypeEvent, OwnerTypeGroup, OwnerTypePlatform:
		return true
	}
	return false
}

// WalletOwner identifies the wallet of an event, a group, or the platform
// itself. The platform wallet uses owner id 0.
type WalletOwner struct {
	Type OwnerType
	ID   int64
}

func PlatformOwner() WalletOwner {
	return WalletOwner{Type: OwnerTypePlatform}
}

func (o WalletOwner) String() string {
	return fmt.Sprintf("%s/%d", o.Type, o.ID)
}

// Wallet holds the running balance for one owner. The balance is a projection
// of the wallet ledger: every mutation appends a LedgerEntry whose
// BalanceAfter equals the wallet balance at that moment, in the same
// transaction. Wallets are created lazily on first credit or adjustment and
// never deleted.
type Wallet struct {
	ID        int64
	OwnerType OwnerType
	OwnerID   int64
	Balance   Amount
	Currency  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (w *Wallet) Owner() WalletOwner {
	return WalletOwner{Type: w.OwnerType, ID: w.OwnerID}
}

type CreditWalletParams struct {
	Owner     WalletOwner
	Amount    Amount
	Currency  string
	EntryType EntryType
	Metadata  EntryMetadata
}

type DebitWalletParams struct {
	Owner     WalletOwner
	Amount    Amount
	EntryType EntryType
	Metadata  EntryMetadata
}

//go:generate mockgen -package mocks -destination ../service/wallets/mocks/wallet_repo.go . WalletRepository
type WalletRepository interface {
	// Wallet returns the wallet for the owner or ErrWalletNotFound.
	Wallet(ctx context.Context, owner WalletOwner) (*Wallet, error)

	// Credit adds amount to the owner's wallet, creating the wallet when
	// absent, and appends the matching ledger entry in one transaction.
	Credit(ctx context.Context, p CreditWalletParams) (*LedgerEntry, error)

	// Debit subtracts amount from the owner's wallet and appends the
	// matching ledger entry in one transaction. The balance update is
	// conditional on balance >= amount; a miss returns
	// ErrInsufficientBalance with no side effects.
	Debit(ctx context.Context, p DebitWalletParams) (*LedgerEntry, error)

	// Entries returns the owner's ledger, newest first.
	Entries(ctx context.Context, owner WalletOwner, limit int) ([]LedgerEntry, error)
}
