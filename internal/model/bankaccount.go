package model

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrBankAccountNotFound = errors.New("bank account not found")

// BankAccount is a payout destination registered by a user elsewhere on the
// platform. This service only reads them.
type BankAccount struct {
	ID            int64
	UserID        int64
	BankCode      string
	BankName      string
	AccountNumber string
	AccountName   string
	IsDefault     bool
	CreatedAt     time.Time
}

// MaskedNumber hides all but the last four digits of the account number.
// Full account numbers never leave the service in responses or notifications.
func (a *BankAccount) MaskedNumber() string {
	n := a.AccountNumber
	if len(n) <= 4 {
		return n
	}
	return strings.Repeat("*", len(n)-4) + n[len(n)-4:]
}

//go:generate mockgen -package mocks -destination ../service/withdrawals/mocks/bank_accounts_repo.go . BankAccountsRepository
type BankAccountsRepository interface {
	// ForUser returns the account only when it belongs to the user.
	ForUser(ctx context.Context, id, userID int64) (*BankAccount, error)

	DefaultForUser(ctx context.Context, userID int64) (*BankAccount, error)
}
