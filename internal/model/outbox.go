package model

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Notification kinds understood by the platform mail service.
const (
	OutboxKindWithdrawalRequested  = "withdrawal_requested"
	OutboxKindWithdrawalSuccessful = "withdrawal_successful"
	OutboxKindWithdrawalFailed     = "withdrawal_failed"
	OutboxKindWalletAdjusted       = "wallet_adjusted"
)

type OutboxStatus int

const (
	OutboxPending OutboxStatus = iota
	OutboxSent
	OutboxFailed
)

func (s OutboxStatus) String() string {
	switch s {
	case OutboxPending:
		return "pending"
	case OutboxSent:
		return "sent"
	case OutboxFailed:
		return "failed"
	default:
		return "unknown"
	}
}

func (s *OutboxStatus) Scan(src any) error {
	var v string
	switch t := src.(type) {
	case string:
		v = t
	case []byte:
		v = string(t)
	default:
		return fmt.Errorf("unsupported type %T", src)
	}

	switch v {
	case "pending":
		*s = OutboxPending
	case "sent":
		*s = OutboxSent
	case "failed":
		*s = OutboxFailed
	default:
		return fmt.Errorf("unknown outbox status %q", v)
	}
	return nil
}

// OutboxMessage is one queued notification. Money-moving code only ever
// enqueues; delivery happens later in the dispatcher, so a mail outage can
// never roll back a ledger write.
type OutboxMessage struct {
	ID            int64
	Kind          string
	Payload       json.RawMessage
	Status        OutboxStatus
	Attempts      int
	NextAttemptAt time.Time
	CreatedAt     time.Time
	SentAt        time.Time
}

//go:generate mockgen -package mocks -destination ../service/withdrawals/mocks/outbox_repo.go . OutboxRepository
type OutboxRepository interface {
	Enqueue(ctx context.Context, kind string, payload json.RawMessage) error
}

// WithdrawalNotice is the payload for the withdrawal notification kinds.
// Account numbers are masked before the payload is built.
type WithdrawalNotice struct {
	Reference     string    `json:"reference"`
	OwnerType     OwnerType `json:"owner_type"`
	OwnerID       int64     `json:"owner_id"`
	UserID        int64     `json:"user_id"`
	Amount        Amount    `json:"amount"`
	FeeAmount     Amount    `json:"fee_amount"`
	PayoutAmount  Amount    `json:"payout_amount"`
	BankName      string    `json:"bank_name"`
	AccountNumber string    `json:"account_number"`
	AccountName   string    `json:"account_name"`
	FailureReason string    `json:"failure_reason,omitempty"`
}

// AdjustmentNotice is the payload for manual wallet adjustments.
type AdjustmentNotice struct {
	OwnerType     OwnerType `json:"owner_type"`
	OwnerID       int64     `json:"owner_id"`
	Amount        int64     `json:"amount"`
	Reason        string    `json:"reason"`
	AdjustedBy    int64     `json:"adjusted_by"`
	BalanceBefore Amount    `json:"balance_before"`
	BalanceAfter  Amount    `json:"balance_after"`
}
