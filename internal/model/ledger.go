package model

import (
	"fmt"
	"time"
)

type EntryType int

const (
	EntryTypeCredit EntryType = iota
	EntryTypeWithdrawal
	EntryTypeAdjustment
	EntryTypeRefund
)

func (t EntryType) String() string {
	switch t {
	case EntryTypeCredit:
		return "CREDIT"
	case EntryTypeWithdrawal:
		return "WITHDRAWAL"
	case EntryTypeAdjustment:
		return "ADJUSTMENT"
	case EntryTypeRefund:
		return "REFUND"
	default:
		return "UNKNOWN"
	}
}

func (t EntryType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EntryType) UnmarshalText(text []byte) error {
	return t.fromString(string(text))
}

func (t *EntryType) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return t.fromString(v)
	case []byte:
		return t.fromString(string(v))
	default:
		return fmt.Errorf("unsupported type %T", src)
	}
}

func (t *EntryType) fromString(v string) error {
	switch v {
	case "CREDIT":
		*t = EntryTypeCredit
	case "WITHDRAWAL":
		*t = EntryTypeWithdrawal
	case "ADJUSTMENT":
		*t = EntryTypeAdjustment
	case "REFUND":
		*t = EntryTypeRefund
	default:
		return fmt.Errorf("unknown entry type %q", v)
	}
	return nil
}

type Direction int

const (
	DirectionCredit Direction = iota
	DirectionDebit
)

func (d Direction) String() string {
	switch d {
	case DirectionCredit:
		return "CREDIT"
	case DirectionDebit:
		return "DEBIT"
	default:
		return "UNKNOWN"
	}
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	return d.fromString(string(text))
}

func (d *Direction) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return d.fromString(v)
	case []byte:
		return d.fromString(string(v))
	default:
		return fmt.Errorf("unsupported type %T", src)
	}
}

func (d *Direction) fromString(v string) error {
	switch v {
	case "CREDIT":
		*d = DirectionCredit
	case "DEBIT":
		*d = DirectionDebit
	default:
		return fmt.Errorf("unknown direction %q", v)
	}
	return nil
}

// LedgerEntry is one immutable record of a balance-affecting operation.
// Entries are append-only: nothing in the codebase updates or deletes them.
// BalanceAfter snapshots the wallet balance immediately after the entry, so
// folding a wallet's entries in creation order from zero reproduces the
// current balance.
type LedgerEntry struct {
	ID           int64
	WalletID     int64
	Type         EntryType
	Direction    Direction
	Amount       Amount
	BalanceAfter Amount
	OwnerType    OwnerType
	OwnerID      int64
	Metadata     EntryMetadata
	CreatedAt    time.Time
}

// EntryMetadata carries the typed per-entry-type payloads. Exactly one of the
// detail pointers is set, matching the entry type.
type EntryMetadata struct {
	Withdrawal *WithdrawalDetails `json:"withdrawal,omitempty"`
	Adjustment *AdjustmentDetails `json:"adjustment,omitempty"`
	Ticket     *TicketDetails     `json:"ticket,omitempty"`
}

// WithdrawalDetails documents the fee breakdown of a withdrawal debit.
type WithdrawalDetails struct {
	RequestedBy  int64  `json:"requested_by"`
	GrossAmount  Amount `json:"gross_amount"`
	FeeAmount    Amount `json:"fee_amount"`
	PayoutAmount Amount `json:"payout_amount"`
	Reference    string `json:"reference"`
}

// AdjustmentDetails documents a manual or compensating adjustment. For a
// compensating credit, ReversesReference names the payout reference of the
// withdrawal debit being reversed.
type AdjustmentDetails struct {
	AdjustedBy        int64  `json:"adjusted_by,omitempty"`
	Reason            string `json:"reason"`
	ReversesReference string `json:"reverses_reference,omitempty"`
}

// TicketDetails documents a ticket-sale credit or ticket-refund debit.
type TicketDetails struct {
	TicketID int64 `json:"ticket_id"`
	BuyerID  int64 `json:"buyer_id,omitempty"`
}
