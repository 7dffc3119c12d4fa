package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"hangpay/internal/model"
	"hangpay/internal/service/wallets"
)

//go:generate mockgen -package mocks -destination ./mocks/admin_mock.go . AdminService
type AdminService interface {
	Adjust(
		ctx context.Context,
		p wallets.AdjustmentParams,
	) (*wallets.AdjustmentResult, error)
	RecordTicketSale(
		ctx context.Context,
		p wallets.TicketSaleParams,
	) (*model.LedgerEntry, error)
	RecordTicketRefund(
		ctx context.Context,
		p wallets.TicketSaleParams,
	) (*model.LedgerEntry, error)
}

type adjustmentRequest struct {
	OwnerType string `json:"owner_type" validate:"required"`
	OwnerID   int64  `json:"owner_id" validate:"gte=0"`
	Amount    int64  `json:"amount" validate:"required"`
	Reason    string `json:"reason" validate:"required"`
}

type adjustmentResponse struct {
	BalanceBefore model.Amount `json:"balance_before"`
	BalanceAfter  model.Amount `json:"balance_after"`
}

func NewAdjustmentHandler(svc AdminService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		identity, ok := identityFromContext(ctx)
		if !ok {
			http.Error(
				w,
				http.StatusText(http.StatusUnauthorized),
				http.StatusUnauthorized,
			)
			return
		}

		var req adjustmentRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		ownerType, err := model.ParseOwnerType(req.OwnerType)
		if err != nil {
			writeError(w, err)
			return
		}

		result, err := svc.Adjust(ctx, wallets.AdjustmentParams{
			Owner:      model.WalletOwner{Type: ownerType, ID: req.OwnerID},
			Amount:     req.Amount,
			Reason:     req.Reason,
			AdjustedBy: identity.UserID,
		})
		if err != nil {
			slog.Warn("manual adjustment failed", slog.Any("error", err))
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, adjustmentResponse{
			BalanceBefore: result.BalanceBefore,
			BalanceAfter:  result.BalanceAfter,
		})
	})
}

type ticketEntryRequest struct {
	OwnerType string `json:"owner_type" validate:"required"`
	OwnerID   int64  `json:"owner_id" validate:"gte=0"`
	Amount    int64  `json:"amount" validate:"required,gt=0"`
	TicketID  int64  `json:"ticket_id" validate:"required"`
	BuyerID   int64  `json:"buyer_id" validate:"gte=0"`
}

type ticketEntryResponse struct {
	EntryID      int64        `json:"entry_id"`
	BalanceAfter model.Amount `json:"balance_after"`
}

func NewTicketSaleHandler(svc AdminService) http.Handler {
	return newTicketEntryHandler(svc.RecordTicketSale, "ticket sale")
}

func NewTicketRefundHandler(svc AdminService) http.Handler {
	return newTicketEntryHandler(svc.RecordTicketRefund, "ticket refund")
}

func newTicketEntryHandler(
	record func(context.Context, wallets.TicketSaleParams) (*model.LedgerEntry, error),
	what string,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ticketEntryRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		ownerType, err := model.ParseOwnerType(req.OwnerType)
		if err != nil {
			writeError(w, err)
			return
		}

		entry, err := record(r.Context(), wallets.TicketSaleParams{
			Owner:    model.WalletOwner{Type: ownerType, ID: req.OwnerID},
			Amount:   model.Amount(req.Amount),
			TicketID: req.TicketID,
			BuyerID:  req.BuyerID,
		})
		if err != nil {
			slog.Warn(what+" record failed", slog.Any("error", err))
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, ticketEntryResponse{
			EntryID:      entry.ID,
			BalanceAfter: entry.BalanceAfter,
		})
	})
}
