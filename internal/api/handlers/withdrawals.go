package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"hangpay/internal/model"
	"hangpay/internal/service/withdrawals"
)

const defaultWithdrawalsLimit = 50

//go:generate mockgen -package mocks -destination ./mocks/withdrawals_mock.go . WithdrawalsService
type WithdrawalsService interface {
	Request(ctx context.Context, req withdrawals.Request) (*withdrawals.Result, error)
	ListByUser(ctx context.Context, userID int64, limit int) ([]model.Withdrawal, error)
}

type withdrawalRequest struct {
	OwnerType     string `json:"owner_type" validate:"required"`
	OwnerID       int64  `json:"owner_id" validate:"gte=0"`
	Amount        int64  `json:"amount" validate:"required,gt=0"`
	BankAccountID int64  `json:"bank_account_id" validate:"gte=0"`
}

type withdrawalResponse struct {
	Reference     string                 `json:"reference"`
	Status        model.WithdrawalStatus `json:"status"`
	Amount        model.Amount           `json:"amount"`
	FeeAmount     model.Amount           `json:"fee_amount"`
	PayoutAmount  model.Amount           `json:"payout_amount"`
	BalanceAfter  model.Amount           `json:"balance_after"`
	BankName      string                 `json:"bank_name,omitempty"`
	AccountName   string                 `json:"account_name,omitempty"`
	AccountNumber string                 `json:"account_number,omitempty"`
	CreatedAt     string                 `json:"created_at"`
}

func NewWithdrawalRequestHandler(svc WithdrawalsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		identity, ok := identityFromContext(ctx)
		if !ok {
			slog.Error(
				"withdrawal request error",
				slog.String("error", "failed to get identity from context"),
			)
			http.Error(
				w,
				http.StatusText(http.StatusUnauthorized),
				http.StatusUnauthorized,
			)
			return
		}

		var req withdrawalRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		ownerType, err := model.ParseOwnerType(req.OwnerType)
		if err != nil {
			writeError(w, err)
			return
		}

		result, err := svc.Request(ctx, withdrawals.Request{
			Owner:         model.WalletOwner{Type: ownerType, ID: req.OwnerID},
			RequestedBy:   identity.UserID,
			Amount:        model.Amount(req.Amount),
			BankAccountID: req.BankAccountID,
		})
		if err != nil {
			slog.Warn("withdrawal request failed", slog.Any("error", err))
			writeError(w, err)
			return
		}

		wd := result.Withdrawal
		writeJSON(w, http.StatusCreated, withdrawalResponse{
			Reference:     wd.PayoutReference,
			Status:        wd.Status,
			Amount:        wd.Amount,
			FeeAmount:     wd.FeeAmount,
			PayoutAmount:  wd.PayoutAmount,
			BalanceAfter:  result.BalanceAfter,
			BankName:      result.BankName,
			AccountName:   result.AccountName,
			AccountNumber: result.AccountNumber,
			CreatedAt:     wd.CreatedAt.Format(time.RFC3339),
		})
	})
}

type withdrawalListItem struct {
	Reference    string                 `json:"reference"`
	OwnerType    model.OwnerType        `json:"owner_type"`
	OwnerID      int64                  `json:"owner_id"`
	Amount       model.Amount           `json:"amount"`
	FeeAmount    model.Amount           `json:"fee_amount"`
	PayoutAmount model.Amount           `json:"payout_amount"`
	Status       model.WithdrawalStatus `json:"status"`
	CreatedAt    string                 `json:"created_at"`
}

func NewWithdrawalsListHandler(svc WithdrawalsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		identity, ok := identityFromContext(ctx)
		if !ok {
			slog.Error(
				"withdrawals request error",
				slog.String("error", "failed to get identity from context"),
			)
			http.Error(
				w,
				http.StatusText(http.StatusUnauthorized),
				http.StatusUnauthorized,
			)
			return
		}

		list, err := svc.ListByUser(ctx, identity.UserID, defaultWithdrawalsLimit)
		if err != nil {
			slog.Error("withdrawals request error", slog.Any("error", err))
			http.Error(
				w,
				http.StatusText(http.StatusInternalServerError),
				http.StatusInternalServerError,
			)
			return
		}

		if len(list) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		response := make([]withdrawalListItem, 0, len(list))
		for _, wd := range list {
			response = append(response, withdrawalListItem{
				Reference:    wd.PayoutReference,
				OwnerType:    wd.OwnerType,
				OwnerID:      wd.OwnerID,
				Amount:       wd.Amount,
				FeeAmount:    wd.FeeAmount,
				PayoutAmount: wd.PayoutAmount,
				Status:       wd.Status,
				CreatedAt:    wd.CreatedAt.Format(time.RFC3339),
			})
		}

		writeJSON(w, http.StatusOK, response)
	})
}
