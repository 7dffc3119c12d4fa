package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"hangpay/internal/model"
)

const defaultEntriesLimit = 50

//go:generate mockgen -package mocks -destination ./mocks/wallets_mock.go . WalletsService
type WalletsService interface {
	Balance(
		ctx context.Context,
		owner model.WalletOwner,
		userID int64,
		isAdmin bool,
	) (*model.Wallet, error)
	Entries(
		ctx context.Context,
		owner model.WalletOwner,
		userID int64,
		isAdmin bool,
		limit int,
	) ([]model.LedgerEntry, error)
}

type balanceResponse struct {
	OwnerType model.OwnerType `json:"owner_type"`
	OwnerID   int64           `json:"owner_id"`
	Balance   model.Amount    `json:"balance"`
	Currency  string          `json:"currency"`
}

func NewWalletBalanceHandler(svc WalletsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		identity, ok := identityFromContext(ctx)
		if !ok {
			slog.Error(
				"balance request error",
				slog.String("error", "failed to get identity from context"),
			)
			http.Error(
				w,
				http.StatusText(http.StatusUnauthorized),
				http.StatusUnauthorized,
			)
			return
		}

		owner, err := ownerFromRequest(r)
		if err != nil {
			writeError(w, err)
			return
		}

		wallet, err := svc.Balance(ctx, owner, identity.UserID, identity.IsAdmin)
		if err != nil {
			slog.Warn("balance request error", slog.Any("error", err))
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, balanceResponse{
			OwnerType: wallet.OwnerType,
			OwnerID:   wallet.OwnerID,
			Balance:   wallet.Balance,
			Currency:  wallet.Currency,
		})
	})
}

type entryResponse struct {
	Type         model.EntryType `json:"type"`
	Direction    model.Direction `json:"direction"`
	Amount       model.Amount    `json:"amount"`
	BalanceAfter model.Amount    `json:"balance_after"`
	CreatedAt    string          `json:"created_at"`
}

func NewWalletEntriesHandler(svc WalletsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		identity, ok := identityFromContext(ctx)
		if !ok {
			slog.Error(
				"ledger request error",
				slog.String("error", "failed to get identity from context"),
			)
			http.Error(
				w,
				http.StatusText(http.StatusUnauthorized),
				http.StatusUnauthorized,
			)
			return
		}

		owner, err := ownerFromRequest(r)
		if err != nil {
			writeError(w, err)
			return
		}

		limit := defaultEntriesLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
				limit = n
			}
		}

		entries, err := svc.Entries(
			ctx,
			owner,
			identity.UserID,
			identity.IsAdmin,
			limit,
		)
		if err != nil {
			slog.Warn("ledger request error", slog.Any("error", err))
			writeError(w, err)
			return
		}

		if len(entries) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		response := make([]entryResponse, 0, len(entries))
		for _, e := range entries {
			response = append(response, entryResponse{
				Type:         e.Type,
				Direction:    e.Direction,
				Amount:       e.Amount,
				BalanceAfter: e.BalanceAfter,
				CreatedAt:    e.CreatedAt.Format(time.RFC3339),
			})
		}

		writeJSON(w, http.StatusOK, response)
	})
}
