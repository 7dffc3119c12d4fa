package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_handlers "hangpay/internal/api/handlers/mocks"
	"hangpay/internal/model"
)

func TestWalletBalanceHandler(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	tests := []struct {
		name       string
		ownerType  string
		ownerID    string
		wallet     *model.Wallet
		svcErr     error
		authUserID int64
		wantCode   int
	}{
		{
			name:      "success",
			ownerType: "EVENT",
			ownerID:   "1",
			wallet: &model.Wallet{
				OwnerType: model.OwnerTypeEvent,
				OwnerID:   1,
				Balance:   150_000,
				Currency:  "NGN",
			},
			authUserID: 10,
			wantCode:   http.StatusOK,
		},
		{
			name:       "fail unauthenticated",
			ownerType:  "EVENT",
			ownerID:    "1",
			authUserID: 0,
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "fail unknown owner type",
			ownerType:  "TEAM",
			ownerID:    "1",
			authUserID: 10,
			wantCode:   http.StatusBadRequest,
		},
		{
			name:       "fail bad owner id",
			ownerType:  "EVENT",
			ownerID:    "abc",
			authUserID: 10,
			wantCode:   http.StatusBadRequest,
		},
		{
			name:       "fail forbidden",
			ownerType:  "EVENT",
			ownerID:    "1",
			svcErr:     fmt.Errorf("%w: only the event creator or co-organizers may view this wallet", model.ErrNotAuthorized),
			authUserID: 99,
			wantCode:   http.StatusForbidden,
		},
		{
			name:       "fail wallet not found",
			ownerType:  "EVENT",
			ownerID:    "1",
			svcErr:     model.ErrWalletNotFound,
			authUserID: 10,
			wantCode:   http.StatusNotFound,
		},
		{
			name:       "fail internal",
			ownerType:  "EVENT",
			ownerID:    "1",
			svcErr:     errors.New("db error"),
			authUserID: 10,
			wantCode:   http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mock_handlers.NewMockWalletsService(ctrl)
			m.EXPECT().
				Balance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(tc.wallet, tc.svcErr).
				AnyTimes()

			handler := NewWalletBalanceHandler(m)
			rec := httptest.NewRecorder()

			ctx := t.Context()
			if tc.authUserID != 0 {
				ctx = authedContext(t, tc.authUserID, false)
			}

			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			req.SetPathValue("ownerType", tc.ownerType)
			req.SetPathValue("ownerID", tc.ownerID)

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)

			if tc.wantCode == http.StatusOK {
				var resp balanceResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, model.Amount(150_000), resp.Balance)
				assert.Equal(t, "NGN", resp.Currency)
			}
		})
	}
}

func TestWalletEntriesHandler(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	entries := []model.LedgerEntry{
		{
			Type:         model.EntryTypeCredit,
			Direction:    model.DirectionCredit,
			Amount:       15_000,
			BalanceAfter: 15_000,
			CreatedAt:    time.Now(),
		},
		{
			Type:         model.EntryTypeWithdrawal,
			Direction:    model.DirectionDebit,
			Amount:       10_000,
			BalanceAfter: 5_000,
			CreatedAt:    time.Now(),
		},
	}

	tests := []struct {
		name       string
		limitParam string
		entries    []model.LedgerEntry
		wantLimit  int
		wantCode   int
	}{
		{
			name:      "success",
			entries:   entries,
			wantLimit: defaultEntriesLimit,
			wantCode:  http.StatusOK,
		},
		{
			name:       "success with explicit limit",
			limitParam: "10",
			entries:    entries,
			wantLimit:  10,
			wantCode:   http.StatusOK,
		},
		{
			name:       "oversized limit falls back to default",
			limitParam: "10000",
			entries:    entries,
			wantLimit:  defaultEntriesLimit,
			wantCode:   http.StatusOK,
		},
		{
			name:      "empty ledger",
			entries:   nil,
			wantLimit: defaultEntriesLimit,
			wantCode:  http.StatusNoContent,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mock_handlers.NewMockWalletsService(ctrl)
			m.EXPECT().
				Entries(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), tc.wantLimit).
				Return(tc.entries, nil)

			handler := NewWalletEntriesHandler(m)
			rec := httptest.NewRecorder()

			target := "/"
			if tc.limitParam != "" {
				target = "/?limit=" + tc.limitParam
			}
			req, _ := http.NewRequestWithContext(
				authedContext(t, 10, false),
				http.MethodGet,
				target,
				nil,
			)
			req.SetPathValue("ownerType", "EVENT")
			req.SetPathValue("ownerID", "1")

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)

			if tc.wantCode == http.StatusOK {
				var resp []entryResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Len(t, resp, len(tc.entries))
			}
		})
	}
}
