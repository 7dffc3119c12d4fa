package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_handlers "hangpay/internal/api/handlers/mocks"
	"hangpay/internal/model"
	"hangpay/internal/service/wallets"
)

func TestAdjustmentHandler(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	tests := []struct {
		name       string
		body       string
		svcResult  *wallets.AdjustmentResult
		svcErr     error
		authUserID int64
		wantCode   int
	}{
		{
			name: "success",
			body: `{"owner_type":"EVENT","owner_id":1,"amount":5000,"reason":"support credit"}`,
			svcResult: &wallets.AdjustmentResult{
				BalanceBefore: 3_000,
				BalanceAfter:  8_000,
			},
			authUserID: 1,
			wantCode:   http.StatusOK,
		},
		{
			name:       "fail unauthenticated",
			body:       `{"owner_type":"EVENT","owner_id":1,"amount":5000,"reason":"x"}`,
			authUserID: 0,
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "fail missing reason",
			body:       `{"owner_type":"EVENT","owner_id":1,"amount":5000}`,
			authUserID: 1,
			wantCode:   http.StatusBadRequest,
		},
		{
			name:       "fail unknown owner type",
			body:       `{"owner_type":"TEAM","owner_id":1,"amount":5000,"reason":"x"}`,
			authUserID: 1,
			wantCode:   http.StatusBadRequest,
		},
		{
			name:       "fail negative adjustment overdraws",
			body:       `{"owner_type":"EVENT","owner_id":1,"amount":-5000,"reason":"clawback"}`,
			svcErr:     model.ErrInsufficientBalance,
			authUserID: 1,
			wantCode:   http.StatusPaymentRequired,
		},
		{
			name:       "fail internal",
			body:       `{"owner_type":"EVENT","owner_id":1,"amount":5000,"reason":"x"}`,
			svcErr:     errors.New("db error"),
			authUserID: 1,
			wantCode:   http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mock_handlers.NewMockAdminService(ctrl)
			m.EXPECT().
				Adjust(gomock.Any(), gomock.Any()).
				Return(tc.svcResult, tc.svcErr).
				AnyTimes()

			handler := NewAdjustmentHandler(m)
			rec := httptest.NewRecorder()

			ctx := t.Context()
			if tc.authUserID != 0 {
				ctx = authedContext(t, tc.authUserID, true)
			}

			req, _ := http.NewRequestWithContext(
				ctx,
				http.MethodPost,
				"/",
				strings.NewReader(tc.body),
			)
			req.Header.Set("Content-Type", "application/json")

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)

			if tc.wantCode == http.StatusOK {
				var resp adjustmentResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, model.Amount(8_000), resp.BalanceAfter)
			}
		})
	}
}

func TestTicketEntryHandlers(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	body := `{"owner_type":"EVENT","owner_id":1,"amount":15000,"ticket_id":42,"buyer_id":7}`

	t.Run("sale success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := mock_handlers.NewMockAdminService(ctrl)
		m.EXPECT().
			RecordTicketSale(gomock.Any(), gomock.Any()).
			Return(&model.LedgerEntry{ID: 1, BalanceAfter: 15_000}, nil)

		handler := NewTicketSaleHandler(m)
		rec := httptest.NewRecorder()
		req, _ := http.NewRequestWithContext(
			authedContext(t, 1, true),
			http.MethodPost,
			"/",
			strings.NewReader(body),
		)
		req.Header.Set("Content-Type", "application/json")

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("refund overdraw", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := mock_handlers.NewMockAdminService(ctrl)
		m.EXPECT().
			RecordTicketRefund(gomock.Any(), gomock.Any()).
			Return(nil, model.ErrInsufficientBalance)

		handler := NewTicketRefundHandler(m)
		rec := httptest.NewRecorder()
		req, _ := http.NewRequestWithContext(
			authedContext(t, 1, true),
			http.MethodPost,
			"/",
			strings.NewReader(body),
		)
		req.Header.Set("Content-Type", "application/json")

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	})

	t.Run("missing ticket id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := mock_handlers.NewMockAdminService(ctrl)

		handler := NewTicketSaleHandler(m)
		rec := httptest.NewRecorder()
		req, _ := http.NewRequestWithContext(
			authedContext(t, 1, true),
			http.MethodPost,
			"/",
			strings.NewReader(`{"owner_type":"EVENT","owner_id":1,"amount":15000}`),
		)
		req.Header.Set("Content-Type", "application/json")

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
