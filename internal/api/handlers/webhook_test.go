package handlers

import (
	"context"
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
	"hangpay/internal/service/withdrawals"
)

const webhookSecretHash = "secret-hash"

func TestFlutterwaveWebhookHandler(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	successBody := `{
		"event": "transfer.completed",
		"data": {"id": 123, "reference": "ref-1", "status": "SUCCESSFUL"}
	}`
	failedBody := `{
		"event": "transfer.completed",
		"data": {"id": 123, "reference": "ref-1", "status": "FAILED", "complete_message": "DISBURSE FAILED"}
	}`

	tests := []struct {
		name      string
		hash      string
		body      string
		svcErr    error
		wantCode  int
		wantEvent *withdrawals.TransferEvent
	}{
		{
			name:     "successful transfer",
			hash:     webhookSecretHash,
			body:     successBody,
			wantCode: http.StatusOK,
			wantEvent: &withdrawals.TransferEvent{
				OK:         true,
				Reference:  "ref-1",
				TransferID: 123,
				Status:     "SUCCESSFUL",
			},
		},
		{
			name:     "failed transfer carries the reason",
			hash:     webhookSecretHash,
			body:     failedBody,
			wantCode: http.StatusOK,
			wantEvent: &withdrawals.TransferEvent{
				OK:            false,
				Reference:     "ref-1",
				TransferID:    123,
				Status:        "FAILED",
				FailureReason: "DISBURSE FAILED",
			},
		},
		{
			name:     "missing hash rejected",
			hash:     "",
			body:     successBody,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "wrong hash rejected",
			hash:     "not-the-hash",
			body:     successBody,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "non-transfer event acked and ignored",
			hash:     webhookSecretHash,
			body:     `{"event": "charge.completed", "data": {"id": 1}}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "malformed payload",
			hash:     webhookSecretHash,
			body:     `{"event":`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown reference acked so the provider stops retrying",
			hash:     webhookSecretHash,
			body:     successBody,
			svcErr:   model.ErrWithdrawalNotFound,
			wantCode: http.StatusOK,
			wantEvent: &withdrawals.TransferEvent{
				OK:         true,
				Reference:  "ref-1",
				TransferID: 123,
				Status:     "SUCCESSFUL",
			},
		},
		{
			name:     "internal error asks for redelivery",
			hash:     webhookSecretHash,
			body:     successBody,
			svcErr:   errors.New("db error"),
			wantCode: http.StatusInternalServerError,
			wantEvent: &withdrawals.TransferEvent{
				OK:         true,
				Reference:  "ref-1",
				TransferID: 123,
				Status:     "SUCCESSFUL",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mock_handlers.NewMockTransferFinalizer(ctrl)
			if tc.wantEvent != nil {
				m.EXPECT().
					HandleTransferEvent(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, ev withdrawals.TransferEvent) error {
						assert.Equal(t, tc.wantEvent.OK, ev.OK)
						assert.Equal(t, tc.wantEvent.Reference, ev.Reference)
						assert.Equal(t, tc.wantEvent.TransferID, ev.TransferID)
						assert.Equal(t, tc.wantEvent.Status, ev.Status)
						assert.Equal(t, tc.wantEvent.FailureReason, ev.FailureReason)
						return tc.svcErr
					})
			}

			handler := NewFlutterwaveWebhookHandler(m, webhookSecretHash)
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(
				http.MethodPost,
				"/api/webhooks/flutterwave",
				strings.NewReader(tc.body),
			)
			if tc.hash != "" {
				req.Header.Set("verif-hash", tc.hash)
			}

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}
