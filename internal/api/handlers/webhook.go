package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"hangpay/internal/model"
	"hangpay/internal/provider/flutterwave"
	"hangpay/internal/service/withdrawals"
)

//go:generate mockgen -package mocks -destination ./mocks/finalizer_mock.go . TransferFinalizer
type TransferFinalizer interface {
	HandleTransferEvent(ctx context.Context, ev withdrawals.TransferEvent) error
}

// NewFlutterwaveWebhookHandler is the provider callback ingress. Deliveries
// are acked with 200 whenever re-delivery cannot help (non-transfer events,
// unknown references); the provider retries anything else.
func NewFlutterwaveWebhookHandler(
	svc TransferFinalizer,
	secretHash string,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !flutterwave.VerifyWebhookHash(r.Header.Get("verif-hash"), secretHash) {
			slog.Warn("webhook with missing or invalid verif-hash")
			http.Error(
				w,
				http.StatusText(http.StatusUnauthorized),
				http.StatusUnauthorized,
			)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
		defer func() { _ = r.Body.Close() }()

		body, err := io.ReadAll(r.Body)
		if err != nil {
			slog.Error("failed to read webhook body", slog.Any("error", err))
			http.Error(w, "invalid payload", http.StatusBadRequest)
			return
		}

		var payload flutterwave.WebhookPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			slog.Error("failed to parse webhook payload", slog.Any("error", err))
			http.Error(w, "invalid payload", http.StatusBadRequest)
			return
		}

		if !payload.IsTransfer() {
			slog.Debug(
				"ignoring non-transfer webhook event",
				slog.String("event", payload.Event),
			)
			w.WriteHeader(http.StatusOK)
			return
		}

		ev := withdrawals.TransferEvent{
			OK:         payload.Data.Status == flutterwave.StatusSuccessful,
			Provider:   flutterwave.ProviderName,
			Type:       "transfer",
			Reference:  payload.Data.Reference,
			TransferID: payload.Data.ID,
			Status:     payload.Data.Status,
			Raw:        body,
		}
		if !ev.OK {
			ev.FailureReason = payload.Data.CompleteMessage
		}

		if err := svc.HandleTransferEvent(r.Context(), ev); err != nil {
			if errors.Is(err, model.ErrWithdrawalNotFound) {
				slog.Warn(
					"webhook for unknown withdrawal reference",
					slog.String("reference", ev.Reference),
				)
				w.WriteHeader(http.StatusOK)
				return
			}

			slog.Error(
				"failed to handle transfer event",
				slog.String("reference", ev.Reference),
				slog.Any("error", err),
			)
			http.Error(
				w,
				http.StatusText(http.StatusInternalServerError),
				http.StatusInternalServerError,
			)
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}
