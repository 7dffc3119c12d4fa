package flutterwave

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, "FLWSECK_TEST"), srv
}

func TestCreateTransfer(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	req := TransferRequest{
		Amount:        95_000,
		BankCode:      "044",
		AccountNumber: "0690000040",
		AccountName:   "Jane Doe",
		Reference:     "ref-1",
		Narration:     "hangpay payout EVENT/1",
		Currency:      "NGN",
	}

	t.Run("success", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v3/transfers", r.URL.Path)
			assert.Equal(t, "Bearer FLWSECK_TEST", r.Header.Get("Authorization"))

			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "ref-1", body["reference"])
			assert.Equal(t, "044", body["account_bank"])

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"status": "success",
				"message": "Transfer Queued Successfully",
				"data": {"id": 123, "reference": "ref-1", "status": "NEW", "amount": 95000}
			}`))
		})
		defer srv.Close()

		transfer, err := client.CreateTransfer(t.Context(), req)
		assert.NoError(t, err)
		assert.Equal(t, int64(123), transfer.ID)
		assert.Equal(t, StatusNew, transfer.Status)
	})

	t.Run("definite rejection", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{
				"status": "error",
				"message": "insufficient balance in payout wallet"
			}`))
		})
		defer srv.Close()

		_, err := client.CreateTransfer(t.Context(), req)

		var apiErr *APIError
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.NotErrorIs(t, err, ErrOutcomeUnknown)
	})

	t.Run("application-level error with http 200", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status": "error", "message": "disabled for merchant"}`))
		})
		defer srv.Close()

		_, err := client.CreateTransfer(t.Context(), req)

		var apiErr *APIError
		assert.ErrorAs(t, err, &apiErr)
	})

	t.Run("5xx leaves the outcome unknown", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		defer srv.Close()

		_, err := client.CreateTransfer(t.Context(), req)
		assert.ErrorIs(t, err, ErrOutcomeUnknown)
	})

	t.Run("transport failure leaves the outcome unknown", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {})
		srv.Close() // refuse connections

		_, err := client.CreateTransfer(t.Context(), req)
		assert.ErrorIs(t, err, ErrOutcomeUnknown)
	})
}

func TestVerifyTransfer(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	t.Run("found", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v3/transfers/123", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"status": "success",
				"data": {"id": 123, "reference": "ref-1", "status": "SUCCESSFUL"}
			}`))
		})
		defer srv.Close()

		transfer, err := client.VerifyTransfer(t.Context(), 123)
		assert.NoError(t, err)
		assert.Equal(t, StatusSuccessful, transfer.Status)
	})

	t.Run("not found", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		defer srv.Close()

		_, err := client.VerifyTransfer(t.Context(), 999)
		assert.ErrorIs(t, err, ErrTransferNotFound)
	})
}

func TestTransferByReference(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	t.Run("found", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "ref-1", r.URL.Query().Get("reference"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"status": "success",
				"data": [{"id": 123, "reference": "ref-1", "status": "FAILED", "complete_message": "DISBURSE FAILED"}]
			}`))
		})
		defer srv.Close()

		transfer, err := client.TransferByReference(t.Context(), "ref-1")
		assert.NoError(t, err)
		assert.Equal(t, int64(123), transfer.ID)
		assert.Equal(t, StatusFailed, transfer.Status)
		assert.Equal(t, "DISBURSE FAILED", transfer.CompleteMessage)
	})

	t.Run("empty list means never created", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status": "success", "data": []}`))
		})
		defer srv.Close()

		_, err := client.TransferByReference(t.Context(), "ref-lost")
		assert.ErrorIs(t, err, ErrTransferNotFound)
	})

	t.Run("5xx leaves the outcome unknown", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
		defer srv.Close()

		_, err := client.TransferByReference(t.Context(), "ref-1")
		assert.ErrorIs(t, err, ErrOutcomeUnknown)
		assert.False(t, errors.Is(err, ErrTransferNotFound))
	})
}

func TestTerminalStatus(t *testing.T) {
	assert.True(t, TerminalStatus(StatusSuccessful))
	assert.True(t, TerminalStatus(StatusFailed))
	assert.False(t, TerminalStatus(StatusNew))
	assert.False(t, TerminalStatus(StatusPending))
}

func TestVerifyWebhookHash(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
		ok   bool
	}{
		{name: "match", got: "secret-hash", want: "secret-hash", ok: true},
		{name: "mismatch", got: "wrong", want: "secret-hash", ok: false},
		{name: "missing header", got: "", want: "secret-hash", ok: false},
		{name: "unconfigured secret rejects everything", got: "x", want: "", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, VerifyWebhookHash(tc.got, tc.want))
		})
	}
}

func TestWebhookPayload_IsTransfer(t *testing.T) {
	p := WebhookPayload{Event: "transfer.completed"}
	assert.True(t, p.IsTransfer())

	p.Event = "charge.completed"
	assert.False(t, p.IsTransfer())
}
