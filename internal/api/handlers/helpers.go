package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"hangpay/internal/api/middleware"
	"hangpay/internal/auth"
	"hangpay/internal/model"
	"hangpay/internal/provider/flutterwave"
)

var validate = validator.New()

func identityFromContext(ctx context.Context) (auth.Identity, bool) {
	return middleware.IdentityFromContext(ctx)
}

// decodeJSON parses and validates a request body. It writes the error
// response itself and reports whether the caller may proceed.
func decodeJSON(w http.ResponseWriter, r *http.Request, data any) bool {
	if r.Header.Get("Content-Type") != "application/json" {
		slog.Error(
			"request with an empty or unsupported content type",
			slog.String("content_type", r.Header.Get("Content-Type")),
		)
		http.Error(w, "wrong content type", http.StatusUnsupportedMediaType)
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(data); err != nil {
		var mberr *http.MaxBytesError
		slog.Warn("invalid JSON", slog.Any("error", err))
		if errors.As(err, &mberr) {
			http.Error(
				w,
				"request body too large",
				http.StatusRequestEntityTooLarge,
			)
			return false
		}
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return false
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		slog.Warn("invalid JSON", slog.Any("error", err))
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return false
	}

	if err := validate.Struct(data); err != nil {
		slog.Warn("request validation failed", slog.Any("error", err))
		http.Error(w, "invalid request", http.StatusBadRequest)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		slog.Warn("failed to marshal json response", slog.Any("error", err))
		http.Error(
			w,
			http.StatusText(http.StatusInternalServerError),
			http.StatusInternalServerError,
		)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(b); err != nil {
		slog.Warn("failed to write response", slog.Any("error", err))
	}
}

// writeError maps domain errors to status codes with user-safe messages.
func writeError(w http.ResponseWriter, err error) {
	var apiErr *flutterwave.APIError

	switch {
	case errors.Is(err, model.ErrInvalidAmount),
		errors.Is(err, model.ErrUnknownOwnerType):
		http.Error(w, err.Error(), http.StatusBadRequest)

	case errors.Is(err, model.ErrNotAuthorized):
		http.Error(w, err.Error(), http.StatusForbidden)

	case errors.Is(err, model.ErrInsufficientBalance):
		http.Error(w, "insufficient balance", http.StatusPaymentRequired)

	case errors.Is(err, model.ErrWalletNotFound),
		errors.Is(err, model.ErrBankAccountNotFound),
		errors.Is(err, model.ErrWithdrawalNotFound),
		errors.Is(err, model.ErrEventNotFound),
		errors.Is(err, model.ErrGroupNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)

	case errors.Is(err, model.ErrAmountOutOfBounds),
		errors.Is(err, model.ErrFeeModeUnsupported):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)

	case errors.Is(err, model.ErrRateLimited):
		http.Error(w, err.Error(), http.StatusTooManyRequests)

	case errors.As(err, &apiErr):
		// The debit was reversed before this surfaced; the wallet is whole.
		http.Error(
			w,
			"withdrawal could not be completed, funds remain available",
			http.StatusBadGateway,
		)

	default:
		http.Error(
			w,
			http.StatusText(http.StatusInternalServerError),
			http.StatusInternalServerError,
		)
	}
}

// ownerFromRequest reads the wallet owner from /{ownerType}/{ownerID} path
// segments.
func ownerFromRequest(r *http.Request) (model.WalletOwner, error) {
	ownerType, err := model.ParseOwnerType(r.PathValue("ownerType"))
	if err != nil {
		return model.WalletOwner{}, err
	}

	ownerID, err := strconv.ParseInt(r.PathValue("ownerID"), 10, 64)
	if err != nil {
		return model.WalletOwner{}, fmt.Errorf(
			"invalid owner id: %w", model.ErrUnknownOwnerType,
		)
	}

	return model.WalletOwner{Type: ownerType, ID: ownerID}, nil
}
