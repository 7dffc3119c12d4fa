package flutterwave

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	ProviderName = "flutterwave"

	clientTimeout = 10 * time.Second

	transfersURL = "/v3/transfers"
)

// Transfer statuses reported by the provider.
const (
	StatusNew        = "NEW"
	StatusPending    = "PENDING"
	StatusSuccessful = "SUCCESSFUL"
	StatusFailed     = "FAILED"
)

var (
	// ErrOutcomeUnknown marks calls whose effect on the provider side is
	// undetermined: timeouts, transport failures and 5xx responses. The
	// transfer may or may not exist; only verification can tell.
	ErrOutcomeUnknown = errors.New("transfer outcome unknown")

	ErrTransferNotFound = errors.New("transfer not found")
)

// APIError is a definite rejection by the provider: the transfer was not
// created.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("flutterwave: %s (http %d)", e.Message, e.StatusCode)
}

type TransferRequest struct {
	Amount        int64
	BankCode      string
	AccountNumber string
	AccountName   string
	Reference     string
	Narration     string
	Currency      string
}

type Transfer struct {
	ID              int64  `json:"id"`
	Reference       string `json:"reference"`
	Status          string `json:"status"`
	Amount          int64  `json:"amount"`
	CompleteMessage string `json:"complete_message"`
	Narration       string `json:"narration"`
}

type apiEnvelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type createTransferBody struct {
	AccountBank   string `json:"account_bank"`
	AccountNumber string `json:"account_number"`
	Amount        int64  `json:"amount"`
	Narration     string `json:"narration"`
	Currency      string `json:"currency"`
	Reference     string `json:"reference"`
	Beneficiary   string `json:"beneficiary_name,omitempty"`
}

type Client struct {
	client *resty.Client
}

// NewClient builds the payout client. Requests are not auto-retried: the
// caller-supplied reference is the idempotency key, and retry decisions for
// an undetermined create belong to the reconciler, not the transport layer.
func NewClient(baseURL, secretKey string) *Client {
	client := resty.New()

	client.
		SetTimeout(clientTimeout).
		SetBaseURL(baseURL).
		SetAuthToken(secretKey)

	return &Client{client: client}
}

// CreateTransfer initiates a payout. A definite provider rejection comes
// back as *APIError; anything that leaves the outcome undetermined is
// wrapped in ErrOutcomeUnknown.
func (c *Client) CreateTransfer(
	ctx context.Context,
	req TransferRequest,
) (*Transfer, error) {
	body := createTransferBody{
		AccountBank:   req.BankCode,
		AccountNumber: req.AccountNumber,
		Amount:        req.Amount,
		Narration:     req.Narration,
		Currency:      req.Currency,
		Reference:     req.Reference,
		Beneficiary:   req.AccountName,
	}

	var envelope apiEnvelope
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&envelope).
		SetError(&envelope).
		Post(transfersURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutcomeUnknown, err)
	}

	return c.transferFromResponse(resp, &envelope)
}

// VerifyTransfer fetches the current state of a transfer by provider id.
func (c *Client) VerifyTransfer(ctx context.Context, id int64) (*Transfer, error) {
	var envelope apiEnvelope
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&envelope).
		SetError(&envelope).
		Get(fmt.Sprintf("%s/%d", transfersURL, id))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutcomeUnknown, err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return nil, ErrTransferNotFound
	}

	return c.transferFromResponse(resp, &envelope)
}

// TransferByReference looks a transfer up by the caller-supplied reference.
// ErrTransferNotFound means the provider never saw the reference, which is
// how an unconfirmed create is proven dead.
func (c *Client) TransferByReference(
	ctx context.Context,
	reference string,
) (*Transfer, error) {
	var envelope apiEnvelope
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("reference", reference).
		SetResult(&envelope).
		SetError(&envelope).
		Get(transfersURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutcomeUnknown, err)
	}

	if resp.StatusCode() >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: http %d", ErrOutcomeUnknown, resp.StatusCode())
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode(),
			Message:    envelope.Message,
		}
	}

	var transfers []Transfer
	if err := json.Unmarshal(envelope.Data, &transfers); err != nil {
		return nil, fmt.Errorf("decode transfers: %w", err)
	}
	if len(transfers) == 0 {
		return nil, ErrTransferNotFound
	}

	return &transfers[0], nil
}

func (c *Client) transferFromResponse(
	resp *resty.Response,
	envelope *apiEnvelope,
) (*Transfer, error) {
	sc := resp.StatusCode()
	switch {
	case sc >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: http %d", ErrOutcomeUnknown, sc)
	case sc >= http.StatusBadRequest || envelope.Status == "error":
		return nil, &APIError{StatusCode: sc, Message: envelope.Message}
	}

	var transfer Transfer
	if err := json.Unmarshal(envelope.Data, &transfer); err != nil {
		return nil, fmt.Errorf("decode transfer: %w", err)
	}

	return &transfer, nil
}

// TerminalStatus reports whether a provider status needs no further polling.
func TerminalStatus(status string) bool {
	return status == StatusSuccessful || status == StatusFailed
}

// WebhookPayload is the raw shape of a transfer webhook delivery.
type WebhookPayload struct {
	Event string `json:"event"`
	Data  struct {
		ID              int64  `json:"id"`
		Reference       string `json:"reference"`
		Status          string `json:"status"`
		CompleteMessage string `json:"complete_message"`
	} `json:"data"`
}

func (p *WebhookPayload) IsTransfer() bool {
	return p.Event == "transfer.completed"
}

// VerifyWebhookHash checks the verif-hash header against the configured
// secret hash in constant time.
func VerifyWebhookHash(got, want string) bool {
	if want == "" || got == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
