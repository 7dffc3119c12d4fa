package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	clientTimeout    = 5 * time.Second
	notificationsURL = "/api/v1/notifications"
)

// Client delivers queued notifications to the platform mail service. Only
// the outbox dispatcher talks to it, so a slow or dead mail service can at
// worst delay emails.
type Client struct {
	client *resty.Client
}

func NewClient(baseURL string) *Client {
	client := resty.New()

	client.
		SetTimeout(clientTimeout).
		SetRetryCount(2).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetBaseURL(baseURL)

	return &Client{client: client}
}

type deliverBody struct {
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

func (c *Client) Deliver(
	ctx context.Context,
	kind string,
	payload json.RawMessage,
) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(deliverBody{Kind: kind, Payload: payload}).
		Post(notificationsURL)
	if err != nil {
		return fmt.Errorf("mail service request: %w", err)
	}

	if resp.StatusCode() >= http.StatusMultipleChoices {
		return fmt.Errorf("mail service returned http %d", resp.StatusCode())
	}

	return nil
}
