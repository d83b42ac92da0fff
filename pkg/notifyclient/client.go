// Package notifyclient posts events to the notification service over HTTP.
package notifyclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	ServiceSource       = "material_service"
	EventMaterialCreate = "material_created"

	sendPath = "/notifications/send"
)

// Request mirrors the create payload of the notification service.
type Request struct {
	RecipientEmail string `json:"recipient_email"`
	Subject        string `json:"subject"`
	Message        string `json:"message"`
	Type           string `json:"notification_type"`
	ServiceSource  string `json:"service_source"`
	EventType      string `json:"event_type"`
}

// Client sends notifications to one notification service instance.
type Client struct {
	client     *resty.Client
	recipients []string
}

// New creates a client for the service at baseURL. Events are addressed to every recipient.
func New(baseURL string, recipients []string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json")

	if timeout > 0 {
		c.SetTimeout(timeout)
	}

	return &Client{client: c, recipients: recipients}
}

// MaterialCreated announces a new material to the configured recipients. It stops at the first
// failed request.
func (c *Client) MaterialCreated(ctx context.Context, id int64, title string) error {
	for _, to := range c.recipients {
		req := Request{
			RecipientEmail: to,
			Subject:        "New material: " + title,
			Message:        fmt.Sprintf("A new educational material %q (id %d) has been published.", title, id),
			Type:           "email",
			ServiceSource:  ServiceSource,
			EventType:      EventMaterialCreate,
		}

		if err := c.send(ctx, req); err != nil {
			return fmt.Errorf("notify %s: %w", to, err)
		}
	}

	return nil
}

func (c *Client) send(ctx context.Context, payload Request) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post(sendPath)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return fmt.Errorf("notification request failed with status %d: %s", resp.StatusCode(), resp.String())
	}

	return nil
}
