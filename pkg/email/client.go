// Package email sends notification emails over SMTP.
//
// A Client is built once from SMTP settings and reused for every message. Missing credentials are
// reported by NewClient; delivery problems are returned by Send and never panic.
package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"gopkg.in/mail.v2"
)

// ErrNotConfigured is returned by NewClient when required SMTP settings are missing.
var ErrNotConfigured = errors.New("smtp not configured")

// Config holds SMTP connection settings.
type Config struct {
	Host          string
	Port          int
	Username      string
	Password      string
	From          string
	SkipTLSVerify bool          // dev only
	Timeout       time.Duration // read/write timeout of one SMTP session
}

// Message is a single email. HTML is derived from Text when empty.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

type sender interface {
	DialAndSend(m ...*mail.Message) error
}

// Client represents an SMTP client used to send notifications.
type Client struct {
	sender sender
	from   string
}

// NewClient creates a new Client. Host, username and password are required.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Host == "" || cfg.Username == "" || cfg.Password == "" {
		return nil, fmt.Errorf("%w: host, username and password must be set", ErrNotConfigured)
	}

	from := cfg.From
	if from == "" {
		from = cfg.Username
	}

	dialer := mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	dialer.StartTLSPolicy = mail.MandatoryStartTLS
	dialer.TLSConfig = &tls.Config{
		ServerName:         cfg.Host,
		InsecureSkipVerify: cfg.SkipTLSVerify,
	}
	if cfg.Timeout > 0 {
		dialer.Timeout = cfg.Timeout
	}

	return &Client{sender: dialer, from: from}, nil
}

// Send delivers msg. It returns when the SMTP session finishes or ctx is done, whichever comes first.
func (c *Client) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := mail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)

	body := msg.HTML
	if body == "" {
		body = PlainToHTML(msg.Text)
	}
	m.AddAlternative("text/html", body)

	done := make(chan error, 1)
	go func() {
		done <- c.sender.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("send email: %w", ctx.Err())
	}
}

// PlainToHTML wraps an escaped plain text body into a minimal HTML document.
func PlainToHTML(text string) string {
	return "<html><body><p>" + escapeLines(text) + "</p></body></html>"
}

func escapeLines(text string) string {
	return strings.ReplaceAll(html.EscapeString(text), "\n", "<br>")
}
