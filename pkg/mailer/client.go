package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync/atomic"

	"github.com/resend/resend-go/v2"

	"github.com/hauts/exhibition/pkg/models"
)

// package-level logger for pkg/mailer; can be replaced by callers
var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// SetLogger sets the logger used by pkg/mailer. Passing nil is a no-op.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// Client wraps the Resend API client. Each Send is a single attempt with a
// bounded timeout; there is no retry and no delivery guarantee beyond the
// provider accepting the request.
type Client struct {
	api    *resend.Client
	cfg    Config
	client *http.Client

	closed int32 // atomic flag for Close()
}

// NewClient creates a new Resend client wrapper.
func NewClient(cfg Config, httpClient *http.Client) (*Client, error) {
	if cfg.From == "" || cfg.To == "" {
		return nil, fmt.Errorf("mailer: from and to addresses are required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	c := &Client{
		api:    resend.NewCustomClient(httpClient, cfg.APIKey),
		cfg:    cfg,
		client: httpClient,
	}
	if cfg.APIKey == "" {
		logger.Warn("mailer: no API key configured, every send will fail")
	}

	return c, nil
}

// Send relays one contact message as a plain-text email. The provider
// acknowledging the request does not guarantee inbox delivery.
func (c *Client) Send(ctx context.Context, msg models.ContactMessage) error {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	sent, err := c.api.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    c.cfg.From,
		To:      []string{c.cfg.To},
		Subject: Subject(msg),
		Text:    Body(msg),
	})
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	logger.Info("mailer: email accepted", slog.String("id", sent.Id))
	return nil
}

// Subject builds the subject line for a relayed contact message.
func Subject(msg models.ContactMessage) string {
	return fmt.Sprintf("New message from %s", msg.Name)
}

// Body builds the plain-text body for a relayed contact message.
func Body(msg models.ContactMessage) string {
	return fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", msg.Name, msg.Email, msg.Message)
}

// Close releases any resources held by the client. Currently this will close
// idle connections on the underlying HTTP transport when supported. Close is
// idempotent and safe to call multiple times.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	// ensure we only run close once
	if !atomic.CompareAndSwapInt32(&c.closed, 0, 1) {
		return nil
	}
	if c.client != nil && c.client.Transport != nil {
		if tr, ok := c.client.Transport.(interface{ CloseIdleConnections() }); ok {
			tr.CloseIdleConnections()
		}
	}
	return nil
}
