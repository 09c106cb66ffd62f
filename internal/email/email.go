// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package email sends the transactional emails (welcome, order and payment
// notices, recipient activity) through Resend. A Client is built
// explicitly from Config; without an API key every send is skipped.
package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/resend/resend-go/v3"
	"golang.org/x/time/rate"
)

// ErrNotConfigured is returned by Send when no API key is set.
var ErrNotConfigured = errors.New("email service not configured")

// ErrUnknownKind is returned for a kind outside Kinds.
var ErrUnknownKind = errors.New("email: unknown kind")

// Config holds the sender identity and credentials.
type Config struct {
	APIKey  string
	From    string
	ReplyTo string
	SiteURL string
}

// Sender delivers one prepared message and returns the provider id.
type Sender interface {
	Send(ctx context.Context, req *resend.SendEmailRequest) (string, error)
}

type resendSender struct {
	client *resend.Client
}

func (s resendSender) Send(ctx context.Context, req *resend.SendEmailRequest) (string, error) {
	sent, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return "", err
	}
	return sent.Id, nil
}

// Client renders and sends emails. Safe for concurrent use.
type Client struct {
	cfg     Config
	sender  Sender
	limiter *rate.Limiter
	log     *slog.Logger
}

// New builds a Client backed by Resend. An empty APIKey yields a client
// whose sends return ErrNotConfigured.
func New(cfg Config, log *slog.Logger) *Client {
	var s Sender
	if cfg.APIKey != "" {
		s = resendSender{client: resend.NewClient(cfg.APIKey)}
	}
	return NewWithSender(cfg, s, log)
}

// NewWithSender builds a Client around an arbitrary Sender.
func NewWithSender(cfg Config, s Sender, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	cfg.SiteURL = strings.TrimRight(cfg.SiteURL, "/")
	return &Client{
		cfg:    cfg,
		sender: s,
		// Resend accepts two requests per second per key.
		limiter: rate.NewLimiter(rate.Limit(2), 1),
		log:     log.With("component", "email"),
	}
}

// Configured reports whether sends reach the provider.
func (c *Client) Configured() bool { return c.sender != nil }

// Send validates data for kind, renders the message and delivers it.
func (c *Client) Send(ctx context.Context, kind Kind, to string, data Data) (string, error) {
	spec, ok := kinds[kind]
	if !ok {
		return "", ErrUnknownKind
	}
	to = strings.TrimSpace(to)
	if to == "" {
		return "", &DataError{Message: "Email tipi ve alıcı adresi gerekli."}
	}
	if err := spec.check(data); err != nil {
		return "", err
	}

	if c.sender == nil {
		c.log.WarnContext(ctx, "RESEND_API_KEY not configured, skipping email send", "kind", kind)
		return "", ErrNotConfigured
	}

	vars := data.withDefaults(c.cfg.SiteURL)
	var body bytes.Buffer
	if err := spec.body.Execute(&body, vars); err != nil {
		return "", fmt.Errorf("render %s email: %w", kind, err)
	}

	req := &resend.SendEmailRequest{
		From:    c.cfg.From,
		To:      []string{to},
		Subject: spec.subject(vars),
		Html:    body.String(),
	}
	if c.cfg.ReplyTo != "" {
		req.ReplyTo = c.cfg.ReplyTo
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}
	id, err := c.sender.Send(ctx, req)
	if err != nil {
		c.log.ErrorContext(ctx, "email send failed", "kind", kind, "error", err)
		return "", fmt.Errorf("send %s email: %w", kind, err)
	}
	c.log.InfoContext(ctx, "email sent", "kind", kind, "id", id)
	return id, nil
}

// PaymentSuccess tells the buyer where their page lives.
func (c *Client) PaymentSuccess(ctx context.Context, to, orderID, templateTitle string, amount float64, pageURL string) error {
	_, err := c.Send(ctx, KindPaymentSuccess, to, Data{
		"orderId":         orderID,
		"templateTitle":   templateTitle,
		"amount":          amount,
		"personalPageUrl": pageURL,
	})
	return err
}

// PaymentFailed tells the buyer the payment did not go through.
func (c *Client) PaymentFailed(ctx context.Context, to, orderID, templateTitle string) error {
	_, err := c.Send(ctx, KindPaymentFailed, to, Data{
		"orderId":       orderID,
		"templateTitle": templateTitle,
	})
	return err
}
