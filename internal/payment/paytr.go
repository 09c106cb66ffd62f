// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package payment integrates the PayTR iframe API: it requests payment
// tokens, verifies the server-to-server callback and settles orders.
package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const tokenURL = "https://www.paytr.com/odeme/api/get-token"

// ErrNotConfigured is returned when merchant credentials are missing.
var ErrNotConfigured = errors.New("payment: PayTR is not configured")

// Config holds the merchant credentials issued by PayTR.
type Config struct {
	MerchantID   string
	MerchantKey  string
	MerchantSalt string
	OkURL        string
	FailURL      string
	TestMode     bool
	Currency     string
	Language     string
}

// Configured reports whether all credentials are present.
func (c Config) Configured() bool {
	return c.MerchantID != "" && c.MerchantKey != "" && c.MerchantSalt != ""
}

// BasketItem is one line of the basket shown on the payment page.
type BasketItem struct {
	Name     string
	Price    string
	Quantity int
}

// TokenRequest describes a payment to open.
type TokenRequest struct {
	Reference   string
	Email       string
	AmountCents int64
	UserName    string
	UserAddress string
	UserPhone   string
	UserIP      string
	Basket      []BasketItem
}

// Client talks to PayTR.
type Client struct {
	cfg      Config
	http     *http.Client
	endpoint string
}

// NewClient returns a Client. Token requests time out after 15 seconds.
func NewClient(cfg Config) *Client {
	if cfg.Currency == "" {
		cfg.Currency = "TL"
	}
	if cfg.Language == "" {
		cfg.Language = "tr"
	}
	return &Client{cfg: cfg, http: &http.Client{Timeout: 15 * time.Second}, endpoint: tokenURL}
}

// Configured reports whether the client can reach PayTR.
func (c *Client) Configured() bool { return c.cfg.Configured() }

func (c *Client) sign(s string) string {
	mac := hmac.New(sha256.New, []byte(c.cfg.MerchantKey))
	mac.Write([]byte(s))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func encodeBasket(items []BasketItem) (string, error) {
	rows := make([][]any, len(items))
	for i, it := range items {
		rows[i] = []any{it.Name, it.Price, it.Quantity}
	}
	b, err := json.Marshal(rows)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

func withReference(base, ref string) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "merchant_oid=" + url.QueryEscape(ref)
}

// Form builds the signed get-token form for req.
func (c *Client) Form(req TokenRequest) (url.Values, error) {
	basket, err := encodeBasket(req.Basket)
	if err != nil {
		return nil, fmt.Errorf("encode basket: %w", err)
	}
	amount := strconv.FormatInt(req.AmountCents, 10)
	test := "0"
	if c.cfg.TestMode {
		test = "1"
	}
	const noInstallment, maxInstallment = "0", "0"

	token := c.sign(c.cfg.MerchantID + req.UserIP + req.Reference + req.Email + amount +
		basket + noInstallment + maxInstallment + c.cfg.Currency + test + c.cfg.MerchantSalt)

	return url.Values{
		"merchant_id":       {c.cfg.MerchantID},
		"user_ip":           {req.UserIP},
		"merchant_oid":      {req.Reference},
		"email":             {req.Email},
		"payment_amount":    {amount},
		"paytr_token":       {token},
		"user_basket":       {basket},
		"debug_on":          {test},
		"no_installment":    {noInstallment},
		"max_installment":   {maxInstallment},
		"user_name":         {req.UserName},
		"user_address":      {req.UserAddress},
		"user_phone":        {req.UserPhone},
		"merchant_ok_url":   {withReference(c.cfg.OkURL, req.Reference)},
		"merchant_fail_url": {withReference(c.cfg.FailURL, req.Reference)},
		"timeout_limit":     {"30"},
		"currency":          {c.cfg.Currency},
		"test_mode":         {test},
		"lang":              {c.cfg.Language},
	}, nil
}

type tokenResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
	Reason string `json:"reason"`
}

// Token asks PayTR for an iframe token.
func (c *Client) Token(ctx context.Context, req TokenRequest) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}
	form, err := c.Form(req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("paytr token: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("paytr token: status %d", resp.StatusCode)
	}

	var out tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if out.Status != "success" || out.Token == "" {
		return "", fmt.Errorf("paytr token refused: %s", out.Reason)
	}
	return out.Token, nil
}

// Callback is the notification PayTR posts after a payment attempt.
type Callback struct {
	Reference    string
	Status       string
	TotalAmount  string
	Hash         string
	FailedCode   string
	FailedReason string
	TestMode     string
	PaymentType  string
}

// ParseCallback reads a callback form. It fails when a field needed for
// verification is missing.
func ParseCallback(form url.Values) (Callback, error) {
	cb := Callback{
		Reference:    form.Get("merchant_oid"),
		Status:       form.Get("status"),
		TotalAmount:  form.Get("total_amount"),
		Hash:         form.Get("hash"),
		FailedCode:   form.Get("failed_reason_code"),
		FailedReason: form.Get("failed_reason_msg"),
		TestMode:     form.Get("test_mode"),
		PaymentType:  form.Get("payment_type"),
	}
	if cb.Reference == "" || cb.Status == "" || cb.Hash == "" {
		return cb, errors.New("callback is missing merchant_oid, status or hash")
	}
	return cb, nil
}

// Succeeded reports whether the payment went through.
func (cb Callback) Succeeded() bool { return cb.Status == "success" }

// FailureMessage describes why a payment failed.
func (cb Callback) FailureMessage() string {
	switch {
	case cb.FailedReason != "":
		return cb.FailedReason
	case cb.FailedCode != "":
		return "Payment failed with code: " + cb.FailedCode
	default:
		return "Payment failed for unknown reason"
	}
}

// CallbackHash computes the signature PayTR attaches to a callback.
func (c *Client) CallbackHash(reference, status, totalAmount string) string {
	return c.sign(reference + c.cfg.MerchantSalt + status + totalAmount)
}

// Verify reports whether cb was signed with our merchant key.
func (c *Client) Verify(cb Callback) bool {
	if !c.Configured() {
		return false
	}
	want := c.CallbackHash(cb.Reference, cb.Status, cb.TotalAmount)
	return hmac.Equal([]byte(want), []byte(cb.Hash))
}
