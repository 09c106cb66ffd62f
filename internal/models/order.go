// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/fields"
)

// OrderStatus tracks an order through payment.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderFailed    OrderStatus = "failed"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderType distinguishes greeting-page purchases from AI credit purchases.
type OrderType string

const (
	OrderPersonalPage   OrderType = "personal_page"
	OrderCreditPurchase OrderType = "credit_purchase"
)

// Order is a purchase. Amounts are kept in kuruş to avoid float rounding.
type Order struct {
	ID               uuid.UUID   `json:"id"`
	ShortID          string      `json:"short_id"`
	Type             OrderType   `json:"order_type"`
	TemplateID       *uuid.UUID  `json:"template_id,omitempty"`
	AITemplateID     *uuid.UUID  `json:"ai_template_id,omitempty"`
	UserID           *uuid.UUID  `json:"user_id,omitempty"`
	BuyerEmail       string      `json:"buyer_email"`
	RecipientName    string      `json:"recipient_name"`
	SenderName       string      `json:"sender_name"`
	Message          string      `json:"message"`
	SpecialDate      *time.Time  `json:"special_date,omitempty"`
	DesignStyle      string      `json:"design_style"`
	TextFields       fields.Map  `json:"text_fields"`
	DurationHours    int         `json:"duration_hours"`
	ExpiresAt        *time.Time  `json:"expires_at,omitempty"`
	TotalCents       int64       `json:"total_cents"`
	Status           OrderStatus `json:"status"`
	PaymentProvider  string      `json:"payment_provider"`
	PaymentReference string      `json:"payment_reference"`
	PaidAt           *time.Time  `json:"paid_at,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// IsCreditPurchase reports whether completing the order adds AI credits.
func (o *Order) IsCreditPurchase() bool {
	return o.Type == OrderCreditPurchase
}
