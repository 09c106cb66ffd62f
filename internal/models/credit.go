package models

import (
	"time"

	"github.com/google/uuid"
)

// CreditPackage is a purchasable bundle of AI generation credits.
type CreditPackage struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Subtitle   string `json:"subtitle"`
	Credits    int    `json:"credits"`
	PriceCents int64  `json:"price_cents"`
	IsPopular  bool   `json:"is_popular"`
	IsActive   bool   `json:"is_active"`
}

// CreditBalance is a user's AI credit account.
type CreditBalance struct {
	Total int `json:"totalCredits"`
	Used  int `json:"usedCredits"`
}

// Remaining returns the credits still available.
func (b CreditBalance) Remaining() int {
	if r := b.Total - b.Used; r > 0 {
		return r
	}
	return 0
}

// CanUseAI reports whether at least one credit is left.
func (b CreditBalance) CanUseAI() bool {
	return b.Remaining() > 0
}

// CreditKind classifies a credit transaction.
type CreditKind string

const (
	CreditBonus    CreditKind = "bonus"
	CreditPurchase CreditKind = "purchase"
	CreditUsage    CreditKind = "usage"
	CreditRefund   CreditKind = "refund"
)

// CreditTransaction is one ledger entry. Usage entries carry negative
// credits.
type CreditTransaction struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	Kind         CreditKind `json:"type"`
	Credits      int        `json:"credits"`
	Description  string     `json:"description"`
	OrderID      *uuid.UUID `json:"order_id,omitempty"`
	AITemplateID *uuid.UUID `json:"template_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
