package models

import (
	"testing"
	"time"
)

func TestCreditBalanceRemaining(t *testing.T) {
	tests := []struct {
		name    string
		balance CreditBalance
		want    int
		canUse  bool
	}{
		{name: "fresh starter credit", balance: CreditBalance{Total: 1}, want: 1, canUse: true},
		{name: "all used", balance: CreditBalance{Total: 10, Used: 10}, want: 0, canUse: false},
		{name: "partially used", balance: CreditBalance{Total: 30, Used: 4}, want: 26, canUse: true},
		{name: "overdrawn clamps to zero", balance: CreditBalance{Total: 1, Used: 3}, want: 0, canUse: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.balance.Remaining(); got != tt.want {
				t.Errorf("Remaining() = %d, want %d", got, tt.want)
			}
			if got := tt.balance.CanUseAI(); got != tt.canUse {
				t.Errorf("CanUseAI() = %v, want %v", got, tt.canUse)
			}
		})
	}
}

func TestPersonalPageExpiredAt(t *testing.T) {
	exp := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	p := &PersonalPage{ExpiresAt: exp}

	if p.ExpiredAt(exp.Add(-time.Second)) {
		t.Error("page should be live one second before expiry")
	}
	if !p.ExpiredAt(exp) {
		t.Error("page should be expired at the exact expiry instant")
	}
	if !p.ExpiredAt(exp.Add(time.Second)) {
		t.Error("page should be expired one second after expiry")
	}
}

func TestOrderIsCreditPurchase(t *testing.T) {
	if (&Order{Type: OrderPersonalPage}).IsCreditPurchase() {
		t.Error("personal page order reported as credit purchase")
	}
	if !(&Order{Type: OrderCreditPurchase}).IsCreditPurchase() {
		t.Error("credit order not detected")
	}
}
