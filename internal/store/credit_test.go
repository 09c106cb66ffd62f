package store

import (
	"context"
	"errors"
	"testing"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
)

func TestCreditStoreStarterAndUsage(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	user := testUser(t, db, "test-credits@store-test.local")
	s := NewCreditStore(db)

	b, err := s.Balance(ctx, user.ID)
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if b.Total != StarterCredits || b.Used != 0 {
		t.Errorf("starter balance: got %+v", b)
	}

	// Reading again must not grant a second bonus.
	b, _ = s.Balance(ctx, user.ID)
	if b.Total != StarterCredits {
		t.Errorf("second Balance granted more credits: %+v", b)
	}

	b, err = s.UseCredit(ctx, user.ID, nil, "AI şablon üretimi")
	if err != nil {
		t.Fatalf("UseCredit: %v", err)
	}
	if b.Remaining() != 0 {
		t.Errorf("remaining: got %d, want 0", b.Remaining())
	}
	if _, err := s.UseCredit(ctx, user.ID, nil, "AI şablon üretimi"); !errors.Is(err, ErrNoCredits) {
		t.Errorf("UseCredit on empty balance: got %v, want ErrNoCredits", err)
	}

	b, err = s.AddCredits(ctx, user.ID, 10, "10 Kredi paketi", nil)
	if err != nil {
		t.Fatalf("AddCredits: %v", err)
	}
	if b.Remaining() != 10 {
		t.Errorf("after purchase: got %d remaining, want 10", b.Remaining())
	}

	txs, err := s.Transactions(ctx, user.ID, 10)
	if err != nil {
		t.Fatalf("Transactions: %v", err)
	}
	kinds := map[models.CreditKind]int{}
	for _, tx := range txs {
		kinds[tx.Kind]++
	}
	if kinds[models.CreditBonus] != 1 || kinds[models.CreditUsage] != 1 || kinds[models.CreditPurchase] != 1 {
		t.Errorf("transaction kinds: %v", kinds)
	}
}

func TestCreditStorePackages(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	s := NewCreditStore(db)

	pkg := models.CreditPackage{ID: "store-test-pkg", Name: "Test", Credits: 3, PriceCents: 4990, IsActive: true}
	t.Cleanup(func() { db.Exec("DELETE FROM credit_packages WHERE id = $1", pkg.ID) })

	if err := s.UpsertPackage(ctx, pkg); err != nil {
		t.Fatalf("UpsertPackage: %v", err)
	}
	got, err := s.FindPackage(ctx, pkg.ID)
	if err != nil || got == nil {
		t.Fatalf("FindPackage: %v, %v", got, err)
	}
	if got.PriceCents != 4990 || got.Credits != 3 {
		t.Errorf("package: got %+v", got)
	}

	missing, err := s.FindPackage(ctx, "no-such-package")
	if err != nil || missing != nil {
		t.Errorf("FindPackage missing: %v, %v", missing, err)
	}
}

func TestCreditStoreAddCreditsOncePerOrder(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	user := testUser(t, db, "test-credit-order@store-test.local")
	s := NewCreditStore(db)

	o, err := NewOrderStore(db).Create(ctx, &models.Order{
		ShortID:          "CREDtst1",
		Type:             models.OrderCreditPurchase,
		UserID:           uuidPtr(user.ID),
		BuyerEmail:       user.Email,
		TotalCents:       11988,
		PaymentReference: "CREDtst1",
	})
	if err != nil {
		t.Fatalf("Create order: %v", err)
	}

	b, err := s.AddCredits(ctx, user.ID, 10, "10 Kredi paketi", &o.ID)
	if err != nil {
		t.Fatalf("AddCredits: %v", err)
	}
	if b.Total != 10 {
		t.Errorf("first grant: got total %d, want 10", b.Total)
	}

	// A second grant for the same order changes nothing.
	b, err = s.AddCredits(ctx, user.ID, 10, "10 Kredi paketi", &o.ID)
	if err != nil {
		t.Fatalf("AddCredits again: %v", err)
	}
	if b.Total != 10 {
		t.Errorf("repeated grant: got total %d, want 10", b.Total)
	}

	txs, err := s.Transactions(ctx, user.ID, 10)
	if err != nil {
		t.Fatalf("Transactions: %v", err)
	}
	purchases := 0
	for _, tx := range txs {
		if tx.Kind == models.CreditPurchase {
			purchases++
		}
	}
	if purchases != 1 {
		t.Errorf("purchase transactions: got %d, want 1", purchases)
	}
}

func TestCreditStoreRefundCredit(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	user := testUser(t, db, "test-credit-refund@store-test.local")
	s := NewCreditStore(db)

	if _, err := s.RefundCredit(ctx, user.ID, "iade"); err == nil {
		t.Error("refund without usage should fail")
	}

	if _, err := s.UseCredit(ctx, user.ID, nil, "AI template oluşturma"); err != nil {
		t.Fatalf("UseCredit: %v", err)
	}
	b, err := s.RefundCredit(ctx, user.ID, "AI template oluşturma iadesi")
	if err != nil {
		t.Fatalf("RefundCredit: %v", err)
	}
	if b.Used != 0 || b.Remaining() != StarterCredits {
		t.Errorf("after refund: got %+v", b)
	}

	txs, err := s.Transactions(ctx, user.ID, 10)
	if err != nil {
		t.Fatalf("Transactions: %v", err)
	}
	if len(txs) == 0 || txs[0].Kind != models.CreditRefund || txs[0].Credits != 1 {
		t.Errorf("latest transaction: %+v", txs)
	}
}
