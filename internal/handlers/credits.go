package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/apperr"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/checkout"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/render"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/respond"
)

// CreditLedger reads balances and packages. *store.CreditStore satisfies it.
type CreditLedger interface {
	Balance(ctx context.Context, userID uuid.UUID) (models.CreditBalance, error)
	Transactions(ctx context.Context, userID uuid.UUID, limit int) ([]models.CreditTransaction, error)
	Packages(ctx context.Context) ([]models.CreditPackage, error)
	FindPackage(ctx context.Context, id string) (*models.CreditPackage, error)
}

// CreditOrders opens credit purchase orders. *checkout.Service satisfies it.
type CreditOrders interface {
	CreateOrder(ctx context.Context, buyer checkout.Buyer, pkg models.CreditPackage) (*models.Order, string, error)
}

// Credits serves the AI credit balance and the credit checkout.
type Credits struct {
	renderer *render.Renderer
	ledger   CreditLedger
	orders   CreditOrders
}

// NewCredits creates the Credits handler group.
func NewCredits(renderer *render.Renderer, ledger CreditLedger, orders CreditOrders) *Credits {
	return &Credits{renderer: renderer, ledger: ledger, orders: orders}
}

type balanceResponse struct {
	Total     int  `json:"totalCredits"`
	Used      int  `json:"usedCredits"`
	Remaining int  `json:"remainingCredits"`
	CanUseAI  bool `json:"canUseAI"`
}

// Balance serves GET /api/credits.
func (c *Credits) Balance(w http.ResponseWriter, r *http.Request) {
	uid, err := requireUser(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	b, err := c.ledger.Balance(r.Context(), uid)
	if err != nil {
		respond.Error(w, r, apperr.Internal(err))
		return
	}
	respond.OK(w, balanceResponse{Total: b.Total, Used: b.Used, Remaining: b.Remaining(), CanUseAI: b.CanUseAI()})
}

// Transactions serves GET /api/credits/transactions, the 50 newest.
func (c *Credits) Transactions(w http.ResponseWriter, r *http.Request) {
	uid, err := requireUser(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	txs, err := c.ledger.Transactions(r.Context(), uid, 50)
	if err != nil {
		respond.Error(w, r, apperr.Internal(err))
		return
	}
	if txs == nil {
		txs = []models.CreditTransaction{}
	}
	respond.OK(w, map[string]any{"transactions": txs})
}

// Packages serves GET /api/credits/packages.
func (c *Credits) Packages(w http.ResponseWriter, r *http.Request) {
	pkgs, err := c.ledger.Packages(r.Context())
	if err != nil {
		respond.Error(w, r, apperr.Internal(err))
		return
	}
	out := make([]checkout.Summary, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, checkout.Summarize(p))
	}
	respond.OK(w, map[string]any{"packages": out})
}

func (c *Credits) findPackage(w http.ResponseWriter, r *http.Request, id string) *models.CreditPackage {
	if id == "" {
		statusPage(c.renderer, w, r, http.StatusNotFound, "notFound", "Paket bulunamadı.")
		return nil
	}
	pkg, err := c.ledger.FindPackage(r.Context(), id)
	if err != nil {
		slog.ErrorContext(r.Context(), "load credit package failed", "package", id, "error", err)
		statusPage(c.renderer, w, r, http.StatusInternalServerError, "error", "")
		return nil
	}
	if pkg == nil || !pkg.IsActive {
		statusPage(c.renderer, w, r, http.StatusNotFound, "notFound", "Paket bulunamadı.")
		return nil
	}
	return pkg
}

// CheckoutPage renders GET /credits/checkout?package={id}.
func (c *Credits) CheckoutPage(w http.ResponseWriter, r *http.Request) {
	pkg := c.findPackage(w, r, r.URL.Query().Get("package"))
	if pkg == nil {
		return
	}
	c.renderer.Page(w, r, "checkout", &render.PageData{
		Title: pkg.Name + " · Ödeme",
		Data:  map[string]any{"Summary": checkout.Summarize(*pkg)},
	})
}

// CheckoutSubmit handles POST /credits/checkout and sends the buyer to the
// payment page of the new order.
func (c *Credits) CheckoutSubmit(w http.ResponseWriter, r *http.Request) {
	uid, email, name, ok := buyer(r)
	if !ok {
		http.Redirect(w, r, "/giris?next=/credits/checkout", http.StatusSeeOther)
		return
	}
	pkg := c.findPackage(w, r, r.FormValue("package"))
	if pkg == nil {
		return
	}
	order, redirect, err := c.orders.CreateOrder(r.Context(), checkout.Buyer{ID: uid, Email: email, Name: name}, *pkg)
	if err != nil {
		slog.ErrorContext(r.Context(), "create credit order failed", "package", pkg.ID, "error", err)
		statusPage(c.renderer, w, r, http.StatusInternalServerError, "error", "Sipariş oluşturulamadı.")
		return
	}
	slog.InfoContext(r.Context(), "credit order created", "order_id", order.ID, "package", pkg.ID)
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}
