package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
)

// ErrBadSignature is returned for callbacks that fail verification.
var ErrBadSignature = errors.New("payment: callback signature mismatch")

// Orders settles orders by payment reference.
type Orders interface {
	FindByReference(ctx context.Context, ref string) (*models.Order, error)
	MarkCompleted(ctx context.Context, ref string) (*models.Order, error)
	MarkFailed(ctx context.Context, ref string) error
}

// Pages creates the personal page a paid order unlocks.
type Pages interface {
	FindByOrder(ctx context.Context, orderID uuid.UUID) (*models.PersonalPage, error)
	CreateFromOrder(ctx context.Context, o *models.Order, bgAudioURL *string) (*models.PersonalPage, error)
}

// Credits tops up a user's AI credits. A grant carrying an order id is
// applied at most once for that order.
type Credits interface {
	AddCredits(ctx context.Context, userID uuid.UUID, credits int, description string, orderID *uuid.UUID) (models.CreditBalance, error)
}

// Templates resolves the catalog template an order was placed for.
type Templates interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Template, error)
}

// Notifier mails the buyer about the outcome.
type Notifier interface {
	PaymentSuccess(ctx context.Context, to, orderID, templateTitle string, amount float64, pageURL string) error
	PaymentFailed(ctx context.Context, to, orderID, templateTitle string) error
}

// Outcome is what a processed callback did.
type Outcome struct {
	Order   *models.Order
	Page    *models.PersonalPage
	Settled bool
}

// Processor applies verified callbacks to orders.
type Processor struct {
	client    *Client
	orders    Orders
	pages     Pages
	credits   Credits
	templates Templates
	notify    Notifier
	siteURL   string
}

// NewProcessor wires a Processor. notify may be nil.
func NewProcessor(client *Client, orders Orders, pages Pages, credits Credits, templates Templates, notify Notifier, siteURL string) *Processor {
	return &Processor{client: client, orders: orders, pages: pages, credits: credits,
		templates: templates, notify: notify, siteURL: siteURL}
}

// Handle verifies cb and settles the order. A callback for an order that
// is already completed finishes whatever an earlier attempt left undone
// and otherwise changes nothing. Settled reports whether this call did
// any work.
func (p *Processor) Handle(ctx context.Context, cb Callback) (*Outcome, error) {
	if !p.client.Verify(cb) {
		return nil, ErrBadSignature
	}

	if !cb.Succeeded() {
		return p.fail(ctx, cb)
	}

	o, err := p.orders.MarkCompleted(ctx, cb.Reference)
	if err != nil {
		return nil, err
	}
	if o != nil {
		return p.fulfil(ctx, o, true)
	}

	existing, err := p.orders.FindByReference(ctx, cb.Reference)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.Status != models.OrderCompleted {
		return &Outcome{Order: existing}, nil
	}
	return p.fulfil(ctx, existing, false)
}

// fulfil delivers what a completed order bought. Both steps are
// idempotent, so a retried callback repairs a half-settled order.
func (p *Processor) fulfil(ctx context.Context, o *models.Order, first bool) (*Outcome, error) {
	out := &Outcome{Order: o, Settled: first}
	if o.IsCreditPurchase() {
		if err := p.addCredits(ctx, o); err != nil {
			return out, err
		}
		return out, nil
	}

	page, err := p.pages.FindByOrder(ctx, o.ID)
	if err != nil {
		return out, fmt.Errorf("find personal page: %w", err)
	}
	if page != nil {
		out.Page = page
		return out, nil
	}

	title, audio := p.templateInfo(ctx, o)
	page, err = p.pages.CreateFromOrder(ctx, o, audio)
	if err != nil {
		return out, fmt.Errorf("create personal page: %w", err)
	}
	out.Page = page
	out.Settled = true
	if !first {
		slog.InfoContext(ctx, "personal page created on callback retry", "order_id", o.ID)
	}

	if p.notify != nil && o.BuyerEmail != "" {
		pageURL := p.siteURL + "/m/" + page.ShortID
		if err := p.notify.PaymentSuccess(ctx, o.BuyerEmail, o.ID.String(), title,
			float64(o.TotalCents)/100, pageURL); err != nil {
			slog.WarnContext(ctx, "payment success email not sent", "order_id", o.ID, "error", err)
		}
	}
	return out, nil
}

func (p *Processor) fail(ctx context.Context, cb Callback) (*Outcome, error) {
	o, err := p.orders.FindByReference(ctx, cb.Reference)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("no order for reference %q", cb.Reference)
	}
	if o.Status != models.OrderPending {
		return &Outcome{Order: o}, nil
	}
	if err := p.orders.MarkFailed(ctx, cb.Reference); err != nil {
		return nil, err
	}
	o.Status = models.OrderFailed
	slog.InfoContext(ctx, "payment failed", "order_id", o.ID, "reason", cb.FailureMessage())

	if p.notify != nil && o.BuyerEmail != "" {
		title, _ := p.templateInfo(ctx, o)
		if err := p.notify.PaymentFailed(ctx, o.BuyerEmail, o.ID.String(), title); err != nil {
			slog.WarnContext(ctx, "payment failed email not sent", "order_id", o.ID, "error", err)
		}
	}
	return &Outcome{Order: o, Settled: true}, nil
}

func (p *Processor) addCredits(ctx context.Context, o *models.Order) error {
	if o.UserID == nil {
		return fmt.Errorf("credit order %s has no user", o.ID)
	}
	n, err := strconv.Atoi(o.TextFields.Get("credits"))
	if err != nil || n <= 0 {
		return fmt.Errorf("credit order %s has no credit count", o.ID)
	}
	desc := fmt.Sprintf("%s paketi satın alındı", o.TextFields.Get("package_name"))
	if _, err := p.credits.AddCredits(ctx, *o.UserID, n, desc, &o.ID); err != nil {
		return fmt.Errorf("add credits: %w", err)
	}
	return nil
}

func (p *Processor) templateInfo(ctx context.Context, o *models.Order) (string, *string) {
	if o.IsCreditPurchase() {
		return o.TextFields.Get("package_name"), nil
	}
	if o.TemplateID == nil || p.templates == nil {
		return "Bir Mesaj Mutluluk", nil
	}
	t, err := p.templates.FindByID(ctx, *o.TemplateID)
	if err != nil || t == nil {
		return "Bir Mesaj Mutluluk", nil
	}
	return t.Title, t.BackgroundAudioURL
}
