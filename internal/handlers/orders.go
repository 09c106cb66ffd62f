package handlers

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/apperr"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/cache"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/catalog"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/checkout"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/fields"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/middleware"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/payment"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/render"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/respond"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/shortid"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/store"
)

// OrderStore persists greeting page orders.
type OrderStore interface {
	Create(ctx context.Context, o *models.Order) (*models.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	FindByReference(ctx context.Context, ref string) (*models.Order, error)
}

// TemplateSlugFinder resolves catalog rows by slug.
type TemplateSlugFinder interface {
	FindBySlug(ctx context.Context, slug string) (*models.Template, error)
}

// DraftReader loads and drops drafts that are turned into orders.
type DraftReader interface {
	Get(ctx context.Context, id string) (*cache.Draft, error)
	Delete(ctx context.Context, id string) error
}

// PaymentTokens opens PayTR payments. *payment.Client satisfies it.
type PaymentTokens interface {
	Token(ctx context.Context, req payment.TokenRequest) (string, error)
	Configured() bool
}

// CallbackHandler settles orders from PayTR callbacks.
// *payment.Processor satisfies it.
type CallbackHandler interface {
	Handle(ctx context.Context, cb payment.Callback) (*payment.Outcome, error)
}

// Orders creates greeting page orders and drives their payment.
type Orders struct {
	renderer  *render.Renderer
	catalog   *catalog.Catalog
	orders    OrderStore
	templates TemplateSlugFinder
	drafts    DraftReader
	tokens    PaymentTokens
	callbacks CallbackHandler
}

// NewOrders creates the Orders handler group. drafts may be nil.
func NewOrders(renderer *render.Renderer, cat *catalog.Catalog, orders OrderStore, templates TemplateSlugFinder, drafts DraftReader, tokens PaymentTokens, callbacks CallbackHandler) *Orders {
	return &Orders{
		renderer:  renderer,
		catalog:   cat,
		orders:    orders,
		templates: templates,
		drafts:    drafts,
		tokens:    tokens,
		callbacks: callbacks,
	}
}

type createOrderRequest struct {
	TemplateSlug  string            `json:"templateSlug" validate:"required,max=100"`
	DesignStyle   string            `json:"designStyle" validate:"omitempty,max=20"`
	RecipientName string            `json:"recipientName" validate:"required,max=100"`
	SenderName    string            `json:"senderName" validate:"required,max=100"`
	Message       string            `json:"message" validate:"max=2000"`
	SpecialDate   *time.Time        `json:"specialDate"`
	DurationHours int               `json:"durationHours" validate:"required,min=1"`
	BuyerEmail    string            `json:"buyerEmail" validate:"omitempty,email,max=254"`
	TextFields    map[string]string `json:"textFields" validate:"max=32"`
	DraftID       string            `json:"draftId"`
}

type createOrderResponse struct {
	Success    bool      `json:"success"`
	OrderID    uuid.UUID `json:"orderId"`
	ShortID    string    `json:"shortId"`
	TotalCents int64     `json:"totalCents"`
	Redirect   string    `json:"redirect"`
}

// Create handles POST /api/orders. The price comes from the catalog entry
// for the requested duration; the text fields are checked against the
// slug's order-form configs. A draft's edits are folded in first so the
// request can override them.
func (o *Orders) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	uid := optionalUserID(r)
	email := strings.TrimSpace(req.BuyerEmail)
	if _, sessEmail, _, ok := buyer(r); ok && email == "" {
		email = sessEmail
	}
	if email == "" {
		respond.Error(w, r, apperr.ValidationError("Validation failed",
			apperr.FieldError{Field: "buyerEmail", Message: "This field is required"}))
		return
	}

	d, ok := o.catalog.Lookup(req.TemplateSlug)
	if !ok {
		respond.Error(w, r, apperr.NotFound("Template"))
		return
	}
	price, ok := d.Price(time.Duration(req.DurationHours) * time.Hour)
	if !ok {
		respond.Error(w, r, apperr.ValidationError("Validation failed",
			apperr.FieldError{Field: "durationHours", Message: "Unsupported duration"}))
		return
	}
	row, err := o.templates.FindBySlug(r.Context(), d.Slug)
	if err != nil {
		respond.Error(w, r, apperr.Internal(err))
		return
	}
	if row == nil || !row.IsActive {
		respond.Error(w, r, apperr.NotFound("Template"))
		return
	}

	values := fields.Map{}
	if req.DraftID != "" && o.drafts != nil && cache.ValidDraftID(req.DraftID) {
		draft, err := o.drafts.Get(r.Context(), req.DraftID)
		switch {
		case err == nil && draft.Slug == d.Slug:
			values = draft.Fields.Clone()
		case err != nil && !errors.Is(err, cache.ErrDraftNotFound):
			respond.Error(w, r, apperr.Internal(err))
			return
		}
	}
	values = fields.Merge(values, fields.Map(req.TextFields)).Compact()
	if problems := fields.Validate(d.Slug, values); len(problems) > 0 {
		details := make([]apperr.FieldError, 0, len(problems))
		for k, msg := range problems {
			details = append(details, apperr.FieldError{Field: "textFields." + k, Message: msg})
		}
		respond.Error(w, r, apperr.ValidationError("Validation failed", details...))
		return
	}

	style := string(pickStyle(d.Slug, req.DesignStyle))
	if style == "" {
		style = string(catalog.Modern)
	}
	templateID := row.ID
	var order *models.Order
	// A short id collision is retried once with a fresh id.
	for attempt := 0; attempt < 2; attempt++ {
		sid, err := shortid.New()
		if err != nil {
			respond.Error(w, r, apperr.Internal(err))
			return
		}
		order, err = o.orders.Create(r.Context(), &models.Order{
			ShortID:          sid,
			Type:             models.OrderPersonalPage,
			TemplateID:       &templateID,
			UserID:           uid,
			BuyerEmail:       email,
			RecipientName:    strings.TrimSpace(req.RecipientName),
			SenderName:       strings.TrimSpace(req.SenderName),
			Message:          strings.TrimSpace(req.Message),
			SpecialDate:      req.SpecialDate,
			DesignStyle:      style,
			TextFields:       values,
			DurationHours:    req.DurationHours,
			TotalCents:       int64(math.Round(price.Amount * 100)),
			Status:           models.OrderPending,
			PaymentProvider:  "paytr",
			PaymentReference: sid,
		})
		if !errors.Is(err, store.ErrDuplicate) {
			if err != nil {
				respond.Error(w, r, apperr.Internal(err))
				return
			}
			break
		}
	}
	if order == nil {
		respond.Error(w, r, apperr.Conflict("Order could not be created, please retry"))
		return
	}

	if req.DraftID != "" && o.drafts != nil {
		if err := o.drafts.Delete(r.Context(), req.DraftID); err != nil {
			slog.WarnContext(r.Context(), "delete draft failed", "draft", req.DraftID, "error", err)
		}
	}
	slog.InfoContext(r.Context(), "order created", "order_id", order.ID, "short_id", order.ShortID, "slug", d.Slug)
	respond.Created(w, createOrderResponse{
		Success:    true,
		OrderID:    order.ID,
		ShortID:    order.ShortID,
		TotalCents: order.TotalCents,
		Redirect:   "/payment/" + order.ID.String(),
	})
}

// PaymentPage renders GET /payment/{orderId}: the PayTR iframe for a
// pending order owned by the signed-in user or placed anonymously.
func (o *Orders) PaymentPage(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "orderId")
	if err != nil {
		statusPage(o.renderer, w, r, http.StatusNotFound, "notFound", "Sipariş bulunamadı.")
		return
	}
	order, err := o.orders.FindByID(r.Context(), id)
	if err != nil {
		slog.ErrorContext(r.Context(), "load order failed", "order_id", id, "error", err)
		statusPage(o.renderer, w, r, http.StatusInternalServerError, "error", "")
		return
	}
	if order == nil {
		statusPage(o.renderer, w, r, http.StatusNotFound, "notFound", "Sipariş bulunamadı.")
		return
	}
	if order.UserID != nil {
		if uid, ok := userID(r); !ok || uid != *order.UserID {
			statusPage(o.renderer, w, r, http.StatusForbidden, "error", "Bu siparişe erişim yetkiniz yok.")
			return
		}
	}
	if order.Status != models.OrderPending {
		http.Redirect(w, r, "/payment/result?merchant_oid="+url.QueryEscape(order.PaymentReference), http.StatusSeeOther)
		return
	}

	token := ""
	if o.tokens.Configured() {
		_, _, name, _ := buyer(r)
		if name == "" {
			name = order.SenderName
		}
		token, err = o.tokens.Token(r.Context(), payment.TokenRequest{
			Reference:   order.PaymentReference,
			Email:       order.BuyerEmail,
			AmountCents: order.TotalCents,
			UserName:    name,
			UserAddress: "Türkiye",
			UserPhone:   "05000000000",
			UserIP:      middleware.ClientIP(r),
			Basket: []payment.BasketItem{{
				Name:     order.RecipientName,
				Price:    checkout.Decimal(order.TotalCents),
				Quantity: 1,
			}},
		})
		if err != nil {
			slog.ErrorContext(r.Context(), "payment token failed", "order_id", order.ID, "error", err)
			token = ""
		}
	}

	w.Header().Set("Cache-Control", "private, no-store")
	o.renderer.Page(w, r, "payment", &render.PageData{
		Title: "Güvenli Ödeme",
		Data:  map[string]any{"Order": order, "Token": token},
	})
}

// PaymentResult renders GET /payment/result, where PayTR sends the buyer
// back. The order status decides the view since the callback may arrive
// before or after the redirect.
func (o *Orders) PaymentResult(w http.ResponseWriter, r *http.Request) {
	ref := r.URL.Query().Get("merchant_oid")
	if ref == "" {
		statusPage(o.renderer, w, r, http.StatusNotFound, "notFound", "")
		return
	}
	order, err := o.orders.FindByReference(r.Context(), ref)
	if err != nil {
		slog.ErrorContext(r.Context(), "load order failed", "reference", ref, "error", err)
		statusPage(o.renderer, w, r, http.StatusInternalServerError, "error", "")
		return
	}
	if order == nil {
		statusPage(o.renderer, w, r, http.StatusNotFound, "notFound", "")
		return
	}

	data := map[string]any{"State": "pending", "Order": order}
	switch order.Status {
	case models.OrderCompleted:
		data["State"] = "paid"
		if !order.IsCreditPurchase() {
			data["PageURL"] = "/m/" + order.ShortID
		}
	case models.OrderFailed, models.OrderCancelled:
		data["State"] = "failed"
	}
	w.Header().Set("Cache-Control", "private, no-store")
	o.renderer.Page(w, r, "status", &render.PageData{Title: "Ödeme Sonucu", Data: data})
}

// Callback handles POST /api/payments/callback from PayTR. PayTR retries
// until it reads "OK", so every verified or unverifiable callback is
// acknowledged; only internal failures answer 500 to get a retry.
func (o *Orders) Callback(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		slog.WarnContext(r.Context(), "payment callback: bad form", "error", err)
		writeOK(w)
		return
	}
	cb, err := payment.ParseCallback(r.PostForm)
	if err != nil {
		slog.WarnContext(r.Context(), "payment callback: invalid", "error", err)
		writeOK(w)
		return
	}
	out, err := o.callbacks.Handle(r.Context(), cb)
	switch {
	case errors.Is(err, payment.ErrBadSignature):
		slog.WarnContext(r.Context(), "payment callback: bad signature", "reference", cb.Reference)
		http.Error(w, "PAYTR notification failed: bad hash", http.StatusBadRequest)
		return
	case err != nil:
		slog.ErrorContext(r.Context(), "payment callback failed", "reference", cb.Reference, "error", err)
		http.Error(w, "error", http.StatusInternalServerError)
		return
	}
	if out != nil && out.Settled && out.Order != nil {
		slog.InfoContext(r.Context(), "payment settled", "order_id", out.Order.ID, "status", out.Order.Status)
	}
	writeOK(w)
}

func writeOK(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("OK"))
}
