package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/fields"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/payment"
)

type fakeTokens struct {
	configured bool
	requests   []payment.TokenRequest
}

func (f *fakeTokens) Token(_ context.Context, req payment.TokenRequest) (string, error) {
	f.requests = append(f.requests, req)
	return "tok-" + req.Reference, nil
}

func (f *fakeTokens) Configured() bool { return f.configured }

type fakeCallbacks struct {
	got []payment.Callback
	err error
}

func (f *fakeCallbacks) Handle(_ context.Context, cb payment.Callback) (*payment.Outcome, error) {
	f.got = append(f.got, cb)
	if f.err != nil {
		return nil, f.err
	}
	return &payment.Outcome{Settled: true, Order: &models.Order{ID: uuidOf(9), Status: models.OrderCompleted}}, nil
}

type ordersFixture struct {
	h         *Orders
	orders    *memOrders
	drafts    *memDrafts
	tokens    *fakeTokens
	callbacks *fakeCallbacks
}

func newOrdersFixture(t *testing.T, existing ...*models.Order) *ordersFixture {
	t.Helper()
	fx := &ordersFixture{
		orders:    newMemOrders(existing...),
		drafts:    newMemDrafts(),
		tokens:    &fakeTokens{configured: true},
		callbacks: &fakeCallbacks{},
	}
	templates := &memTemplates{rows: []*models.Template{
		{ID: uuidOf(1), Slug: "seni-seviyorum", Title: "Seni Seviyorum", IsActive: true},
		{ID: uuidOf(2), Slug: "affet-beni", Title: "Affet Beni", IsActive: false},
	}}
	fx.h = NewOrders(testRenderer(t), testCatalog(t), fx.orders, templates, fx.drafts, fx.tokens, fx.callbacks)
	return fx
}

func orderBody(overrides map[string]any) map[string]any {
	body := map[string]any{
		"templateSlug":  "seni-seviyorum",
		"recipientName": "Zeynep",
		"senderName":    "Ali",
		"message":       "Seni seviyorum",
		"durationHours": 24,
		"buyerEmail":    "ali@example.com",
		"textFields": map[string]string{
			"recipientName": "Zeynep",
			"mainMessage":   "Sen benim her şeyimsin",
		},
	}
	for k, v := range overrides {
		if v == nil {
			delete(body, k)
			continue
		}
		body[k] = v
	}
	return body
}

func TestCreateOrder(t *testing.T) {
	fx := newOrdersFixture(t)
	rec := httptest.NewRecorder()
	fx.h.Create(rec, jsonRequest(t, http.MethodPost, "/api/orders", orderBody(nil)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d (%s)", rec.Code, rec.Body.String())
	}
	if len(fx.orders.created) != 1 {
		t.Fatalf("orders created: got %d", len(fx.orders.created))
	}
	o := fx.orders.created[0]
	if o.TotalCents != 5900 {
		t.Errorf("TotalCents: got %d, want 5900", o.TotalCents)
	}
	if o.Status != models.OrderPending || o.Type != models.OrderPersonalPage {
		t.Errorf("status/type: got %s/%s", o.Status, o.Type)
	}
	if o.PaymentReference != o.ShortID || len(o.ShortID) != 8 {
		t.Errorf("reference %q, short id %q", o.PaymentReference, o.ShortID)
	}
	if o.UserID != nil {
		t.Error("anonymous order got a user id")
	}
	if o.TemplateID == nil || *o.TemplateID != uuidOf(1) {
		t.Errorf("template id: got %v", o.TemplateID)
	}
	body := decodeBody(t, rec)
	if body["redirect"] != "/payment/"+o.ID.String() {
		t.Errorf("redirect: got %v", body["redirect"])
	}
}

func TestCreateOrderUsesSessionAndDraft(t *testing.T) {
	fx := newOrdersFixture(t)
	draft, _ := fx.drafts.Create(context.Background(), "seni-seviyorum", "modern", fields.Map{
		"recipientName": "Taslak",
		"mainMessage":   "Taslaktan gelen mesaj",
		"footerMessage": "Taslak alt mesaj",
	})

	uid := uuid.New()
	req := jsonRequest(t, http.MethodPost, "/api/orders", orderBody(map[string]any{
		"buyerEmail": nil,
		"draftId":    draft.ID,
	}))
	req = withSession(req, testSession(uid, models.RoleUser))
	rec := httptest.NewRecorder()
	fx.h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d (%s)", rec.Code, rec.Body.String())
	}
	o := fx.orders.created[0]
	if o.BuyerEmail != "ayse@example.com" {
		t.Errorf("buyer email: got %q", o.BuyerEmail)
	}
	if o.UserID == nil || *o.UserID != uid {
		t.Errorf("user id: got %v", o.UserID)
	}
	if got := o.TextFields.Get("footerMessage"); got != "Taslak alt mesaj" {
		t.Errorf("draft field lost: got %q", got)
	}
	if got := o.TextFields.Get("mainMessage"); got != "Sen benim her şeyimsin" {
		t.Errorf("request should override draft: got %q", got)
	}
	if len(fx.drafts.deleted) != 1 || fx.drafts.deleted[0] != draft.ID {
		t.Errorf("draft not deleted: %v", fx.drafts.deleted)
	}
}

func TestCreateOrderRetriesShortIDCollision(t *testing.T) {
	fx := newOrdersFixture(t)
	fx.orders.dupes = 1
	rec := httptest.NewRecorder()
	fx.h.Create(rec, jsonRequest(t, http.MethodPost, "/api/orders", orderBody(nil)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d (%s)", rec.Code, rec.Body.String())
	}

	fx = newOrdersFixture(t)
	fx.orders.dupes = 2
	rec = httptest.NewRecorder()
	fx.h.Create(rec, jsonRequest(t, http.MethodPost, "/api/orders", orderBody(nil)))
	if rec.Code != http.StatusConflict {
		t.Errorf("status after two collisions: got %d, want 409", rec.Code)
	}
}

func TestCreateOrderRejects(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
		status    int
		field     string
	}{
		{"no email", map[string]any{"buyerEmail": nil}, http.StatusBadRequest, "buyerEmail"},
		{"unknown template", map[string]any{"templateSlug": "yok-boyle"}, http.StatusNotFound, ""},
		{"inactive template", map[string]any{"templateSlug": "affet-beni"}, http.StatusNotFound, ""},
		{"bad duration", map[string]any{"durationHours": 5}, http.StatusBadRequest, "durationHours"},
		{"missing required text field", map[string]any{"textFields": map[string]string{"mainMessage": "Merhaba"}}, http.StatusBadRequest, "textFields.recipientName"},
		{"text field too long", map[string]any{"textFields": map[string]string{"recipientName": "Zeynep", "footerMessage": strings.Repeat("a", 101)}}, http.StatusBadRequest, "textFields.footerMessage"},
		{"missing sender", map[string]any{"senderName": nil}, http.StatusBadRequest, "senderName"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newOrdersFixture(t)
			rec := httptest.NewRecorder()
			fx.h.Create(rec, jsonRequest(t, http.MethodPost, "/api/orders", orderBody(tt.overrides)))
			if rec.Code != tt.status {
				t.Fatalf("status: got %d, want %d (%s)", rec.Code, tt.status, rec.Body.String())
			}
			if len(fx.orders.created) != 0 {
				t.Error("order created")
			}
			if tt.field == "" {
				return
			}
			if !strings.Contains(rec.Body.String(), `"`+tt.field+`"`) {
				t.Errorf("field %q not reported: %s", tt.field, rec.Body.String())
			}
		})
	}
}

func TestPaymentPage(t *testing.T) {
	owner := uuid.New()
	pending := &models.Order{ID: uuidOf(3), ShortID: "pay00001", PaymentReference: "pay00001", UserID: &owner,
		Status: models.OrderPending, TotalCents: 9900, RecipientName: "Zeynep", SenderName: "Ali", BuyerEmail: "ali@example.com"}
	paid := &models.Order{ID: uuidOf(4), ShortID: "pay00002", PaymentReference: "pay00002", Status: models.OrderCompleted}

	t.Run("owner sees iframe", func(t *testing.T) {
		fx := newOrdersFixture(t, pending, paid)
		req := withSession(withChiURLParam(httptest.NewRequest(http.MethodGet, "/payment/x", nil), "orderId", pending.ID.String()), testSession(owner, models.RoleUser))
		rec := httptest.NewRecorder()
		fx.h.PaymentPage(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status: got %d", rec.Code)
		}
		src, _ := htmlDoc(t, rec).Find("#paytriframe").Attr("src")
		if !strings.HasSuffix(src, "/tok-pay00001") {
			t.Errorf("iframe src: got %q", src)
		}
		if len(fx.tokens.requests) != 1 || fx.tokens.requests[0].AmountCents != 9900 {
			t.Errorf("token requests: %+v", fx.tokens.requests)
		}
	})

	t.Run("other user forbidden", func(t *testing.T) {
		fx := newOrdersFixture(t, pending)
		req := withSession(withChiURLParam(httptest.NewRequest(http.MethodGet, "/payment/x", nil), "orderId", pending.ID.String()), testSession(uuid.New(), models.RoleUser))
		rec := httptest.NewRecorder()
		fx.h.PaymentPage(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Errorf("status: got %d, want 403", rec.Code)
		}
	})

	t.Run("settled order redirects", func(t *testing.T) {
		fx := newOrdersFixture(t, paid)
		req := withChiURLParam(httptest.NewRequest(http.MethodGet, "/payment/x", nil), "orderId", paid.ID.String())
		rec := httptest.NewRecorder()
		fx.h.PaymentPage(rec, req)
		if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/payment/result?merchant_oid=pay00002" {
			t.Errorf("got %d to %q", rec.Code, rec.Header().Get("Location"))
		}
	})

	t.Run("unconfigured provider", func(t *testing.T) {
		fx := newOrdersFixture(t, pending)
		fx.tokens.configured = false
		req := withSession(withChiURLParam(httptest.NewRequest(http.MethodGet, "/payment/x", nil), "orderId", pending.ID.String()), testSession(owner, models.RoleUser))
		rec := httptest.NewRecorder()
		fx.h.PaymentPage(rec, req)
		if rec.Code != http.StatusOK || htmlDoc(t, rec).Find("#paytriframe").Length() != 0 {
			t.Errorf("expected notice without iframe, got %d", rec.Code)
		}
	})

	t.Run("bad id", func(t *testing.T) {
		fx := newOrdersFixture(t)
		req := withChiURLParam(httptest.NewRequest(http.MethodGet, "/payment/x", nil), "orderId", "not-a-uuid")
		rec := httptest.NewRecorder()
		fx.h.PaymentPage(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("status: got %d, want 404", rec.Code)
		}
	})
}

func TestPaymentResult(t *testing.T) {
	orders := []*models.Order{
		{ID: uuidOf(5), ShortID: "res00001", PaymentReference: "res00001", Status: models.OrderCompleted, Type: models.OrderPersonalPage},
		{ID: uuidOf(6), ShortID: "res00002", PaymentReference: "res00002", Status: models.OrderPending},
		{ID: uuidOf(7), ShortID: "res00003", PaymentReference: "res00003", Status: models.OrderFailed},
	}
	tests := []struct {
		ref    string
		status int
		state  string
	}{
		{"res00001", http.StatusOK, "paid"},
		{"res00002", http.StatusOK, "pending"},
		{"res00003", http.StatusOK, "failed"},
		{"unknown", http.StatusNotFound, "notFound"},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			fx := newOrdersFixture(t, orders...)
			rec := httptest.NewRecorder()
			fx.h.PaymentResult(rec, httptest.NewRequest(http.MethodGet, "/payment/result?merchant_oid="+tt.ref, nil))
			if rec.Code != tt.status {
				t.Fatalf("status: got %d, want %d", rec.Code, tt.status)
			}
			doc := htmlDoc(t, rec)
			if got, _ := doc.Find("[data-status]").Attr("data-status"); got != tt.state {
				t.Errorf("state: got %q, want %q", got, tt.state)
			}
			if tt.state == "paid" {
				if href, _ := doc.Find("[data-page-link]").Attr("href"); href != "/m/res00001" {
					t.Errorf("page link: got %q", href)
				}
			}
		})
	}
}

func callbackRequest(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/payments/callback", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestCallback(t *testing.T) {
	valid := url.Values{"merchant_oid": {"abc12345"}, "status": {"success"}, "total_amount": {"5900"}, "hash": {"h"}}

	tests := []struct {
		name   string
		form   url.Values
		err    error
		status int
		body   string
		calls  int
	}{
		{"settled", valid, nil, http.StatusOK, "OK", 1},
		{"incomplete form", url.Values{"status": {"success"}}, nil, http.StatusOK, "OK", 0},
		{"bad signature", valid, payment.ErrBadSignature, http.StatusBadRequest, "bad hash", 1},
		{"internal failure", valid, errors.New("db down"), http.StatusInternalServerError, "error", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newOrdersFixture(t)
			fx.callbacks.err = tt.err
			rec := httptest.NewRecorder()
			fx.h.Callback(rec, callbackRequest(tt.form))
			if rec.Code != tt.status {
				t.Errorf("status: got %d, want %d", rec.Code, tt.status)
			}
			if !strings.Contains(rec.Body.String(), tt.body) {
				t.Errorf("body: got %q, want %q", rec.Body.String(), tt.body)
			}
			if len(fx.callbacks.got) != tt.calls {
				t.Errorf("handler calls: got %d, want %d", len(fx.callbacks.got), tt.calls)
			}
		})
	}
	fx := newOrdersFixture(t)
	fx.h.Callback(httptest.NewRecorder(), callbackRequest(valid))
	if got := fx.callbacks.got[0]; got.Reference != "abc12345" || got.TotalAmount != "5900" {
		t.Errorf("parsed callback: %+v", got)
	}
}
