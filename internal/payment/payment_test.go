package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/fields"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
)

var testConfig = Config{
	MerchantID:   "123456",
	MerchantKey:  "key",
	MerchantSalt: "salt",
	OkURL:        "https://birmesajmutluluk.com/payment/success",
	FailURL:      "https://birmesajmutluluk.com/payment/fail",
	TestMode:     true,
}

func expectedHash(s string) string {
	mac := hmac.New(sha256.New, []byte("key"))
	mac.Write([]byte(s))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func signed(c *Client, ref, status, amount string) Callback {
	return Callback{Reference: ref, Status: status, TotalAmount: amount, Hash: c.CallbackHash(ref, status, amount)}
}

func TestCallbackHash(t *testing.T) {
	c := NewClient(testConfig)
	assert.Equal(t, expectedHash("ORD1"+"salt"+"success"+"14990"), c.CallbackHash("ORD1", "success", "14990"))

	cb := signed(c, "ORD1", "success", "14990")
	assert.True(t, c.Verify(cb))

	cb.TotalAmount = "1"
	assert.False(t, c.Verify(cb), "tampered amount")

	assert.False(t, NewClient(Config{}).Verify(signed(c, "ORD1", "success", "14990")), "unconfigured client rejects everything")
}

func TestParseCallback(t *testing.T) {
	_, err := ParseCallback(url.Values{"merchant_oid": {"x"}, "status": {"success"}})
	assert.Error(t, err)

	cb, err := ParseCallback(url.Values{
		"merchant_oid": {"x"}, "status": {"failed"}, "hash": {"h"}, "failed_reason_code": {"6"},
	})
	require.NoError(t, err)
	assert.False(t, cb.Succeeded())
	assert.Equal(t, "Payment failed with code: 6", cb.FailureMessage())
}

func TestFormIsSigned(t *testing.T) {
	c := NewClient(testConfig)
	form, err := c.Form(TokenRequest{
		Reference: "ORD1", Email: "a@b.com", AmountCents: 14990, UserIP: "1.2.3.4",
		Basket: []BasketItem{{Name: "Seni Seviyorum", Price: "149.90", Quantity: 1}},
	})
	require.NoError(t, err)

	basket, err := base64.StdEncoding.DecodeString(form.Get("user_basket"))
	require.NoError(t, err)
	assert.JSONEq(t, `[["Seni Seviyorum","149.90",1]]`, string(basket))

	want := expectedHash("123456" + "1.2.3.4" + "ORD1" + "a@b.com" + "14990" + form.Get("user_basket") + "0" + "0" + "TL" + "1" + "salt")
	assert.Equal(t, want, form.Get("paytr_token"))
	assert.Equal(t, "https://birmesajmutluluk.com/payment/success?merchant_oid=ORD1", form.Get("merchant_ok_url"))
}

func TestToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("merchant_oid") == "BAD" {
			json.NewEncoder(w).Encode(map[string]string{"status": "failed", "reason": "invalid basket"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "success", "token": "tok_1"})
	}))
	defer srv.Close()

	c := NewClient(testConfig)
	c.endpoint = srv.URL

	tok, err := c.Token(context.Background(), TokenRequest{Reference: "ORD1", Email: "a@b.com", AmountCents: 100})
	require.NoError(t, err)
	assert.Equal(t, "tok_1", tok)

	_, err = c.Token(context.Background(), TokenRequest{Reference: "BAD"})
	assert.ErrorContains(t, err, "invalid basket")

	_, err = NewClient(Config{}).Token(context.Background(), TokenRequest{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

type memOrders map[string]*models.Order

func (m memOrders) FindByReference(_ context.Context, ref string) (*models.Order, error) {
	return m[ref], nil
}

func (m memOrders) MarkCompleted(_ context.Context, ref string) (*models.Order, error) {
	o := m[ref]
	if o == nil || o.Status != models.OrderPending {
		return nil, nil
	}
	o.Status = models.OrderCompleted
	c := *o
	return &c, nil
}

func (m memOrders) MarkFailed(_ context.Context, ref string) error {
	if o := m[ref]; o != nil && o.Status == models.OrderPending {
		o.Status = models.OrderFailed
	}
	return nil
}

type memPages struct {
	byOrder  map[uuid.UUID]*models.PersonalPage
	created  []*models.Order
	failOnce bool
}

func (m *memPages) FindByOrder(_ context.Context, orderID uuid.UUID) (*models.PersonalPage, error) {
	return m.byOrder[orderID], nil
}

func (m *memPages) CreateFromOrder(_ context.Context, o *models.Order, _ *string) (*models.PersonalPage, error) {
	if m.failOnce {
		m.failOnce = false
		return nil, errors.New("connection reset")
	}
	m.created = append(m.created, o)
	p := &models.PersonalPage{ID: uuid.New(), OrderID: &o.ID, ShortID: o.ShortID, ExpiresAt: *o.ExpiresAt, IsActive: true}
	if m.byOrder == nil {
		m.byOrder = map[uuid.UUID]*models.PersonalPage{}
	}
	m.byOrder[o.ID] = p
	return p, nil
}

type memCredits struct {
	added    int
	granted  map[uuid.UUID]bool
	failOnce bool
}

func (m *memCredits) AddCredits(_ context.Context, _ uuid.UUID, n int, _ string, orderID *uuid.UUID) (models.CreditBalance, error) {
	if m.failOnce {
		m.failOnce = false
		return models.CreditBalance{}, errors.New("connection reset")
	}
	if orderID != nil {
		if m.granted[*orderID] {
			return models.CreditBalance{Total: 1 + m.added}, nil
		}
		if m.granted == nil {
			m.granted = map[uuid.UUID]bool{}
		}
		m.granted[*orderID] = true
	}
	m.added += n
	return models.CreditBalance{Total: 1 + m.added}, nil
}

type recordingNotifier struct {
	success, failed []string
}

func (r *recordingNotifier) PaymentSuccess(_ context.Context, _, _, title string, _ float64, pageURL string) error {
	r.success = append(r.success, title+"|"+pageURL)
	return nil
}

func (r *recordingNotifier) PaymentFailed(_ context.Context, _, orderID, _ string) error {
	r.failed = append(r.failed, orderID)
	return errors.New("smtp down")
}

type processorFixture struct {
	proc    *Processor
	client  *Client
	orders  memOrders
	pages   *memPages
	credits *memCredits
	notify  *recordingNotifier
}

func newProcessorFixture() *processorFixture {
	exp := time.Now().Add(24 * time.Hour)
	uid := uuid.New()
	orders := memOrders{
		"PAGE1": {ID: uuid.New(), ShortID: "abcd1234", BuyerEmail: "buyer@example.com", Type: models.OrderPersonalPage,
			ExpiresAt: &exp, TotalCents: 14990, Status: models.OrderPending},
		"CRED1": {ID: uuid.New(), ShortID: "CRED1", UserID: &uid, Type: models.OrderCreditPurchase, Status: models.OrderPending,
			TextFields: fields.Map{"credits": "30", "package_name": "Popüler"}},
	}
	f := &processorFixture{
		client: NewClient(testConfig), orders: orders,
		pages: &memPages{}, credits: &memCredits{}, notify: &recordingNotifier{},
	}
	f.proc = NewProcessor(f.client, orders, f.pages, f.credits, nil, f.notify, "https://birmesajmutluluk.com")
	return f
}

func TestHandleCreatesPageOnce(t *testing.T) {
	f := newProcessorFixture()
	cb := signed(f.client, "PAGE1", "success", "14990")

	out, err := f.proc.Handle(context.Background(), cb)
	require.NoError(t, err)
	assert.True(t, out.Settled)
	require.NotNil(t, out.Page)
	assert.Equal(t, "abcd1234", out.Page.ShortID)
	assert.Equal(t, []string{"Bir Mesaj Mutluluk|https://birmesajmutluluk.com/m/abcd1234"}, f.notify.success)

	out, err = f.proc.Handle(context.Background(), cb)
	require.NoError(t, err)
	assert.False(t, out.Settled, "replay is a no-op")
	assert.Len(t, f.pages.created, 1)
	assert.Len(t, f.notify.success, 1)
}

func TestHandleCreditPurchase(t *testing.T) {
	f := newProcessorFixture()
	_, err := f.proc.Handle(context.Background(), signed(f.client, "CRED1", "success", "59880"))
	require.NoError(t, err)
	assert.Equal(t, 30, f.credits.added)
	assert.Empty(t, f.pages.created)
}

func TestHandleRetryCreatesMissingPage(t *testing.T) {
	f := newProcessorFixture()
	f.pages.failOnce = true
	cb := signed(f.client, "PAGE1", "success", "14990")

	_, err := f.proc.Handle(context.Background(), cb)
	require.Error(t, err, "PayTR must be asked to retry")
	assert.Equal(t, models.OrderCompleted, f.orders["PAGE1"].Status)
	assert.Empty(t, f.pages.created)

	out, err := f.proc.Handle(context.Background(), cb)
	require.NoError(t, err)
	assert.True(t, out.Settled)
	require.NotNil(t, out.Page)
	assert.Equal(t, "abcd1234", out.Page.ShortID)
	assert.Len(t, f.pages.created, 1)
	assert.Len(t, f.notify.success, 1)

	out, err = f.proc.Handle(context.Background(), cb)
	require.NoError(t, err)
	assert.False(t, out.Settled)
	assert.Len(t, f.pages.created, 1)
}

func TestHandleRetryGrantsMissingCredits(t *testing.T) {
	f := newProcessorFixture()
	f.credits.failOnce = true
	cb := signed(f.client, "CRED1", "success", "59880")

	_, err := f.proc.Handle(context.Background(), cb)
	require.Error(t, err)
	assert.Zero(t, f.credits.added)

	_, err = f.proc.Handle(context.Background(), cb)
	require.NoError(t, err)
	assert.Equal(t, 30, f.credits.added)

	_, err = f.proc.Handle(context.Background(), cb)
	require.NoError(t, err)
	assert.Equal(t, 30, f.credits.added, "credits are granted once per order")
}

func TestHandleFailure(t *testing.T) {
	f := newProcessorFixture()
	out, err := f.proc.Handle(context.Background(), signed(f.client, "PAGE1", "failed", "14990"))
	require.NoError(t, err, "email failure is not fatal")
	assert.Equal(t, models.OrderFailed, out.Order.Status)
	assert.Len(t, f.notify.failed, 1)

	out, err = f.proc.Handle(context.Background(), signed(f.client, "PAGE1", "success", "14990"))
	require.NoError(t, err)
	assert.False(t, out.Settled, "a failed order is not completed later")
}

func TestHandleRejectsBadSignature(t *testing.T) {
	f := newProcessorFixture()
	cb := signed(f.client, "PAGE1", "success", "14990")
	cb.Hash = "forged"

	_, err := f.proc.Handle(context.Background(), cb)
	assert.ErrorIs(t, err, ErrBadSignature)
	assert.Equal(t, models.OrderPending, f.orders["PAGE1"].Status)
}
