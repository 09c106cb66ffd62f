// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides in-memory fakes and request helpers shared by
// the handler tests.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/catalog"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/fields"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/middleware"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/render"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/session"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/store"
)

var testNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func testRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	rn, err := render.New("https://birmesajmutluluk.com", true)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return rn
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}
	return cat
}

// testSession creates a session.Data for testing.
func testSession(userID uuid.UUID, role models.Role) *session.Data {
	return &session.Data{
		UserID:      userID,
		Email:       "ayse@example.com",
		DisplayName: "Ayşe",
		Role:        string(role),
		CreatedAt:   testNow,
	}
}

// withChiURLParam adds chi URL parameters given as key, value pairs.
func withChiURLParam(r *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withSession(r *http.Request, sess *session.Data) *http.Request {
	return r.WithContext(middleware.WithSession(r.Context(), sess))
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func htmlDoc(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return d
}

func uuidPtr(id uuid.UUID) *uuid.UUID { return &id }

// memPages is an in-memory PageStore.
type memPages struct {
	mu          sync.Mutex
	pages       map[string]*models.PersonalPage
	deactivated []string
	err         error
}

func newMemPages(pages ...*models.PersonalPage) *memPages {
	m := &memPages{pages: map[string]*models.PersonalPage{}}
	for _, p := range pages {
		m.pages[p.ShortID] = p
	}
	return m
}

func (m *memPages) FindByShortID(_ context.Context, id string) (*models.PersonalPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.pages[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memPages) Deactivate(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.pages[id]; ok {
		p.IsActive = false
	}
	m.deactivated = append(m.deactivated, id)
	return nil
}

func (m *memPages) UpdateShareMeta(_ context.Context, id, title, desc, site, img string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.pages[id]
	if !ok {
		return nil
	}
	p.ShareTitle, p.ShareDescription, p.ShareSiteName, p.ShareImageURL = title, desc, site, img
	return nil
}

func (m *memPages) UpdateTextFields(_ context.Context, id string, values fields.Map) (*models.PersonalPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.pages[id]
	if !ok {
		return nil, nil
	}
	p.TextFields = fields.Merge(p.TextFields, values)
	cp := *p
	return &cp, nil
}

func (m *memPages) deactivations() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.deactivated...)
}

// memOrders is an in-memory OrderStore.
type memOrders struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*models.Order
	created []*models.Order
	dupes   int
}

func newMemOrders(orders ...*models.Order) *memOrders {
	m := &memOrders{byID: map[uuid.UUID]*models.Order{}}
	for _, o := range orders {
		m.byID[o.ID] = o
	}
	return m
}

func (m *memOrders) Create(_ context.Context, o *models.Order) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dupes > 0 {
		m.dupes--
		return nil, store.ErrDuplicate
	}
	cp := *o
	cp.ID = uuid.New()
	cp.CreatedAt = testNow
	m.byID[cp.ID] = &cp
	m.created = append(m.created, &cp)
	return &cp, nil
}

func (m *memOrders) FindByID(_ context.Context, id uuid.UUID) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byID[id], nil
}

func (m *memOrders) FindByReference(_ context.Context, ref string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.byID {
		if o.PaymentReference == ref {
			return o, nil
		}
	}
	return nil, nil
}

// memTemplates resolves template rows by id and slug.
type memTemplates struct {
	rows []*models.Template
}

func (m *memTemplates) FindByID(_ context.Context, id uuid.UUID) (*models.Template, error) {
	for _, t := range m.rows {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (m *memTemplates) FindBySlug(_ context.Context, slug string) (*models.Template, error) {
	for _, t := range m.rows {
		if t.Slug == slug {
			return t, nil
		}
	}
	return nil, nil
}

func (m *memTemplates) Upsert(_ context.Context, t *models.Template) (*models.Template, error) {
	for i, row := range m.rows {
		if row.Slug == t.Slug {
			m.rows[i] = t
			return t, nil
		}
	}
	t.ID = uuid.New()
	m.rows = append(m.rows, t)
	return t, nil
}

// memAITemplates resolves generated templates by id.
type memAITemplates map[uuid.UUID]*models.AITemplate

func (m memAITemplates) FindByID(_ context.Context, id uuid.UUID) (*models.AITemplate, error) {
	return m[id], nil
}

// stubEngine fills AI markup by listing the values it was given.
type stubEngine struct{}

func (stubEngine) Render(t *models.AITemplate, values fields.Map, creator string) (template.HTML, error) {
	return template.HTML(`<div data-ai="` + template.HTMLEscapeString(t.Slug) + `">` +
		template.HTMLEscapeString(values.Get("recipient_name")) + `</div>`), nil
}

// memObjects records uploads.
type memObjects struct {
	keys []string
	data [][]byte
}

func (m *memObjects) Put(_ context.Context, key, contentType string, data []byte) (string, error) {
	m.keys = append(m.keys, key)
	m.data = append(m.data, data)
	return "https://cdn.example.com/" + key, nil
}

// uuidOf returns a fixed id distinguished by n.
func uuidOf(n byte) uuid.UUID {
	var id uuid.UUID
	id[15] = n
	return id
}
