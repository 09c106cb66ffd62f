// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/apperr"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/catalog"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/fields"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/render"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/respond"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/shell"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/shortid"
)

// PageStore is the personal page persistence the public handlers need.
type PageStore interface {
	FindByShortID(ctx context.Context, shortID string) (*models.PersonalPage, error)
	Deactivate(ctx context.Context, shortID string) error
	UpdateShareMeta(ctx context.Context, shortID, title, description, siteName, imageURL string) error
	UpdateTextFields(ctx context.Context, shortID string, values fields.Map) (*models.PersonalPage, error)
}

// OrderFinder loads orders by id.
type OrderFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
}

// TemplateFinder loads catalog template rows by id.
type TemplateFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Template, error)
}

// AITemplateFinder loads generated templates by id.
type AITemplateFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.AITemplate, error)
}

// AIRenderer fills stored AI markup with a page's values.
type AIRenderer interface {
	Render(t *models.AITemplate, values fields.Map, creator string) (template.HTML, error)
}

// Public serves purchased personal pages at /m/{shortId} and their JSON
// and share endpoints.
type Public struct {
	renderer    *render.Renderer
	catalog     *catalog.Catalog
	pages       PageStore
	orders      OrderFinder
	templates   TemplateFinder
	aiTemplates AITemplateFinder
	engine      AIRenderer
	objects     ObjectStore
	siteURL     string
	now         func() time.Time
	pollEvery   time.Duration

	streams     context.Context
	stopStreams context.CancelFunc
}

// NewPublic creates the Public handler group. objects may be nil when
// object storage is not configured.
func NewPublic(renderer *render.Renderer, cat *catalog.Catalog, pages PageStore, orders OrderFinder, templates TemplateFinder, aiTemplates AITemplateFinder, engine AIRenderer, objects ObjectStore, siteURL string) *Public {
	streams, stop := context.WithCancel(context.Background())
	return &Public{
		renderer:    renderer,
		catalog:     cat,
		pages:       pages,
		orders:      orders,
		templates:   templates,
		aiTemplates: aiTemplates,
		engine:      engine,
		objects:     objects,
		siteURL:     siteURL,
		now:         time.Now,
		pollEvery:   shell.PollInterval,
		streams:     streams,
		stopStreams: stop,
	}
}

// CloseStreams ends every open status stream and any opened afterwards.
// http.Server.Shutdown does not cancel request contexts, so the server
// registers this with RegisterOnShutdown.
func (p *Public) CloseStreams() {
	p.stopStreams()
}

// load fetches the page for the {shortId} parameter. A malformed id is
// treated like a missing page.
func (p *Public) load(r *http.Request) (*models.PersonalPage, error) {
	id := chi.URLParam(r, "shortId")
	if !shortid.Valid(id) {
		return nil, nil
	}
	return p.pages.FindByShortID(r.Context(), id)
}

// expire flags an expired page inactive so listings stop showing it.
func (p *Public) expire(ctx context.Context, page *models.PersonalPage) {
	if !page.IsActive {
		return
	}
	if err := p.pages.Deactivate(ctx, page.ShortID); err != nil {
		slog.WarnContext(ctx, "deactivate expired page failed", "short_id", page.ShortID, "error", err)
	}
}

// View renders GET /m/{shortId}.
func (p *Public) View(w http.ResponseWriter, r *http.Request) {
	page, err := p.load(r)
	if err != nil {
		slog.ErrorContext(r.Context(), "load personal page failed", "error", err)
		statusPage(p.renderer, w, r, http.StatusInternalServerError, "error", "")
		return
	}

	now := p.now()
	switch shell.Evaluate(page, now) {
	case shell.NotFound:
		statusPage(p.renderer, w, r, http.StatusNotFound, string(shell.NotFound), "")
		return
	case shell.Expired:
		p.expire(r.Context(), page)
		statusPage(p.renderer, w, r, http.StatusGone, string(shell.Expired), "")
		return
	case shell.Inactive:
		statusPage(p.renderer, w, r, http.StatusOK, string(shell.Inactive), "")
		return
	}

	data, title, err := p.compose(r.Context(), page)
	if err != nil {
		slog.ErrorContext(r.Context(), "compose personal page failed", "short_id", page.ShortID, "error", err)
		statusPage(p.renderer, w, r, http.StatusInternalServerError, "error", "")
		return
	}
	data["ShortID"] = page.ShortID
	data["ExpiresAt"] = page.ExpiresAt
	data["Countdown"] = shell.Countdown(page.ExpiresAt, now)
	if page.BgAudioURL != nil {
		data["AudioURL"] = *page.BgAudioURL
	}

	w.Header().Set("Cache-Control", "private, no-store")
	p.renderer.Page(w, r, "page", &render.PageData{
		Title: title,
		Share: p.shareMeta(page, title),
		Data:  data,
	})
}

// compose builds the render data of an active page: the stored AI markup
// when the page was made from a generated template, otherwise the catalog
// component picked by slug and style.
func (p *Public) compose(ctx context.Context, page *models.PersonalPage) (map[string]any, string, error) {
	var order *models.Order
	if page.OrderID != nil {
		o, err := p.orders.FindByID(ctx, *page.OrderID)
		if err != nil {
			return nil, "", err
		}
		order = o
	}

	if page.AITemplateID != nil {
		t, err := p.aiTemplates.FindByID(ctx, *page.AITemplateID)
		if err != nil {
			return nil, "", err
		}
		if t != nil {
			values := shell.Merge(page, order, t.EditableFields)
			markup, err := p.engine.Render(t, values, page.SenderName)
			if err != nil {
				return nil, "", err
			}
			return map[string]any{"AI": &render.AIView{Title: t.Title, Markup: markup}}, t.Title, nil
		}
	}

	desc, err := p.descriptor(ctx, page.TemplateID)
	if err != nil {
		return nil, "", err
	}
	values := shell.Merge(page, order, fields.DefaultTextFields(desc.Slug))
	in := catalog.Render(desc, catalog.ParseStyle(page.DesignStyle), catalog.RenderContext{
		RecipientName: page.RecipientName,
		Message:       page.Message,
		CreatorName:   page.SenderName,
		TextFields:    values,
	})
	defer in.Close()
	return map[string]any{"Component": render.NewComponentView(in, "")}, desc.Title, nil
}

// descriptor resolves the catalog entry of a template row. Rows that are
// missing from the catalog render with the generic default component.
func (p *Public) descriptor(ctx context.Context, id *uuid.UUID) (catalog.Descriptor, error) {
	if id == nil {
		return catalog.Descriptor{Title: "Özel Mesaj"}, nil
	}
	t, err := p.templates.FindByID(ctx, *id)
	if err != nil {
		return catalog.Descriptor{}, err
	}
	if t == nil {
		return catalog.Descriptor{Title: "Özel Mesaj"}, nil
	}
	if d, ok := p.catalog.Lookup(t.Slug); ok {
		return d, nil
	}
	return catalog.Descriptor{Slug: t.Slug, Title: t.Title}, nil
}

func (p *Public) shareMeta(page *models.PersonalPage, title string) *render.ShareMeta {
	m := &render.ShareMeta{
		Title:       page.ShareTitle,
		Description: page.ShareDescription,
		SiteName:    page.ShareSiteName,
		ImageURL:    page.ShareImageURL,
		URL:         p.pageURL(page.ShortID),
	}
	if m.Title == "" {
		m.Title = title
	}
	if m.Description == "" {
		m.Description = "Senin için hazırlanmış özel bir mesaj var 💌"
	}
	if m.SiteName == "" {
		m.SiteName = "Bir Mesaj Mutluluk"
	}
	return m
}

func (p *Public) pageURL(shortID string) string {
	return p.siteURL + "/m/" + shortID
}

// Status streams GET /m/{shortId}/status as Server-Sent Events. The
// connection receives one "expired" event when the page's expiry passes
// and is then closed; a client disconnect or CloseStreams stops the
// watcher.
func (p *Public) Status(w http.ResponseWriter, r *http.Request) {
	page, err := p.load(r)
	if err != nil {
		slog.ErrorContext(r.Context(), "load personal page failed", "error", err)
		http.Error(w, "Bir hata oluştu", http.StatusInternalServerError)
		return
	}
	if page == nil {
		http.NotFound(w, r)
		return
	}

	rc := http.NewResponseController(w)
	// The stream outlives the server's write timeout.
	_ = rc.SetWriteDeadline(time.Time{})
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "retry: 5000\n: watching\n\n")
	_ = rc.Flush()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	defer context.AfterFunc(p.streams, cancel)()

	watcher := shell.NewExpiryWatcher(page.ExpiresAt)
	watcher.SetClock(p.now, p.pollEvery)
	for st := range watcher.Watch(ctx) {
		p.expire(context.WithoutCancel(r.Context()), page)
		fmt.Fprintf(w, "event: %s\ndata: {\"shortId\":%q}\n\n", st, page.ShortID)
		_ = rc.Flush()
	}
}

// QR serves GET /m/{shortId}/qr.png, a QR code of the share link.
func (p *Public) QR(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "shortId")
	if !shortid.Valid(id) {
		http.NotFound(w, r)
		return
	}
	png, err := qrcode.Encode(p.pageURL(id), qrcode.Medium, 256)
	if err != nil {
		slog.ErrorContext(r.Context(), "encode qr failed", "short_id", id, "error", err)
		http.Error(w, "Bir hata oluştu", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(png)
}

// pageJSON is the public JSON view of a personal page.
type pageJSON struct {
	ID            uuid.UUID  `json:"id"`
	ShortID       string     `json:"short_id"`
	RecipientName string     `json:"recipient_name"`
	SenderName    string     `json:"sender_name"`
	Message       string     `json:"message"`
	TemplateTitle string     `json:"template_title"`
	BgAudioURL    *string    `json:"template_bg_audio_url"`
	ExpiresAt     time.Time  `json:"expires_at"`
	SpecialDate   *time.Time `json:"special_date"`
	IsActive      bool       `json:"is_active"`
}

// PageJSON serves GET /api/personal-pages/{shortId}.
func (p *Public) PageJSON(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "shortId")
	if !shortid.Valid(id) {
		respond.Error(w, r, apperr.ValidationError("Invalid short ID format"))
		return
	}
	page, err := p.pages.FindByShortID(r.Context(), id)
	if err != nil {
		respond.Error(w, r, apperr.Internal(err))
		return
	}
	switch shell.Evaluate(page, p.now()) {
	case shell.NotFound:
		respond.Error(w, r, apperr.NotFound("Personal page"))
		return
	case shell.Expired:
		p.expire(r.Context(), page)
		respond.Error(w, r, apperr.Gone("Personal page has expired"))
		return
	}

	title := ""
	if desc, err := p.descriptor(r.Context(), page.TemplateID); err == nil {
		title = desc.Title
	}
	respond.OK(w, pageJSON{
		ID:            page.ID,
		ShortID:       page.ShortID,
		RecipientName: page.RecipientName,
		SenderName:    page.SenderName,
		Message:       page.Message,
		TemplateTitle: title,
		BgAudioURL:    page.BgAudioURL,
		ExpiresAt:     page.ExpiresAt,
		SpecialDate:   page.SpecialDate,
		IsActive:      page.IsActive,
	})
}
