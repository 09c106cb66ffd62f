// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/apperr"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/cache"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/catalog"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/fields"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/middleware"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/render"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/respond"
)

// PreviewStore caches rendered previews. *cache.PreviewCache satisfies it.
type PreviewStore interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, html []byte)
}

// DraftStore keeps in-progress template edits. *cache.Drafts satisfies it.
type DraftStore interface {
	Create(ctx context.Context, slug, style string, seed fields.Map) (*cache.Draft, error)
	Get(ctx context.Context, id string) (*cache.Draft, error)
	Apply(ctx context.Context, id string, edits fields.Map) (*cache.Draft, error)
}

const maxDraftValue = 2000

// Templates serves the catalog listing, template previews and the
// editable draft view.
type Templates struct {
	renderer *render.Renderer
	catalog  *catalog.Catalog
	previews PreviewStore
	drafts   DraftStore
}

// NewTemplates creates the Templates handler group. previews may be nil.
func NewTemplates(renderer *render.Renderer, cat *catalog.Catalog, previews PreviewStore, drafts DraftStore) *Templates {
	return &Templates{renderer: renderer, catalog: cat, previews: previews, drafts: drafts}
}

// List renders GET /templates.
func (t *Templates) List(w http.ResponseWriter, r *http.Request) {
	t.renderer.Page(w, r, "catalog", &render.PageData{
		Title:       "Şablonlar",
		Description: "Sevdiklerinize özel mesaj sayfaları",
		Data:        map[string]any{"Templates": t.catalog.All()},
	})
}

func (t *Templates) lookup(w http.ResponseWriter, r *http.Request) (catalog.Descriptor, bool) {
	d, ok := t.catalog.Lookup(chi.URLParam(r, "slug"))
	if !ok {
		statusPage(t.renderer, w, r, http.StatusNotFound, "notFound", "Şablon bulunamadı.")
	}
	return d, ok
}

func pickStyle(slug, raw string) catalog.DesignStyle {
	if s := catalog.ParseStyle(raw); s != "" {
		return s
	}
	return catalog.DefaultStyle(slug)
}

func (t *Templates) styles(slug string) []catalog.DesignStyle {
	if catalog.IsFamily(slug) {
		return catalog.Styles
	}
	return nil
}

// Preview renders GET /templates/{slug}/preview in display mode. The
// recipient and message query parameters override the sample values.
// Anonymous full-page renders are served from the preview cache.
func (t *Templates) Preview(w http.ResponseWriter, r *http.Request) {
	d, ok := t.lookup(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	style := pickStyle(d.Slug, q.Get("style"))
	recipient := strings.TrimSpace(q.Get("recipient"))
	message := strings.TrimSpace(q.Get("message"))

	cacheable := t.previews != nil && middleware.SessionFromCtx(r.Context()) == nil && r.Header.Get("X-Partial") == ""
	key := cache.PreviewKey(d.Slug, string(style), recipient, message)
	if cacheable {
		if body, hit := t.previews.Get(r.Context(), key); hit {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Header().Set("X-Preview-Cache", "hit")
			_, _ = w.Write(body)
			return
		}
	}

	if recipient == "" {
		recipient = "Sevgilim"
	}
	in := catalog.Render(d, style, catalog.RenderContext{
		RecipientName: recipient,
		Message:       message,
		CreatorName:   "Bir Mesaj Mutluluk",
		TextFields:    fields.DefaultTextFields(d.Slug),
	})
	defer in.Close()

	body, err := t.renderer.Bytes(r, "preview", &render.PageData{
		Title:       d.Title + " · Önizleme",
		Description: d.Title,
		Data: map[string]any{
			"Template":  d,
			"Component": render.NewComponentView(in, ""),
			"Mode":      "preview",
			"Styles":    t.styles(d.Slug),
			"Style":     style,
		},
	})
	if err != nil {
		slog.ErrorContext(r.Context(), "render preview failed", "slug", d.Slug, "error", err)
		statusPage(t.renderer, w, r, http.StatusInternalServerError, "error", "")
		return
	}
	if cacheable {
		t.previews.Set(r.Context(), key, body)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
}

// Edit renders GET /templates/{slug}/edit in editable mode. A ?draft=
// parameter resumes an existing draft of the same template; otherwise a
// new draft is seeded from the template defaults.
func (t *Templates) Edit(w http.ResponseWriter, r *http.Request) {
	d, ok := t.lookup(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	style := pickStyle(d.Slug, q.Get("style"))

	var draft *cache.Draft
	if id := q.Get("draft"); cache.ValidDraftID(id) {
		got, err := t.drafts.Get(r.Context(), id)
		switch {
		case err == nil && got.Slug == d.Slug:
			draft = got
		case err != nil && !errors.Is(err, cache.ErrDraftNotFound):
			slog.ErrorContext(r.Context(), "load draft failed", "draft", id, "error", err)
		}
	}
	if draft == nil {
		created, err := t.drafts.Create(r.Context(), d.Slug, string(style), fields.DefaultTextFields(d.Slug))
		if err != nil {
			slog.ErrorContext(r.Context(), "create draft failed", "slug", d.Slug, "error", err)
			statusPage(t.renderer, w, r, http.StatusServiceUnavailable, "error", "Düzenleyici şu anda kullanılamıyor.")
			return
		}
		draft = created
	}

	in := catalog.Render(d, style, catalog.RenderContext{
		RecipientName: draft.Fields.Get("recipientName"),
		CreatorName:   "Bir Mesaj Mutluluk",
		TextFields:    draft.Fields,
		Editable:      true,
	})
	defer in.Close()

	w.Header().Set("Cache-Control", "private, no-store")
	t.renderer.Page(w, r, "preview", &render.PageData{
		Title: d.Title + " · Düzenle",
		Data: map[string]any{
			"Template":  d,
			"Component": render.NewComponentView(in, draft.ID),
			"Editable":  true,
			"Mode":      "edit",
			"Styles":    t.styles(d.Slug),
			"Style":     style,
		},
	})
}

type draftFieldsRequest struct {
	Fields map[string]string `json:"fields" validate:"required,min=1,max=32"`
}

type draftResponse struct {
	Success bool       `json:"success"`
	ID      string     `json:"id"`
	Slug    string     `json:"slug"`
	Style   string     `json:"style"`
	Fields  fields.Map `json:"fields"`
	Dirty   []string   `json:"dirty"`
}

// SaveFields handles PUT /api/drafts/{draftId}/fields, the target of the
// editor's field-change callback. Only keys the draft's component
// declares are accepted.
func (t *Templates) SaveFields(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "draftId")
	if !cache.ValidDraftID(id) {
		respond.Error(w, r, apperr.NotFound("Draft"))
		return
	}
	var req draftFieldsRequest
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	draft, err := t.drafts.Get(r.Context(), id)
	if errors.Is(err, cache.ErrDraftNotFound) {
		respond.Error(w, r, apperr.NotFound("Draft"))
		return
	}
	if err != nil {
		respond.Error(w, r, apperr.Internal(err))
		return
	}

	allowed := t.draftKeys(draft)
	var problems []apperr.FieldError
	edits := make(fields.Map, len(req.Fields))
	for k, v := range req.Fields {
		switch {
		case !allowed[k]:
			problems = append(problems, apperr.FieldError{Field: k, Message: "Unknown field"})
		case utf8.RuneCountInString(v) > maxDraftValue:
			problems = append(problems, apperr.FieldError{Field: k, Message: "Maximum 2000"})
		default:
			edits[k] = v
		}
	}
	if len(problems) > 0 {
		respond.Error(w, r, apperr.ValidationError("Validation failed", problems...))
		return
	}

	draft, err = t.drafts.Apply(r.Context(), id, edits)
	if errors.Is(err, cache.ErrDraftNotFound) {
		respond.Error(w, r, apperr.NotFound("Draft"))
		return
	}
	if err != nil {
		respond.Error(w, r, apperr.Internal(err))
		return
	}
	respond.OK(w, draftResponse{
		Success: true,
		ID:      draft.ID,
		Slug:    draft.Slug,
		Style:   draft.Style,
		Fields:  draft.Fields,
		Dirty:   draft.Dirty,
	})
}

// draftKeys lists the field keys of the component the draft renders
// with, plus the slug's order-form keys.
func (t *Templates) draftKeys(draft *cache.Draft) map[string]bool {
	keys := map[string]bool{}
	for _, c := range fields.ConfigFor(draft.Slug) {
		keys[c.Key] = true
	}
	d, ok := t.catalog.Lookup(draft.Slug)
	if !ok {
		return keys
	}
	in := catalog.Render(d, pickStyle(d.Slug, draft.Style), catalog.RenderContext{TextFields: draft.Fields})
	defer in.Close()
	for k := range in.Values() {
		keys[k] = true
	}
	return keys
}
