// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/apperr"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/catalog"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/respond"
)

// TemplateUpserter writes catalog entries to the templates table.
type TemplateUpserter interface {
	Upsert(ctx context.Context, t *models.Template) (*models.Template, error)
}

// PreviewInvalidator drops cached previews. *cache.PreviewCache satisfies it.
type PreviewInvalidator interface {
	InvalidateSlug(ctx context.Context, slug string) int
	InvalidateAll(ctx context.Context) int
}

// PackageWriter creates or updates credit packages.
type PackageWriter interface {
	UpsertPackage(ctx context.Context, p models.CreditPackage) error
}

// PageExpirer flags every past-expiry page inactive.
type PageExpirer interface {
	DeactivateExpired(ctx context.Context) (int64, error)
}

// UserCounter counts accounts.
type UserCounter interface {
	Count(ctx context.Context) (int, error)
}

// AIStatus reports provider readiness. *ai.Registry satisfies it.
type AIStatus interface {
	Ready() bool
	Available() []string
	CanModerate() bool
}

// AdminDeps bundles what the admin API touches.
type AdminDeps struct {
	Catalog   *catalog.Catalog
	Templates TemplateUpserter
	Previews  PreviewInvalidator
	Packages  PackageWriter
	Pages     PageExpirer
	Users     UserCounter
	AI        AIStatus
}

// Admin serves the maintenance API under /api/admin. Every route is
// mounted behind RequireAdmin.
type Admin struct {
	AdminDeps
}

// NewAdmin creates the Admin handler group.
func NewAdmin(deps AdminDeps) *Admin {
	return &Admin{AdminDeps: deps}
}

type adminStatus struct {
	Users     int      `json:"users"`
	Templates int      `json:"templates"`
	AIReady   bool     `json:"aiReady"`
	Providers []string `json:"providers"`
	Moderated bool     `json:"moderation"`
}

// Status serves GET /api/admin/status.
func (a *Admin) Status(w http.ResponseWriter, r *http.Request) {
	n, err := a.Users.Count(r.Context())
	if err != nil {
		respond.Error(w, r, apperr.Internal(err))
		return
	}
	st := adminStatus{Users: n, Templates: len(a.Catalog.All()), Providers: []string{}}
	if a.AI != nil {
		st.AIReady = a.AI.Ready()
		st.Providers = a.AI.Available()
		st.Moderated = a.AI.CanModerate()
	}
	respond.OK(w, st)
}

// SyncTemplates serves POST /api/admin/templates/sync: it writes every
// catalog entry to the database and clears the preview cache.
func (a *Admin) SyncTemplates(w http.ResponseWriter, r *http.Request) {
	all := a.Catalog.All()
	for _, d := range all {
		row := &models.Template{
			Slug:        d.Slug,
			Title:       d.Title,
			Audience:    models.StringList(d.Audience),
			Description: d.Description,
		}
		if d.BackgroundAudioURL != "" {
			audio := d.BackgroundAudioURL
			row.BackgroundAudioURL = &audio
		}
		if _, err := a.Templates.Upsert(r.Context(), row); err != nil {
			respond.Error(w, r, apperr.Internal(err))
			return
		}
	}
	cleared := 0
	if a.Previews != nil {
		cleared = a.Previews.InvalidateAll(r.Context())
	}
	slog.InfoContext(r.Context(), "catalog synced by admin", "templates", len(all), "previews_cleared", cleared)
	respond.OK(w, map[string]any{"success": true, "synced": len(all), "previewsCleared": cleared})
}

// InvalidatePreviews serves DELETE /api/admin/previews and
// DELETE /api/admin/previews/{slug}.
func (a *Admin) InvalidatePreviews(w http.ResponseWriter, r *http.Request) {
	if a.Previews == nil {
		respond.Error(w, r, apperr.Unavailable("Preview cache is not configured"))
		return
	}
	slug := chi.URLParam(r, "slug")
	var n int
	if slug == "" {
		n = a.Previews.InvalidateAll(r.Context())
	} else {
		if _, ok := a.Catalog.Lookup(slug); !ok {
			respond.Error(w, r, apperr.NotFound("Template"))
			return
		}
		n = a.Previews.InvalidateSlug(r.Context(), slug)
	}
	respond.OK(w, map[string]any{"success": true, "deleted": n})
}

type packageRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	Subtitle   string `json:"subtitle" validate:"max=200"`
	Credits    int    `json:"credits" validate:"required,min=1,max=10000"`
	PriceCents int64  `json:"priceCents" validate:"required,min=100"`
	IsPopular  bool   `json:"isPopular"`
	IsActive   bool   `json:"isActive"`
}

// UpsertPackage serves PUT /api/admin/credit-packages/{id}.
func (a *Admin) UpsertPackage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if problem := validatePackageID(id); problem != "" {
		respond.Error(w, r, apperr.ValidationError(problem))
		return
	}
	var req packageRequest
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}
	pkg := models.CreditPackage{
		ID:         id,
		Name:       req.Name,
		Subtitle:   req.Subtitle,
		Credits:    req.Credits,
		PriceCents: req.PriceCents,
		IsPopular:  req.IsPopular,
		IsActive:   req.IsActive,
	}
	if err := a.Packages.UpsertPackage(r.Context(), pkg); err != nil {
		respond.Error(w, r, apperr.Internal(err))
		return
	}
	respond.OK(w, map[string]any{"success": true, "package": pkg})
}

// ExpirePages serves POST /api/admin/pages/expire, the manual trigger of
// the expiry sweep that also runs on a timer.
func (a *Admin) ExpirePages(w http.ResponseWriter, r *http.Request) {
	n, err := a.Pages.DeactivateExpired(r.Context())
	if err != nil {
		respond.Error(w, r, apperr.Internal(err))
		return
	}
	respond.OK(w, map[string]any{"success": true, "deactivated": n})
}
