package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/apperr"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/fields"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/respond"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/shortid"
)

type pageFieldsRequest struct {
	Fields map[string]string `json:"fields" validate:"required,min=1,max=32"`
}

// ownedPage loads the {shortId} page and checks that uid bought it. A page
// whose order is gone has no owner and cannot be changed by anyone.
func (p *Public) ownedPage(r *http.Request, uid uuid.UUID) (*models.PersonalPage, error) {
	id := chi.URLParam(r, "shortId")
	if !shortid.Valid(id) {
		return nil, apperr.ValidationError("Invalid short ID format")
	}
	page, err := p.pages.FindByShortID(r.Context(), id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if page == nil {
		return nil, apperr.NotFound("Personal page")
	}
	forbidden := apperr.Forbidden("Forbidden - You do not own this page")
	if page.OrderID == nil {
		return nil, forbidden
	}
	order, err := p.orders.FindByID(r.Context(), *page.OrderID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if order == nil || order.UserID == nil || *order.UserID != uid {
		return nil, forbidden
	}
	return page, nil
}

// UpdateFields serves PUT /api/personal-pages/{shortId}/fields. The owner
// edits text fields after purchase. Values are validated against the
// template's field configs merged over what the page already holds, and
// empty values leave stored ones in place.
func (p *Public) UpdateFields(w http.ResponseWriter, r *http.Request) {
	uid, err := requireUser(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	page, err := p.ownedPage(r, uid)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if page.ExpiredAt(p.now()) {
		respond.Error(w, r, apperr.Gone("This personal page has expired"))
		return
	}

	var req pageFieldsRequest
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	slug := ""
	if page.TemplateID != nil {
		t, err := p.templates.FindByID(r.Context(), *page.TemplateID)
		if err != nil {
			respond.Error(w, r, apperr.Internal(err))
			return
		}
		if t != nil {
			slug = t.Slug
		}
	}

	edits := fields.Map(req.Fields).Compact()
	if problems := fields.Validate(slug, fields.Merge(page.TextFields, edits)); len(problems) > 0 {
		details := make([]apperr.FieldError, 0, len(problems))
		for k, msg := range problems {
			details = append(details, apperr.FieldError{Field: "fields." + k, Message: msg})
		}
		respond.Error(w, r, apperr.ValidationError("Validation failed", details...))
		return
	}

	updated, err := p.pages.UpdateTextFields(r.Context(), page.ShortID, edits)
	if err != nil {
		respond.Error(w, r, apperr.Internal(err))
		return
	}
	if updated == nil {
		respond.Error(w, r, apperr.NotFound("Personal page"))
		return
	}
	respond.OK(w, map[string]any{"shortId": updated.ShortID, "textFields": updated.TextFields})
}
