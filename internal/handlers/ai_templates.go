package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/aitemplate"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/apperr"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/respond"
)

// AIService generates, refines and deletes AI templates.
// *aitemplate.Service satisfies it.
type AIService interface {
	Generate(ctx context.Context, userID uuid.UUID, in aitemplate.GenerateInput) (*aitemplate.Result, error)
	Refine(ctx context.Context, userID uuid.UUID, in aitemplate.RefineInput) (*aitemplate.Result, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// AITemplateLister lists a user's generated templates.
type AITemplateLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.AITemplate, error)
}

// AITemplates serves the AI template API.
type AITemplates struct {
	svc  AIService
	list AITemplateLister
}

// NewAITemplates creates the AITemplates handler group.
func NewAITemplates(svc AIService, list AITemplateLister) *AITemplates {
	return &AITemplates{svc: svc, list: list}
}

type aiTemplateSummary struct {
	ID       uuid.UUID `json:"id"`
	Slug     string    `json:"slug"`
	Title    string    `json:"title"`
	Category string    `json:"category,omitempty"`
	Version  int       `json:"version"`
}

type aiResultResponse struct {
	Success          bool              `json:"success"`
	Template         aiTemplateSummary `json:"template"`
	RemainingCredits int               `json:"remainingCredits"`
	Message          string            `json:"message"`
}

type needCreditsResponse struct {
	Error            string `json:"error"`
	Code             string `json:"code"`
	NeedCredits      bool   `json:"needCredits"`
	RemainingCredits int    `json:"remainingCredits"`
}

// aiError answers credit exhaustion with the body the purchase prompt
// keys off; everything else goes through the standard envelope.
func aiError(w http.ResponseWriter, r *http.Request, err error) {
	var nc *aitemplate.NeedCreditsError
	if errors.As(err, &nc) {
		respond.JSON(w, http.StatusTooManyRequests, needCreditsResponse{
			Error:            nc.Error(),
			Code:             "NEED_CREDITS",
			NeedCredits:      true,
			RemainingCredits: nc.Remaining,
		})
		return
	}
	respond.Error(w, r, err)
}

func summarize(t *models.AITemplate, category string) aiTemplateSummary {
	return aiTemplateSummary{ID: t.ID, Slug: t.Slug, Title: t.Title, Category: category, Version: t.Version}
}

// Generate serves POST /api/ai-templates/generate.
func (a *AITemplates) Generate(w http.ResponseWriter, r *http.Request) {
	uid, err := requireUser(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	var in aitemplate.GenerateInput
	if err := respond.Decode(w, r, &in); err != nil {
		respond.Error(w, r, err)
		return
	}
	res, err := a.svc.Generate(r.Context(), uid, in)
	if err != nil {
		aiError(w, r, err)
		return
	}
	respond.OK(w, aiResultResponse{
		Success:          true,
		Template:         summarize(res.Template, in.Category),
		RemainingCredits: res.RemainingCredits,
		Message:          "Template başarıyla oluşturuldu!",
	})
}

// Refine serves POST /api/ai-templates/refine.
func (a *AITemplates) Refine(w http.ResponseWriter, r *http.Request) {
	uid, err := requireUser(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	var in aitemplate.RefineInput
	if err := respond.Decode(w, r, &in); err != nil {
		respond.Error(w, r, err)
		return
	}
	res, err := a.svc.Refine(r.Context(), uid, in)
	if err != nil {
		aiError(w, r, err)
		return
	}
	respond.OK(w, aiResultResponse{
		Success:          true,
		Template:         summarize(res.Template, ""),
		RemainingCredits: res.RemainingCredits,
		Message:          "Template başarıyla güncellendi!",
	})
}

// Delete serves DELETE /api/ai-templates/{id}.
func (a *AITemplates) Delete(w http.ResponseWriter, r *http.Request) {
	uid, err := requireUser(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if err := a.svc.Delete(r.Context(), uid, id); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.OK(w, map[string]any{"success": true, "message": "Template deleted successfully"})
}

// List serves GET /api/ai-templates, the caller's templates newest first.
func (a *AITemplates) List(w http.ResponseWriter, r *http.Request) {
	uid, err := requireUser(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	ts, err := a.list.ListByUser(r.Context(), uid)
	if err != nil {
		respond.Error(w, r, apperr.Internal(err))
		return
	}
	out := make([]aiTemplateSummary, 0, len(ts))
	for i := range ts {
		out = append(out, summarize(&ts[i], ""))
	}
	respond.OK(w, map[string]any{"templates": out})
}
