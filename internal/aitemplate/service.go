// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package aitemplate turns a user's description into a stored greeting
// template: it checks the AI credit balance, prompts the provider,
// validates and sanitises the reply, records the editable regions and
// charges one credit before the result is stored.
package aitemplate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/ai"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/apperr"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/engine"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/fields"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/store"
)

// Generator produces markup from prompts.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Ready() bool
}

// Credits is the credit ledger the service charges.
type Credits interface {
	Balance(ctx context.Context, userID uuid.UUID) (models.CreditBalance, error)
	UseCredit(ctx context.Context, userID uuid.UUID, aiTemplateID *uuid.UUID, description string) (models.CreditBalance, error)
	RefundCredit(ctx context.Context, userID uuid.UUID, description string) (models.CreditBalance, error)
}

// Templates persists generated templates.
type Templates interface {
	Create(ctx context.Context, t *models.AITemplate) (*models.AITemplate, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.AITemplate, error)
	UpdateContent(ctx context.Context, id, userID uuid.UUID, html string, editable map[string]string) (*models.AITemplate, error)
	Delete(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

// Invalidator drops cached renders of a template.
type Invalidator interface {
	Invalidate(id uuid.UUID)
}

// NeedCreditsError is returned when the balance is exhausted.
type NeedCreditsError struct {
	Remaining int
}

func (e *NeedCreditsError) Error() string {
	return fmt.Sprintf("AI kullanım krediniz kalmadı. Yeni kredi paketi satın alarak devam edebilirsiniz. (Kalan: %d)", e.Remaining)
}

// Default text for regions every generated page shows.
var defaultFields = fields.Map{
	"recipientName": "Sevgilim",
	"mainMessage":   "Bu özel mesaj senin için yapay zeka tarafından oluşturuldu.",
	"footerMessage": "Seni düşünen birinden ❤️",
}

// GenerateInput is a request for a new template.
type GenerateInput struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Prompt   string `json:"userPrompt"`
}

// RefineInput is a request to change an existing template.
type RefineInput struct {
	TemplateID uuid.UUID `json:"templateId"`
	Prompt     string    `json:"refinePrompt"`
}

// Result is a stored template and the credits left after charging.
type Result struct {
	Template         *models.AITemplate
	RemainingCredits int
}

// Service runs generation and refinement.
type Service struct {
	gen       Generator
	credits   Credits
	templates Templates
	cache     Invalidator
	now       func() time.Time
}

// NewService wires a Service. cache may be nil.
func NewService(gen Generator, credits Credits, templates Templates, cache Invalidator) *Service {
	return &Service{gen: gen, credits: credits, templates: templates, cache: cache, now: time.Now}
}

func (in GenerateInput) validate() error {
	switch {
	case utf8.RuneCountInString(strings.TrimSpace(in.Title)) < 3:
		return apperr.ValidationError("Title is required and must be at least 3 characters long.")
	case in.Category == "":
		return apperr.ValidationError("Category is required.")
	case !ValidCategory(in.Category):
		return apperr.ValidationError("Invalid category selected.")
	case utf8.RuneCountInString(strings.TrimSpace(in.Prompt)) < 10:
		return apperr.ValidationError("Prompt is required and must be at least 10 characters long.")
	case utf8.RuneCountInString(in.Prompt) > 1000:
		return apperr.ValidationError("Prompt is too long. Maximum 1000 characters.")
	}
	return nil
}

func (in RefineInput) validate() error {
	switch {
	case in.TemplateID == uuid.Nil:
		return apperr.ValidationError("Template ID is required.")
	case utf8.RuneCountInString(strings.TrimSpace(in.Prompt)) < 5:
		return apperr.ValidationError("Refine prompt is required and must be at least 5 characters long.")
	case utf8.RuneCountInString(in.Prompt) > 500:
		return apperr.ValidationError("Refine prompt is too long. Maximum 500 characters.")
	}
	return nil
}

// checkCredits fails with *NeedCreditsError when nothing is left.
func (s *Service) checkCredits(ctx context.Context, userID uuid.UUID) error {
	b, err := s.credits.Balance(ctx, userID)
	if err != nil {
		return fmt.Errorf("read credits: %w", err)
	}
	if !b.CanUseAI() {
		return &NeedCreditsError{Remaining: b.Remaining()}
	}
	return nil
}

// Generate creates a new template for userID.
func (s *Service) Generate(ctx context.Context, userID uuid.UUID, in GenerateInput) (*Result, error) {
	if err := s.checkCredits(ctx, userID); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	if !s.gen.Ready() {
		return nil, apperr.Unavailable("AI template generation is not configured. Please contact support.")
	}

	markup, editable, err := s.produce(ctx, GeneratePrompt(in.Category, in.Prompt))
	if err != nil {
		return nil, err
	}

	const what = "AI template oluşturma"
	bal, err := s.charge(ctx, userID, nil, what)
	if err != nil {
		return nil, err
	}

	t, err := s.templates.Create(ctx, &models.AITemplate{
		UserID:         userID,
		Slug:           Slug(userID, in.Title, s.now()),
		Title:          strings.TrimSpace(in.Title),
		Prompt:         strings.TrimSpace(in.Prompt),
		HTMLContent:    markup,
		EditableFields: editable,
	})
	if err != nil {
		s.refund(ctx, userID, what)
		return nil, fmt.Errorf("save ai template: %w", err)
	}

	return &Result{Template: t, RemainingCredits: bal.Remaining()}, nil
}

// Refine rewrites a template owned by userID.
func (s *Service) Refine(ctx context.Context, userID uuid.UUID, in RefineInput) (*Result, error) {
	if err := s.checkCredits(ctx, userID); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	if !s.gen.Ready() {
		return nil, apperr.Unavailable("AI template refinement is not configured. Please contact support.")
	}

	current, err := s.templates.FindByID(ctx, in.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("load ai template: %w", err)
	}
	if current == nil || current.UserID != userID {
		return nil, apperr.NotFound("Template")
	}

	markup, editable, err := s.produce(ctx, RefinePrompt(current.HTMLContent, in.Prompt))
	if err != nil {
		return nil, err
	}

	const what = "AI template düzenleme"
	bal, err := s.charge(ctx, userID, &current.ID, what)
	if err != nil {
		return nil, err
	}

	t, err := s.templates.UpdateContent(ctx, current.ID, userID, markup, editable)
	if err != nil {
		s.refund(ctx, userID, what)
		return nil, fmt.Errorf("update ai template: %w", err)
	}
	if t == nil {
		s.refund(ctx, userID, what)
		return nil, apperr.NotFound("Template")
	}
	if s.cache != nil {
		s.cache.Invalidate(t.ID)
	}

	return &Result{Template: t, RemainingCredits: bal.Remaining()}, nil
}

// Delete removes a template owned by userID.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	ok, err := s.templates.Delete(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("delete ai template: %w", err)
	}
	if !ok {
		return apperr.NotFound("Template")
	}
	if s.cache != nil {
		s.cache.Invalidate(id)
	}
	return nil
}

// produce prompts the provider and returns sanitised markup with its
// editable regions merged over the default texts.
func (s *Service) produce(ctx context.Context, userPrompt string) (string, fields.Map, error) {
	raw, err := s.gen.Generate(ctx, SystemPrompt, userPrompt)
	if err != nil {
		return "", nil, providerError(err)
	}

	markup := Extract(raw)
	if markup == "" {
		return "", nil, apperr.Internal(errors.New("empty provider reply")).
			WithMessage("Failed to generate template. Please try again.")
	}
	if err := Validate(markup); err != nil {
		return "", nil, apperr.Internal(err).WithMessage("Generated template validation failed: " + err.Error())
	}
	markup = Sanitize(markup)

	found, _, err := engine.Editable(markup)
	if err != nil {
		return "", nil, apperr.Internal(err)
	}
	return markup, fields.Merge(defaultFields, found), nil
}

// charge takes one credit before a result is stored. The balance read at
// the start of a request may be stale, so running out here still fails
// with *NeedCreditsError and nothing is saved.
func (s *Service) charge(ctx context.Context, userID uuid.UUID, templateID *uuid.UUID, description string) (models.CreditBalance, error) {
	b, err := s.credits.UseCredit(ctx, userID, templateID, description)
	if errors.Is(err, store.ErrNoCredits) {
		return models.CreditBalance{}, &NeedCreditsError{}
	}
	if err != nil {
		return models.CreditBalance{}, fmt.Errorf("charge ai credit: %w", err)
	}
	return b, nil
}

// refund returns a charged credit when the result could not be stored.
func (s *Service) refund(ctx context.Context, userID uuid.UUID, description string) {
	if _, err := s.credits.RefundCredit(context.WithoutCancel(ctx), userID, description+" iadesi"); err != nil {
		slog.ErrorContext(ctx, "refund ai credit", "user_id", userID, "error", err)
	}
}

func providerError(err error) error {
	var se *ai.StatusError
	if errors.As(err, &se) {
		switch {
		case se.Busy():
			return apperr.RateLimited(30).Wrap(err).WithMessage("AI service is currently busy. Please try again in a moment.")
		case se.Unauthorized():
			return apperr.Internal(err).WithMessage("AI service authentication failed. Please contact support.")
		}
	}
	return apperr.Internal(err).WithMessage("An unexpected error occurred. Please try again.")
}
