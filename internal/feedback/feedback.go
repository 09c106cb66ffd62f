// Package feedback implements template comments, comment likes and star
// ratings on top of the comment and rating stores.
package feedback

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/ai"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/apperr"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/markdown"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/pagination"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/store"
)

const (
	minComment = 10
	maxComment = 1000
)

// Comments is the comment persistence the service needs.
type Comments interface {
	List(ctx context.Context, templateID uuid.UUID, p pagination.Params) ([]models.Comment, int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	Create(ctx context.Context, templateID, userID uuid.UUID, body string, approved bool) (*models.Comment, error)
	Update(ctx context.Context, id, userID uuid.UUID, body string, approved bool) (*models.Comment, error)
	Delete(ctx context.Context, id, userID uuid.UUID) (bool, error)
	Like(ctx context.Context, commentID, userID uuid.UUID) (int, error)
	Unlike(ctx context.Context, commentID, userID uuid.UUID) (int, error)
}

// Ratings is the rating persistence the service needs.
type Ratings interface {
	Summary(ctx context.Context, templateID uuid.UUID, userID *uuid.UUID) (*models.RatingSummary, error)
	UserRating(ctx context.Context, templateID, userID uuid.UUID) (*int, error)
	Upsert(ctx context.Context, templateID, userID uuid.UUID, rating int) error
	Delete(ctx context.Context, templateID, userID uuid.UUID) error
}

// Templates resolves the template being commented on.
type Templates interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Template, error)
}

// Moderator screens comment text. *ai.Registry satisfies it.
type Moderator interface {
	CanModerate() bool
	Moderate(ctx context.Context, text string) (*ai.ModerationResult, error)
}

// Service applies the comment and rating rules.
type Service struct {
	comments  Comments
	ratings   Ratings
	templates Templates
	moderator Moderator
}

// NewService wires a Service. moderator may be nil.
func NewService(comments Comments, ratings Ratings, templates Templates, moderator Moderator) *Service {
	return &Service{comments: comments, ratings: ratings, templates: templates, moderator: moderator}
}

// Page is one page of approved comments.
type Page struct {
	Comments   []models.Comment `json:"comments"`
	Pagination pagination.Meta  `json:"pagination"`
}

// ListComments returns approved comments, newest first.
func (s *Service) ListComments(ctx context.Context, templateID uuid.UUID, p pagination.Params) (*Page, error) {
	items, total, err := s.comments.List(ctx, templateID, p)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return &Page{Comments: items, Pagination: pagination.NewMeta(p, total)}, nil
}

// cleanComment strips markup and enforces the length bounds.
func cleanComment(body string) (string, error) {
	body = strings.TrimSpace(html.UnescapeString(markdown.StripTags(body)))
	if body == "" {
		return "", apperr.ValidationError("Comment is required")
	}
	if n := utf8.RuneCountInString(body); n < minComment || n > maxComment {
		return "", apperr.ValidationError("Comment must be between 10 and 1000 characters")
	}
	return body, nil
}

func (s *Service) requireTemplate(ctx context.Context, id uuid.UUID) error {
	t, err := s.templates.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find template: %w", err)
	}
	if t == nil || !t.IsActive {
		return apperr.NotFound("Template")
	}
	return nil
}

// approved screens text. Moderation failures let the comment through.
func (s *Service) approved(ctx context.Context, text string) bool {
	if s.moderator == nil || !s.moderator.CanModerate() {
		return true
	}
	res, err := s.moderator.Moderate(ctx, text)
	if err != nil {
		slog.WarnContext(ctx, "comment moderation failed", "error", err)
		return true
	}
	if !res.Safe {
		slog.InfoContext(ctx, "comment held for review", "categories", res.Categories)
	}
	return res.Safe
}

// CreateComment adds userID's single comment on a template. The user must
// have rated the template first.
func (s *Service) CreateComment(ctx context.Context, templateID, userID uuid.UUID, body string) (*models.Comment, error) {
	body, err := cleanComment(body)
	if err != nil {
		return nil, err
	}
	if err := s.requireTemplate(ctx, templateID); err != nil {
		return nil, err
	}

	r, err := s.ratings.UserRating(ctx, templateID, userID)
	if err != nil {
		return nil, fmt.Errorf("read rating: %w", err)
	}
	if r == nil || *r < 1 {
		return nil, apperr.Forbidden("Yorum yapmak için lütfen önce puan verin")
	}

	c, err := s.comments.Create(ctx, templateID, userID, body, s.approved(ctx, body))
	if errors.Is(err, store.ErrDuplicate) {
		return nil, apperr.Conflict("Bu şablona zaten yorum yapmışsınız. Her şablona sadece bir yorum yapabilirsiniz.")
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateComment rewrites a comment owned by userID.
func (s *Service) UpdateComment(ctx context.Context, commentID, userID uuid.UUID, body string) (*models.Comment, error) {
	body, err := cleanComment(body)
	if err != nil {
		return nil, err
	}
	c, err := s.comments.Update(ctx, commentID, userID, body, s.approved(ctx, body))
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("Comment").WithMessage("Comment not found or unauthorized")
	}
	return c, nil
}

// DeleteComment removes a comment owned by userID.
func (s *Service) DeleteComment(ctx context.Context, commentID, userID uuid.UUID) error {
	ok, err := s.comments.Delete(ctx, commentID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("Comment").WithMessage("Comment not found or unauthorized")
	}
	return nil
}

// Like adds userID's like and returns the new count.
func (s *Service) Like(ctx context.Context, commentID, userID uuid.UUID) (int, error) {
	c, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return 0, err
	}
	if c == nil {
		return 0, apperr.NotFound("Comment")
	}
	n, err := s.comments.Like(ctx, commentID, userID)
	if errors.Is(err, store.ErrDuplicate) {
		return 0, apperr.Conflict("Comment already liked")
	}
	return n, err
}

// Unlike removes userID's like and returns the new count.
func (s *Service) Unlike(ctx context.Context, commentID, userID uuid.UUID) (int, error) {
	return s.comments.Unlike(ctx, commentID, userID)
}

// Ratings returns the aggregate for a template. userID may be nil.
func (s *Service) Ratings(ctx context.Context, templateID uuid.UUID, userID *uuid.UUID) (*models.RatingSummary, error) {
	if err := s.requireTemplate(ctx, templateID); err != nil {
		return nil, err
	}
	return s.ratings.Summary(ctx, templateID, userID)
}

// Rate records a 1..5 rating and returns the fresh aggregate.
func (s *Service) Rate(ctx context.Context, templateID, userID uuid.UUID, rating int) (*models.RatingSummary, error) {
	if rating < 1 || rating > 5 {
		return nil, apperr.ValidationError("Rating must be an integer between 1 and 5")
	}
	if err := s.requireTemplate(ctx, templateID); err != nil {
		return nil, err
	}
	if err := s.ratings.Upsert(ctx, templateID, userID, rating); err != nil {
		return nil, err
	}
	return s.ratings.Summary(ctx, templateID, &userID)
}

// Unrate removes userID's rating and returns the fresh aggregate.
func (s *Service) Unrate(ctx context.Context, templateID, userID uuid.UUID) (*models.RatingSummary, error) {
	if err := s.ratings.Delete(ctx, templateID, userID); err != nil {
		return nil, err
	}
	return s.ratings.Summary(ctx, templateID, &userID)
}
