package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
)

// RatingStore handles 1-5 star template ratings, one per user.
type RatingStore struct {
	db *sql.DB
}

// NewRatingStore creates a new RatingStore with the given database connection.
func NewRatingStore(db *sql.DB) *RatingStore {
	return &RatingStore{db: db}
}

// Summary returns the template's average and count. When userID is non-nil
// the caller's own rating is included.
func (s *RatingStore) Summary(ctx context.Context, templateID uuid.UUID, userID *uuid.UUID) (*models.RatingSummary, error) {
	sum := &models.RatingSummary{TemplateID: templateID}
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(ROUND(AVG(rating)::NUMERIC, 1), 0)::FLOAT8, COUNT(*)
		FROM template_ratings WHERE template_id = $1`,
		templateID).Scan(&sum.AverageRating, &sum.TotalRatings)
	if err != nil {
		return nil, fmt.Errorf("rating summary: %w", err)
	}

	if userID != nil {
		r, err := s.UserRating(ctx, templateID, *userID)
		if err != nil {
			return nil, err
		}
		sum.UserRating = r
	}
	return sum, nil
}

// UserRating returns the user's rating for a template, or nil if none.
func (s *RatingStore) UserRating(ctx context.Context, templateID, userID uuid.UUID) (*int, error) {
	var r int
	err := s.db.QueryRowContext(ctx,
		`SELECT rating FROM template_ratings WHERE template_id = $1 AND user_id = $2`,
		templateID, userID).Scan(&r)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user rating: %w", err)
	}
	return &r, nil
}

// Upsert sets the user's rating, replacing any earlier one.
func (s *RatingStore) Upsert(ctx context.Context, templateID, userID uuid.UUID, rating int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO template_ratings (template_id, user_id, rating)
		VALUES ($1, $2, $3)
		ON CONFLICT (template_id, user_id) DO UPDATE SET rating = EXCLUDED.rating, updated_at = NOW()`,
		templateID, userID, rating)
	if err != nil {
		return fmt.Errorf("upsert rating: %w", err)
	}
	return nil
}

// Delete removes the user's rating.
func (s *RatingStore) Delete(ctx context.Context, templateID, userID uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM template_ratings WHERE template_id = $1 AND user_id = $2`, templateID, userID); err != nil {
		return fmt.Errorf("delete rating: %w", err)
	}
	return nil
}
