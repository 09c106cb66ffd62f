package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a template review joined with its author and like count.
type Comment struct {
	ID         uuid.UUID `json:"id"`
	TemplateID uuid.UUID `json:"template_id"`
	UserID     uuid.UUID `json:"user_id"`
	UserName   string    `json:"user_name"`
	Comment    string    `json:"comment"`
	IsApproved bool      `json:"-"`
	LikeCount  int       `json:"like_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RatingSummary aggregates a template's ratings. UserRating is nil when the
// caller is anonymous or has not rated.
type RatingSummary struct {
	TemplateID    uuid.UUID `json:"templateId"`
	AverageRating float64   `json:"averageRating"`
	TotalRatings  int       `json:"totalRatings"`
	UserRating    *int      `json:"userRating"`
}
