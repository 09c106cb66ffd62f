// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/feedback"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/pagination"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/respond"
)

// FeedbackService applies the comment and rating rules.
// *feedback.Service satisfies it.
type FeedbackService interface {
	ListComments(ctx context.Context, templateID uuid.UUID, p pagination.Params) (*feedback.Page, error)
	CreateComment(ctx context.Context, templateID, userID uuid.UUID, body string) (*models.Comment, error)
	UpdateComment(ctx context.Context, commentID, userID uuid.UUID, body string) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID, userID uuid.UUID) error
	Like(ctx context.Context, commentID, userID uuid.UUID) (int, error)
	Unlike(ctx context.Context, commentID, userID uuid.UUID) (int, error)
	Ratings(ctx context.Context, templateID uuid.UUID, userID *uuid.UUID) (*models.RatingSummary, error)
	Rate(ctx context.Context, templateID, userID uuid.UUID, rating int) (*models.RatingSummary, error)
	Unrate(ctx context.Context, templateID, userID uuid.UUID) (*models.RatingSummary, error)
}

// Feedback serves the comment, like and rating API of a template.
type Feedback struct {
	svc FeedbackService
}

// NewFeedback creates the Feedback handler group.
func NewFeedback(svc FeedbackService) *Feedback {
	return &Feedback{svc: svc}
}

type commentRequest struct {
	Comment string `json:"comment" validate:"required"`
}

type commentResponse struct {
	Success bool            `json:"success"`
	Comment *models.Comment `json:"comment"`
}

type likeResponse struct {
	Success   bool `json:"success"`
	LikeCount int  `json:"likeCount"`
}

type rateRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

// ListComments serves GET /api/templates/{id}/comments.
func (f *Feedback) ListComments(w http.ResponseWriter, r *http.Request) {
	tid, err := pathUUID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	page, err := f.svc.ListComments(r.Context(), tid, pagination.FromRequest(r))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if page.Comments == nil {
		page.Comments = []models.Comment{}
	}
	respond.OK(w, page)
}

// CreateComment serves POST /api/templates/{id}/comments.
func (f *Feedback) CreateComment(w http.ResponseWriter, r *http.Request) {
	uid, err := requireUser(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	tid, err := pathUUID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	var req commentRequest
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}
	c, err := f.svc.CreateComment(r.Context(), tid, uid, req.Comment)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Created(w, commentResponse{Success: true, Comment: c})
}

// UpdateComment serves PUT /api/templates/{id}/comments/{commentId}.
func (f *Feedback) UpdateComment(w http.ResponseWriter, r *http.Request) {
	uid, err := requireUser(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	cid, err := pathUUID(r, "commentId")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	var req commentRequest
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}
	c, err := f.svc.UpdateComment(r.Context(), cid, uid, req.Comment)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.OK(w, commentResponse{Success: true, Comment: c})
}

// DeleteComment serves DELETE /api/templates/{id}/comments/{commentId}.
func (f *Feedback) DeleteComment(w http.ResponseWriter, r *http.Request) {
	uid, err := requireUser(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	cid, err := pathUUID(r, "commentId")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if err := f.svc.DeleteComment(r.Context(), cid, uid); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.OK(w, map[string]any{"success": true, "message": "Comment deleted successfully"})
}

// Like serves POST /api/templates/{id}/comments/{commentId}/like.
func (f *Feedback) Like(w http.ResponseWriter, r *http.Request) {
	f.like(w, r, f.svc.Like)
}

// Unlike serves DELETE /api/templates/{id}/comments/{commentId}/like.
func (f *Feedback) Unlike(w http.ResponseWriter, r *http.Request) {
	f.like(w, r, f.svc.Unlike)
}

func (f *Feedback) like(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID, uuid.UUID) (int, error)) {
	uid, err := requireUser(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	cid, err := pathUUID(r, "commentId")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	n, err := op(r.Context(), cid, uid)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.OK(w, likeResponse{Success: true, LikeCount: n})
}

// Ratings serves GET /api/templates/{id}/ratings. userRating is filled for
// signed-in visitors.
func (f *Feedback) Ratings(w http.ResponseWriter, r *http.Request) {
	tid, err := pathUUID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	sum, err := f.svc.Ratings(r.Context(), tid, optionalUserID(r))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.OK(w, sum)
}

// Rate serves POST /api/templates/{id}/ratings.
func (f *Feedback) Rate(w http.ResponseWriter, r *http.Request) {
	uid, err := requireUser(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	tid, err := pathUUID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	var req rateRequest
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}
	sum, err := f.svc.Rate(r.Context(), tid, uid, req.Rating)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.OK(w, sum)
}

// Unrate serves DELETE /api/templates/{id}/ratings.
func (f *Feedback) Unrate(w http.ResponseWriter, r *http.Request) {
	uid, err := requireUser(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	tid, err := pathUUID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	sum, err := f.svc.Unrate(r.Context(), tid, uid)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.OK(w, sum)
}
