package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/apperr"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/email"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/respond"
)

// Mailer sends transactional emails. *email.Client satisfies it.
type Mailer interface {
	Send(ctx context.Context, kind email.Kind, to string, data email.Data) (string, error)
}

// Email serves POST /api/send-email.
type Email struct {
	mailer Mailer
}

// NewEmail creates the Email handler.
func NewEmail(mailer Mailer) *Email {
	return &Email{mailer: mailer}
}

type sendEmailRequest struct {
	Type string     `json:"type" validate:"required"`
	To   string     `json:"to" validate:"required,email"`
	Data email.Data `json:"data"`
}

type sendEmailResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Skipped   bool   `json:"skipped,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Send validates the per-kind data and sends the email. Without a
// provider key the request succeeds with skipped set.
func (e *Email) Send(w http.ResponseWriter, r *http.Request) {
	var req sendEmailRequest
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}
	kind := email.Kind(req.Type)
	if !kind.Valid() {
		respond.Error(w, r, apperr.ValidationError("Geçersiz email tipi."))
		return
	}

	id, err := e.mailer.Send(r.Context(), kind, req.To, req.Data)
	var de *email.DataError
	switch {
	case errors.As(err, &de):
		respond.Error(w, r, apperr.ValidationError(de.Message))
	case errors.Is(err, email.ErrNotConfigured):
		respond.OK(w, sendEmailResponse{Success: true, Skipped: true, Message: "Email service not configured, email skipped"})
	case err != nil:
		respond.Error(w, r, apperr.Internal(err).WithMessage("Email gönderilemedi."))
	default:
		respond.OK(w, sendEmailResponse{Success: true, MessageID: id})
	}
}
