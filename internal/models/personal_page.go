package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/fields"
)

// PersonalPage is the purchased, shareable greeting page served at
// /m/{short_id} until it expires.
type PersonalPage struct {
	ID               uuid.UUID  `json:"id"`
	OrderID          *uuid.UUID `json:"order_id,omitempty"`
	ShortID          string     `json:"short_id"`
	TemplateID       *uuid.UUID `json:"template_id,omitempty"`
	AITemplateID     *uuid.UUID `json:"ai_template_id,omitempty"`
	RecipientName    string     `json:"recipient_name"`
	SenderName       string     `json:"sender_name"`
	Message          string     `json:"message"`
	SpecialDate      *time.Time `json:"special_date,omitempty"`
	DesignStyle      string     `json:"design_style"`
	TextFields       fields.Map `json:"text_fields"`
	BgAudioURL       *string    `json:"bg_audio_url,omitempty"`
	ExpiresAt        time.Time  `json:"expires_at"`
	IsActive         bool       `json:"is_active"`
	ShareTitle       string     `json:"share_title,omitempty"`
	ShareDescription string     `json:"share_description,omitempty"`
	ShareSiteName    string     `json:"share_site_name,omitempty"`
	ShareImageURL    string     `json:"share_image_url,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// ExpiredAt reports whether the page's lifetime has ended at now. The
// expiry instant itself counts as expired.
func (p *PersonalPage) ExpiredAt(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}
