// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/fields"
)

// StringList is a []string stored as a JSONB array.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("scan string list: unsupported type %T", src)
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("scan string list: %w", err)
	}
	*l = out
	return nil
}

// Template is a catalog template as persisted. Comments, ratings and orders
// reference it by ID; rendering goes through the slug.
type Template struct {
	ID                 uuid.UUID  `json:"id"`
	Slug               string     `json:"slug"`
	Title              string     `json:"title"`
	Audience           StringList `json:"audience"`
	BackgroundAudioURL *string    `json:"bg_audio_url"`
	Description        string     `json:"description"`
	IsActive           bool       `json:"is_active"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// AITemplate is a user-generated HTML template. Regions marked with
// data-editable="key" are filled from a page's text fields when rendered.
type AITemplate struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	Slug           string     `json:"slug"`
	Title          string     `json:"title"`
	Prompt         string     `json:"prompt"`
	HTMLContent    string     `json:"html_content"`
	EditableFields fields.Map `json:"editable_fields"`
	Version        int        `json:"version"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
