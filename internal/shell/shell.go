// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package shell decides what a visitor of /m/{shortId} sees: the rendered
// greeting, an inactive notice, an expired notice or a not-found page. It
// also builds the final text-field map a page is rendered with.
package shell

import (
	"time"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/fields"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
)

// State is the view a personal page resolves to.
type State string

const (
	Active   State = "active"
	Inactive State = "inactive"
	Expired  State = "expired"
	NotFound State = "notFound"
)

// Evaluate classifies page at now. Expiry is checked before the active
// flag so an expired page keeps its expired view after housekeeping has
// deactivated it.
func Evaluate(page *models.PersonalPage, now time.Time) State {
	switch {
	case page == nil:
		return NotFound
	case page.ExpiredAt(now):
		return Expired
	case !page.IsActive:
		return Inactive
	default:
		return Active
	}
}

// Merge builds the text fields a page is rendered with. Layers from lowest
// to highest precedence: the template's default fields, the page's own
// fields, the linked order's fields, then the page's core columns. order
// may be nil.
func Merge(page *models.PersonalPage, order *models.Order, defaults fields.Map) fields.Map {
	var orderFields fields.Map
	if order != nil {
		orderFields = order.TextFields
	}
	core := fields.Map{
		"recipient_name": page.RecipientName,
		"sender_name":    page.SenderName,
		"message":        page.Message,
	}
	if page.SpecialDate != nil {
		core["special_date"] = page.SpecialDate.Format(time.DateOnly)
	}
	return fields.Merge(defaults, page.TextFields, orderFields, core)
}

// Remaining is a countdown split into display units.
type Remaining struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Zero reports whether the countdown has run out.
func (r Remaining) Zero() bool {
	return r == Remaining{}
}

// Countdown splits the time left until expiresAt. It is all zero once the
// page has expired.
func Countdown(expiresAt, now time.Time) Remaining {
	d := expiresAt.Sub(now)
	if d <= 0 {
		return Remaining{}
	}
	secs := int(d / time.Second)
	return Remaining{
		Days:    secs / 86400,
		Hours:   secs % 86400 / 3600,
		Minutes: secs % 3600 / 60,
		Seconds: secs % 60,
	}
}
