// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package aitemplate

import (
	"errors"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

const (
	minMarkup = 50
	maxMarkup = 2 << 20
)

// ErrInvalidMarkup is wrapped by every Validate failure.
var ErrInvalidMarkup = errors.New("invalid markup")

var (
	scriptRe   = regexp.MustCompile(`(?i)<script|javascript:`)
	handlerRe  = regexp.MustCompile(`(?i)\son\w+\s*=`)
	embedRe    = regexp.MustCompile(`(?i)<(iframe|object|embed|applet)`)
	fenceRe    = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*\\n(.*?)\\n?```\\s*$")
	colorRe    = regexp.MustCompile(`(?s)<!--\s*COLOR_SCHEME.*?-->`)
	invalidMsg = map[*regexp.Regexp]string{
		scriptRe:  "HTML contains potentially dangerous script tags",
		handlerRe: "HTML contains event handlers which are not allowed",
		embedRe:   "HTML contains embedded content which is not allowed",
	}
)

type markupError string

func (e markupError) Error() string { return string(e) }
func (e markupError) Unwrap() error { return ErrInvalidMarkup }

// Validate rejects markup a provider should never have produced.
func Validate(markup string) error {
	for _, re := range []*regexp.Regexp{scriptRe, handlerRe, embedRe} {
		if re.MatchString(markup) {
			return markupError(invalidMsg[re])
		}
	}
	if len(strings.TrimSpace(markup)) < minMarkup {
		return markupError("HTML content is too short")
	}
	if len(markup) > maxMarkup {
		return markupError("HTML content is too large")
	}
	return nil
}

// Extract pulls the markup out of a raw provider reply: code fences and
// the colour scheme comment are removed.
func Extract(raw string) string {
	s := strings.TrimSpace(raw)
	if m := fenceRe.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	s = colorRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("section", "header", "footer", "main", "article", "aside", "figure", "figcaption", "span", "div")
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("data-editable", "data-creator-name", "data-color-key").Globally()
	p.AllowAttrs("aria-hidden", "role").Globally()
	p.AllowImages()
	p.AllowDataURIImages()
	p.RequireNoFollowOnLinks(true)
	return p
}

// Sanitize strips everything outside the allowed element and attribute
// set. Tailwind classes and the editable markers survive.
func Sanitize(markup string) string {
	return strings.TrimSpace(policy.Sanitize(markup))
}
