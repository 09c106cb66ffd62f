// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary strings.
// Turkish letters are folded to their ASCII base (ğ→g, ı→i, ş→s) before the
// remaining characters are filtered.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, space or hyphen.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// whitespace matches runs of whitespace.
	whitespace = regexp.MustCompile(`\s+`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)

	// dotless and dotted i have no decomposition, so they are mapped by hand.
	turkish = strings.NewReplacer("ı", "i", "İ", "i", "I", "i")
)

// Fold lowercases s and strips diacritics.
func Fold(s string) string {
	s = turkish.Replace(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Generate creates a URL-friendly slug from the given string.
// Example: "Doğum Günün Kutlu Olsun!" → "dogum-gunun-kutlu-olsun"
func Generate(s string) string {
	result := Fold(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.TrimSpace(result)
	result = whitespace.ReplaceAllString(result, "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// Truncate slugifies s and cuts it to at most n bytes without leaving a
// trailing hyphen.
func Truncate(s string, n int) string {
	out := Generate(s)
	if len(out) > n {
		out = strings.TrimRight(out[:n], "-")
	}
	return out
}
