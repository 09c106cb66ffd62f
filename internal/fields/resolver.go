// Package fields resolves the displayed value of named template text fields.
// A field's value comes from one of three places: the author's local edit
// buffer (editable mode), the persisted text-field map (display mode), or a
// component-owned literal default. Resolution never fails; missing or empty
// inputs degrade to the hard default.
package fields

import (
	"regexp"
	"strconv"
	"strings"
)

// Source carries everything Resolve needs to pick a field's value.
type Source struct {
	Editable    bool
	Buffer      *Buffer // author's edit buffer, consulted only when Editable
	Persisted   Map
	HardDefault string
}

// Resolve returns the effective value of key.
//
// In editable mode the author's buffered value wins, even when empty, so an
// author can clear a field while editing. In display mode a non-empty
// persisted value wins, otherwise the hard default is shown.
func Resolve(key string, src Source) string {
	if src.Editable && src.Buffer != nil {
		if v, ok := src.Buffer.Value(key); ok {
			return v
		}
	}
	if v := src.Persisted.Get(key); v != "" {
		return v
	}
	return src.HardDefault
}

// Seed computes the initial value for a field's edit buffer: the persisted
// value, then a runtime-derived default, then the hard default.
func Seed(key string, persisted Map, runtimeDerived, hardDefault string) string {
	return FirstNonEmpty(persisted.Get(key), runtimeDerived, hardDefault)
}

// FirstNonEmpty returns the first argument that is not the empty string.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Interpolate substitutes {name} in a greeting default with the recipient's
// name. An empty name leaves the placeholder text out entirely.
func Interpolate(greeting, recipientName string) string {
	name := strings.TrimSpace(recipientName)
	if name == "" {
		out := strings.ReplaceAll(greeting, "{name}", "")
		return strings.Join(strings.Fields(out), " ")
	}
	return strings.ReplaceAll(greeting, "{name}", name)
}

var firstNumber = regexp.MustCompile(`\d+`)

// ReplaceFirstNumber swaps the first run of digits in s for n. Strings
// without digits are returned unchanged.
func ReplaceFirstNumber(s string, n int) string {
	loc := firstNumber.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + strconv.Itoa(n) + s[loc[1]:]
}
