package catalog

import "strings"

// DesignStyle selects one visual variant of a template family.
type DesignStyle string

const (
	Modern     DesignStyle = "modern"
	Classic    DesignStyle = "classic"
	Minimalist DesignStyle = "minimalist"
	Eglenceli  DesignStyle = "eglenceli"
)

// Styles lists every design style in display order.
var Styles = []DesignStyle{Modern, Classic, Minimalist, Eglenceli}

// ParseStyle normalises s into a DesignStyle. It never fails: anything it
// does not recognise comes back as "" and the dispatcher substitutes the
// family default.
func ParseStyle(s string) DesignStyle {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "modern":
		return Modern
	case "classic":
		return Classic
	case "minimalist":
		return Minimalist
	case "eglenceli", "fun":
		return Eglenceli
	}
	return ""
}

// Label returns the Turkish display name of the style.
func (s DesignStyle) Label() string {
	switch s {
	case Modern:
		return "Modern"
	case Classic:
		return "Klasik"
	case Minimalist:
		return "Minimalist"
	case Eglenceli:
		return "Eğlenceli"
	}
	return ""
}
