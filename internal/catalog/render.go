package catalog

import (
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/components"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/fields"
)

// RenderContext carries the per-page values a component is rendered with.
type RenderContext struct {
	RecipientName string
	Message       string
	CreatorName   string
	TextFields    fields.Map
	Editable      bool
	OnFieldChange fields.ChangeFunc
	After         components.AfterFunc
}

// primaryMessage applies the per-slug rules for which value feeds a
// component's main field.
func primaryMessage(slug string, rc RenderContext) string {
	switch slug {
	case "mutlu-yillar-celebration":
		return fields.FirstNonEmpty(rc.TextFields.Get("message"), rc.Message)
	case "mutlu-yillar-fun", "yil-donumu":
		return fields.FirstNonEmpty(rc.TextFields.Get("mainMessage"), rc.Message)
	case "kandil-tebrigi":
		return ""
	}
	return rc.Message
}

// Render dispatches d and style to a component and instantiates it.
func Render(d Descriptor, style DesignStyle, rc RenderContext) *components.Instance {
	spec, ok := components.Lookup(Dispatch(d.Slug, style))
	if !ok {
		spec, _ = components.Lookup(components.DefaultTemplate)
	}
	theme := StyleTheme(style)
	return components.New(spec, components.Context{
		Title:         d.Title,
		RecipientName: rc.RecipientName,
		Message:       primaryMessage(d.Slug, rc),
		CreatorName:   rc.CreatorName,
		TextFields:    rc.TextFields,
		Editable:      rc.Editable,
		OnFieldChange: rc.OnFieldChange,
		Theme:         &theme,
		After:         rc.After,
	})
}
