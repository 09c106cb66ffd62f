package render

import (
	"html/template"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/components"
)

// FieldView is one component field as the component partial draws it.
type FieldView struct {
	components.Field
	Heading bool
	Trigger bool
	Reveal  bool
}

// ComponentView is the template-facing projection of a component
// instance.
type ComponentView struct {
	ID       string
	Name     string
	Behavior string
	State    string
	Targets  int
	Editable bool
	Theme    components.Theme
	// Draft is the draft id edits are saved to, editable mode only.
	Draft  string
	Fields []FieldView
}

// NewComponentView projects in for rendering. The first plain text field
// is drawn as the heading.
func NewComponentView(in *components.Instance, draftID string) ComponentView {
	b := in.Spec.Behavior
	v := ComponentView{
		ID:       string(in.Spec.ID),
		Name:     in.Spec.Name,
		Behavior: b.Kind.String(),
		State:    in.Machine().State(),
		Targets:  b.Targets,
		Editable: in.Editable,
		Theme:    in.Theme,
		Draft:    draftID,
	}
	heading := false
	for _, f := range in.Fields() {
		fv := FieldView{Field: f}
		if b.Kind != components.Static {
			fv.Trigger = f.Key == b.TriggerKey
			fv.Reveal = f.Key == b.RevealKey
		}
		if !heading && !f.Photo && !f.Main && !fv.Trigger && !fv.Reveal {
			fv.Heading = true
			heading = true
		}
		v.Fields = append(v.Fields, fv)
	}
	return v
}

// AIView carries stored AI markup already filled with the page's values.
type AIView struct {
	Title  string
	Markup template.HTML
}
