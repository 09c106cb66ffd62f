// Package components defines the greeting-card components a personal page
// can be rendered with. A component is data: a set of named text fields each
// carrying a literal default, a theme, and one interaction behaviour. The
// catalog decides which component renders a given template and style; this
// package only knows how to resolve a component's fields and drive its
// behaviour state machine.
package components

import "sort"

// ID identifies a component. IDs are stable and used in rendered markup.
type ID string

// Role describes where a field's runtime-derived default comes from.
type Role int

const (
	// RoleText fields only fall back to their literal default.
	RoleText Role = iota
	// RoleMain is the component's primary message; a supplied message
	// overrides its literal default. At most one per component.
	RoleMain
	// RoleRecipient fields default to the supplied recipient name.
	RoleRecipient
	// RoleCreator fields default to the supplied creator name.
	RoleCreator
	// RolePhoto fields hold image URLs. They are never validated.
	RolePhoto
	// RoleTitle fields default to the template's catalog title.
	RoleTitle
)

// FieldSpec declares one text field owned by a component.
type FieldSpec struct {
	Key     string
	Label   string
	Default string
	Role    Role
	// Greeting, when set, is interpolated with the recipient name to form
	// the runtime-derived default ({name} placeholder).
	Greeting  string
	Multiline bool
}

// Main reports whether the field is the component's primary message.
func (f FieldSpec) Main() bool { return f.Role == RoleMain }

// BehaviorKind selects the interaction state machine of a component.
type BehaviorKind int

const (
	Static BehaviorKind = iota
	RevealBehavior
	AutoHideBehavior
	GameBehavior
)

func (k BehaviorKind) String() string {
	switch k {
	case RevealBehavior:
		return "reveal"
	case AutoHideBehavior:
		return "autohide"
	case GameBehavior:
		return "game"
	default:
		return "static"
	}
}

// Behavior configures a component's state machine.
type Behavior struct {
	Kind BehaviorKind
	// Targets is the number of collectable targets for GameBehavior.
	Targets int
	// TriggerKey names the field used as the call-to-action label.
	TriggerKey string
	// RevealKey names the field shown once revealed, collected or triggered.
	RevealKey string
}

// Theme holds the utility classes a component is drawn with.
type Theme struct {
	Background       string
	Container        string
	TitleSize        string
	TitleColor       string
	SubtitleSize     string
	SubtitleColor    string
	MessageContainer string
	MessageSize      string
	MessageColor     string
	IconSize         string
	HeartColor       string
}

// Spec is the static description of one component.
type Spec struct {
	ID       ID
	Name     string
	Family   string
	Fields   []FieldSpec
	Behavior Behavior
	Theme    Theme
	// UsesStyleTheme marks components whose theme is supplied at render time
	// by the requested design style rather than fixed here.
	UsesStyleTheme bool
}

// Field returns the FieldSpec named key.
func (s Spec) Field(key string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// MainKey returns the key of the main-message field, or "" if none.
func (s Spec) MainKey() string {
	for _, f := range s.Fields {
		if f.Main() {
			return f.Key
		}
	}
	return ""
}

var registry = map[ID]Spec{}

func register(specs ...Spec) {
	for _, s := range specs {
		if _, dup := registry[s.ID]; dup {
			panic("components: duplicate id " + string(s.ID))
		}
		registry[s.ID] = s
	}
}

// Lookup returns the Spec registered under id.
func Lookup(id ID) (Spec, bool) {
	s, ok := registry[id]
	return s, ok
}

// IDs returns every registered component ID in sorted order.
func IDs() []ID {
	ids := make([]ID, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
