package components

import (
	"sync/atomic"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/fields"
)

// Context is what the host hands a component when it renders one.
type Context struct {
	Title         string
	RecipientName string
	Message       string
	CreatorName   string
	TextFields    fields.Map
	Editable      bool
	// OnFieldChange is called once per field edit, when the field loses focus.
	OnFieldChange fields.ChangeFunc
	// Theme replaces the registered theme for components themed by design style.
	Theme *Theme
	// After schedules auto-hide timers. Nil uses time.AfterFunc.
	After AfterFunc
}

// Field is one resolved field ready for rendering.
type Field struct {
	Key       string
	Label     string
	Value     string
	Multiline bool
	Photo     bool
	Main      bool
}

// Instance is a component bound to one render context: resolved fields,
// the behaviour state machine and, in editable mode, the author's edit
// buffer.
type Instance struct {
	Spec     Spec
	Theme    Theme
	Editable bool

	persisted fields.Map
	defaults  map[string]string
	derived   map[string]string
	buffer    *fields.Buffer
	machine   Machine

	celebrations atomic.Int32
}

// New instantiates spec for ctx.
func New(spec Spec, ctx Context) *Instance {
	in := &Instance{
		Spec:      spec,
		Theme:     spec.Theme,
		Editable:  ctx.Editable,
		persisted: ctx.TextFields.Clone(),
		defaults:  make(map[string]string, len(spec.Fields)),
		derived:   make(map[string]string, len(spec.Fields)),
	}
	if ctx.Theme != nil && spec.UsesStyleTheme {
		in.Theme = *ctx.Theme
	}

	for _, f := range spec.Fields {
		d := derive(f, ctx)
		in.derived[f.Key] = d
		in.defaults[f.Key] = fields.FirstNonEmpty(d, f.Default)
	}

	if ctx.Editable {
		in.buffer = fields.NewBuffer(in.seeds(), ctx.OnFieldChange)
	}

	switch spec.Behavior.Kind {
	case RevealBehavior:
		in.machine = NewReveal()
	case AutoHideBehavior:
		in.machine = NewAutoHide(ctx.Editable, ctx.After)
	case GameBehavior:
		in.machine = NewGame(spec.Behavior.Targets, ctx.Editable, func() { in.celebrations.Add(1) })
	default:
		in.machine = static{}
	}
	return in
}

func derive(f FieldSpec, ctx Context) string {
	if f.Greeting != "" && ctx.RecipientName != "" {
		return fields.Interpolate(f.Greeting, ctx.RecipientName)
	}
	switch f.Role {
	case RoleMain:
		return ctx.Message
	case RoleRecipient:
		return ctx.RecipientName
	case RoleCreator:
		return ctx.CreatorName
	case RoleTitle:
		return ctx.Title
	}
	return ""
}

func (in *Instance) seeds() fields.Map {
	out := make(fields.Map, len(in.Spec.Fields))
	for _, f := range in.Spec.Fields {
		out[f.Key] = fields.Seed(f.Key, in.persisted, in.derived[f.Key], f.Default)
	}
	return out
}

// Value returns the displayed value of key.
func (in *Instance) Value(key string) string {
	return fields.Resolve(key, fields.Source{
		Editable:    in.Editable,
		Buffer:      in.buffer,
		Persisted:   in.persisted,
		HardDefault: in.defaults[key],
	})
}

// Fields resolves every field in declaration order.
func (in *Instance) Fields() []Field {
	out := make([]Field, 0, len(in.Spec.Fields))
	for _, f := range in.Spec.Fields {
		label := f.Label
		if label == "" {
			label = f.Key
		}
		out = append(out, Field{
			Key:       f.Key,
			Label:     label,
			Value:     in.Value(f.Key),
			Multiline: f.Multiline,
			Photo:     f.Role == RolePhoto,
			Main:      f.Main(),
		})
	}
	return out
}

// Values resolves every field into a map.
func (in *Instance) Values() fields.Map {
	out := make(fields.Map, len(in.Spec.Fields))
	for _, f := range in.Spec.Fields {
		out[f.Key] = in.Value(f.Key)
	}
	return out
}

// OnBlur records an author edit. It is ignored outside editable mode.
func (in *Instance) OnBlur(key, value string) {
	if in.buffer == nil {
		return
	}
	in.buffer.OnBlur(key, value)
}

// Resync applies new persisted text fields. Fields the author is editing
// keep their edits.
func (in *Instance) Resync(textFields fields.Map) {
	in.persisted = textFields.Clone()
	if in.buffer != nil {
		in.buffer.Resync(in.seeds())
	}
}

// Dirty returns the author's uncommitted edits.
func (in *Instance) Dirty() fields.Map {
	if in.buffer == nil {
		return fields.Map{}
	}
	return in.buffer.Dirty()
}

// Commit marks the author's edits as persisted by the host.
func (in *Instance) Commit() {
	if in.buffer != nil {
		in.buffer.Commit()
	}
}

// Machine returns the behaviour state machine.
func (in *Instance) Machine() Machine { return in.machine }

// Celebrations counts how many times the completion celebration fired.
func (in *Instance) Celebrations() int { return int(in.celebrations.Load()) }

// Close stops any pending timers.
func (in *Instance) Close() { in.machine.Stop() }
